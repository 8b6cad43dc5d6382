package sale

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns sale router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/", h.List)
	r.Get("/today", h.Today)
	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)

	return r
}
