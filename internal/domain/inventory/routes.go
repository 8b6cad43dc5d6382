package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/poskit/pos-api/internal/middleware"
)

// Routes returns inventory router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/", h.List)
	r.Post("/", h.Create)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.With(middleware.RequireManager()).Delete("/", h.Delete)
	})

	return r
}
