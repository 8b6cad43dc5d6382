package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/poskit/pos-api/internal/middleware"
)

// Routes returns product router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/", h.List)
	r.Post("/", h.Create)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Put("/", h.Update)
		r.With(middleware.RequireAdmin()).Delete("/", h.Delete)
	})

	return r
}
