package customer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/poskit/pos-api/internal/middleware"
)

// Routes returns customer router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/", h.List)
	r.Get("/royal", h.ListRoyal)
	r.Post("/", h.Create)
	r.With(middleware.RequireAdmin()).Post("/debit-transaction", h.PostTransaction)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Put("/", h.Update)
		r.Get("/debit-balance", h.DebitBalance)
		r.Get("/transactions", h.Transactions)
		r.With(middleware.RequireAdmin()).Delete("/", h.Delete)
	})

	return r
}
