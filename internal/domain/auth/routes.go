package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/poskit/pos-api/internal/middleware"
)

// Routes returns auth router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public routes (no auth required)
	r.Post("/login", h.Login)

	// Protected routes (auth required)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/me", h.Me)
		r.Post("/logout", h.Logout)
		r.With(middleware.RequireAdmin()).Post("/register", h.Register)
	})

	return r
}
