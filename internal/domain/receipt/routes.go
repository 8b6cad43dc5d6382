package receipt

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns receipt router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Post("/receipt", h.Print)
	r.Get("/printers", h.Printers)
	r.Post("/test", h.Test)

	return r
}
