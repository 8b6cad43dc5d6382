package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns report router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/sales-summary", h.SalesSummary)
	r.Get("/inventory", h.Inventory)
	r.Get("/customer-debits", h.CustomerDebits)
	r.Get("/daily-sales", h.DailySales)
	r.Get("/monthly-sales-chart", h.MonthlySales)
	r.Get("/customer-sales", h.CustomerSales)
	r.Get("/price-type-analysis", h.PriceTypeAnalysis)

	return r
}
