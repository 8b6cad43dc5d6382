package report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/poskit/pos-api/internal/pkg/response"
)

// Handler handles report HTTP requests. Date windows come from start_date and
// end_date query params (YYYY-MM-DD); the end date is inclusive as a day, so
// the underlying window runs to midnight after it.
type Handler struct {
	svc *Service
}

// NewHandler creates report handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// SalesSummary handles GET /reports/sales-summary
func (h *Handler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateWindow(r)
	if err != nil {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD")
		return
	}

	summary, err := h.svc.SalesSummary(r.Context(), start, end)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, summary)
}

// Inventory handles GET /reports/inventory
func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Inventory(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, report)
}

// CustomerDebits handles GET /reports/customer-debits
func (h *Handler) CustomerDebits(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.CustomerDebits(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, report)
}

// DailySales handles GET /reports/daily-sales
func (h *Handler) DailySales(w http.ResponseWriter, r *http.Request) {
	start, end, err := dailyWindow(r)
	if err != nil {
		response.BadRequest(w, "Invalid date range")
		return
	}

	buckets, err := h.svc.DailySales(r.Context(), start, end)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, buckets)
}

// MonthlySales handles GET /reports/monthly-sales-chart
func (h *Handler) MonthlySales(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid year")
			return
		}
		year = parsed
	}

	buckets, err := h.svc.MonthlySales(r.Context(), year)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, buckets)
}

// CustomerSales handles GET /reports/customer-sales
func (h *Handler) CustomerSales(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateWindow(r)
	if err != nil {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD")
		return
	}

	rows, err := h.svc.CustomerSales(r.Context(), start, end)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, rows)
}

// PriceTypeAnalysis handles GET /reports/price-type-analysis
func (h *Handler) PriceTypeAnalysis(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateWindow(r)
	if err != nil {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD")
		return
	}

	rows, err := h.svc.PriceTypeAnalysis(r.Context(), start, end)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, rows)
}

// dailyWindow resolves the daily-sales window: explicit start_date/end_date
// when given, otherwise the last `days` calendar days ending today
// (default 7).
func dailyWindow(r *http.Request) (time.Time, time.Time, error) {
	q := r.URL.Query()
	if q.Get("start_date") != "" || q.Get("end_date") != "" {
		return dateWindow(r)
	}

	days := 7
	if v := q.Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return time.Time{}, time.Time{}, errors.New("invalid days")
		}
		days = parsed
	}

	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return end.AddDate(0, 0, -days), end, nil
}

// dateWindow parses start_date and end_date into a half-open window. Both
// default to today.
func dateWindow(r *http.Request) (start, end time.Time, err error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start, end = today, today

	if v := r.URL.Query().Get("start_date"); v != "" {
		start, err = time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil {
			return
		}
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		end, err = time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil {
			return
		}
	}

	end = end.AddDate(0, 0, 1)
	return
}
