package sale

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/poskit/pos-api/internal/domain/customer"
	"github.com/poskit/pos-api/internal/domain/ledger"
	"github.com/poskit/pos-api/internal/pkg/response"
	"github.com/poskit/pos-api/internal/pkg/validator"
)

// Handler handles sale HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates sale handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /sales
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	resp, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidLineItem):
			response.BadRequest(w, "Line item total must equal quantity * unit price")
		case errors.Is(err, customer.ErrNotFound):
			response.NotFound(w, "Customer not found")
		case errors.Is(err, ledger.ErrConflictingUpdate):
			response.Conflict(w, "Concurrent update, please retry")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, resp)
}

// GetByID handles GET /sales/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid sale ID")
		return
	}

	resp, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Sale not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, resp)
}

// List handles GET /sales
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, toListResponse(sales))
}

// Today handles GET /sales/today
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.Today(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	var revenue int64
	for i := range sales {
		revenue += sales[i].TotalAmount
	}
	response.OK(w, &TodayResponse{
		Count:   int64(len(sales)),
		Revenue: revenue,
		Sales:   toListResponse(sales),
	})
}

func toListResponse(sales []Sale) []*SaleResponse {
	resp := make([]*SaleResponse, 0, len(sales))
	for i := range sales {
		resp = append(resp, ToResponse(&sales[i], nil))
	}
	return resp
}
