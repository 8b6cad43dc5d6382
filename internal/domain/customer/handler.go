package customer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/poskit/pos-api/internal/domain/ledger"
	"github.com/poskit/pos-api/internal/pkg/response"
	"github.com/poskit/pos-api/internal/pkg/validator"
)

// Handler handles customer HTTP requests, including the ledger endpoints
// that hang off the customer resource.
type Handler struct {
	svc    *Service
	ledger *ledger.Service
}

// NewHandler creates customer handler
func NewHandler(svc *Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{svc: svc, ledger: ledgerSvc}
}

// List handles GET /customers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	resp := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, ToResponse(c))
	}
	response.OK(w, resp)
}

// ListRoyal handles GET /customers/royal
func (h *Handler) ListRoyal(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListRoyal(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	resp := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, ToResponse(c))
	}
	response.OK(w, resp)
}

// GetByID handles GET /customers/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid customer ID")
		return
	}

	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Customer not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(c))
}

// Create handles POST /customers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrPhoneExists) {
			response.Conflict(w, "Customer with this phone already exists")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, ToResponse(c))
}

// Update handles PUT /customers/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid customer ID")
		return
	}

	var req UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Customer not found")
		case errors.Is(err, ErrPhoneExists):
			response.Conflict(w, "Customer with this phone already exists")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ToResponse(c))
}

// Delete handles DELETE /customers/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid customer ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Customer not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

// DebitBalance handles GET /customers/{id}/debit-balance
func (h *Handler) DebitBalance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid customer ID")
		return
	}

	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Customer not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, &BalanceResponse{
		CustomerID:     c.ID,
		CustomerName:   c.Name,
		Kind:           string(c.Kind),
		CurrentBalance: c.CurrentBalance,
	})
}

// Transactions handles GET /customers/{id}/transactions
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid customer ID")
		return
	}

	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Customer not found")
			return
		}
		response.InternalError(w)
		return
	}

	txs, err := h.ledger.ListByCustomer(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}

	resp := make([]*ledger.TransactionResponse, 0, len(txs))
	for i := range txs {
		resp = append(resp, ledger.ToResponse(&txs[i], c.Name))
	}
	response.OK(w, resp)
}

// PostTransaction handles POST /customers/debit-transaction
func (h *Handler) PostTransaction(w http.ResponseWriter, r *http.Request) {
	var req ledger.PostTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(w, "Invalid customer ID")
		return
	}

	var saleID *uuid.UUID
	if req.SaleID != "" {
		id, err := uuid.Parse(req.SaleID)
		if err != nil {
			response.BadRequest(w, "Invalid sale ID")
			return
		}
		saleID = &id
	}

	c, err := h.svc.GetByID(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Customer not found")
			return
		}
		response.InternalError(w)
		return
	}

	t, balance, err := h.ledger.Post(r.Context(), customerID, saleID, req.Amount, ledger.Kind(req.Kind), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidAmount):
			response.BadRequest(w, "Amount must be greater than 0")
		case errors.Is(err, ledger.ErrInvalidKind):
			response.BadRequest(w, "Invalid transaction kind")
		case errors.Is(err, ledger.ErrCustomerNotFound):
			response.NotFound(w, "Customer not found")
		case errors.Is(err, ledger.ErrConflictingUpdate):
			response.Conflict(w, "Concurrent balance update, please retry")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, &ledger.PostResult{
		Transaction: ledger.ToResponse(t, c.Name),
		Balance:     balance,
	})
}
