package inventory

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/poskit/pos-api/internal/pkg/response"
	"github.com/poskit/pos-api/internal/pkg/validator"
)

// Handler handles inventory HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates inventory handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /inventory
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
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
		if errors.Is(err, ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, resp)
}

// GetByID handles GET /inventory/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid entry ID")
		return
	}

	resp, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Inventory entry not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, resp)
}

// List handles GET /inventory
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	resp := make([]*EntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, ToResponse(&entries[i], nil))
	}
	response.OK(w, resp)
}

// Delete handles DELETE /inventory/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid entry ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Inventory entry not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
