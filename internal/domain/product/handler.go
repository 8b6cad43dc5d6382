package product

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/poskit/pos-api/internal/pkg/response"
	"github.com/poskit/pos-api/internal/pkg/validator"
)

// Handler handles catalog HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates product handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /products
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	resp := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, ToResponse(p))
	}
	response.OK(w, resp)
}

// GetByID handles GET /products/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(p))
}

// Create handles POST /products
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNameExists) {
			response.Conflict(w, "Product with this name already exists")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, ToResponse(p))
}

// Update handles PUT /products/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Product not found")
		case errors.Is(err, ErrNameExists):
			response.Conflict(w, "Product with this name already exists")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ToResponse(p))
}

// Delete handles DELETE /products/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
