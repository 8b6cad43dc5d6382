package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/poskit/pos-api/internal/domain/user"
	"github.com/poskit/pos-api/internal/middleware"
	"github.com/poskit/pos-api/internal/pkg/response"
	"github.com/poskit/pos-api/internal/pkg/validator"
)

// Handler handles auth HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid username or password")
		case errors.Is(err, ErrAccountInactive):
			response.Unauthorized(w, "Account is inactive. Please contact administrator.")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, resp)
}

// Register handles POST /auth/register (admin only)
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameExists):
			response.Conflict(w, "Username already exists")
		case errors.Is(err, user.ErrEmailExists):
			response.Conflict(w, "Email already exists")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, resp)
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	resp, err := h.service.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, resp)
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	jti := middleware.GetTokenID(r.Context())
	if err := h.service.Logout(r.Context(), jti); err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, map[string]string{"message": "Logged out"})
}
