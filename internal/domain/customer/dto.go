package customer

import (
	"time"

	"github.com/google/uuid"
)

// CreateCustomerRequest for POST /customers
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address,omitempty" validate:"omitempty,max=500"`
	Kind    string `json:"kind" validate:"required,customer_kind"`
}

// UpdateCustomerRequest for PUT /customers/{id}
type UpdateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address,omitempty" validate:"omitempty,max=500"`
	Kind    string `json:"kind" validate:"required,customer_kind"`
}

// CustomerResponse for API responses
type CustomerResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone,omitempty"`
	Email          string     `json:"email,omitempty"`
	Address        string     `json:"address,omitempty"`
	Kind           string     `json:"kind"`
	CurrentBalance int64      `json:"current_balance"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	LastPurchaseAt *time.Time `json:"last_purchase_at,omitempty"`
}

// BalanceResponse for GET /customers/{id}/debit-balance
type BalanceResponse struct {
	CustomerID     uuid.UUID `json:"customer_id"`
	CustomerName   string    `json:"customer_name"`
	Kind           string    `json:"kind"`
	CurrentBalance int64     `json:"current_balance"`
}

// ToResponse converts entity to response
func ToResponse(c *Customer) *CustomerResponse {
	resp := &CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		Kind:           string(c.Kind),
		CurrentBalance: c.CurrentBalance,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
	}
	if c.LastPurchaseAt.Valid {
		t := c.LastPurchaseAt.Time
		resp.LastPurchaseAt = &t
	}
	return resp
}
