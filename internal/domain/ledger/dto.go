package ledger

import (
	"time"

	"github.com/google/uuid"
)

// PostTransactionRequest for POST /customers/debit-transaction
type PostTransactionRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	SaleID     string `json:"sale_id,omitempty" validate:"omitempty,uuid"`
	Amount     int64  `json:"amount" validate:"required,gt=0"`
	Kind       string `json:"kind" validate:"required,tx_kind"`
	Notes      string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// TransactionResponse for API responses
type TransactionResponse struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	CustomerName string     `json:"customer_name,omitempty"`
	SaleID       *uuid.UUID `json:"sale_id,omitempty"`
	Amount       int64      `json:"amount"`
	Kind         string     `json:"kind"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// PostResult couples the appended transaction with the updated balance
type PostResult struct {
	Transaction *TransactionResponse `json:"transaction"`
	Balance     int64                `json:"current_balance"`
}

// ToResponse converts entity to response
func ToResponse(t *Transaction, customerName string) *TransactionResponse {
	resp := &TransactionResponse{
		ID:           t.ID,
		CustomerID:   t.CustomerID,
		CustomerName: customerName,
		Amount:       t.Amount,
		Kind:         string(t.Kind),
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt,
	}
	if t.SaleID.Valid {
		id := t.SaleID.UUID
		resp.SaleID = &id
	}
	return resp
}
