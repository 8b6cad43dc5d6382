package sale

import (
	"time"

	"github.com/google/uuid"
)

// SaleItemRequest is one submitted line. The client sends the extended total
// it showed the cashier; the server verifies it against quantity * unit_price
// instead of recomputing silently.
type SaleItemRequest struct {
	ProductID   string `json:"product_id,omitempty" validate:"omitempty,uuid"`
	ProductName string `json:"product_name" validate:"required,max=255"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	UnitPrice   int64  `json:"unit_price" validate:"gte=0"`
	Total       int64  `json:"total"`
}

// CreateSaleRequest for POST /sales. Customer resolution: customer_id wins
// when present; otherwise a non-empty customer_phone upserts a walk-in;
// otherwise the sale is anonymous.
type CreateSaleRequest struct {
	CustomerID      string            `json:"customer_id,omitempty" validate:"omitempty,uuid"`
	CustomerPhone   string            `json:"customer_phone,omitempty" validate:"omitempty,max=20"`
	CustomerName    string            `json:"customer_name,omitempty" validate:"omitempty,max=255"`
	CustomerAddress string            `json:"customer_address,omitempty" validate:"omitempty,max=500"`
	Items           []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Discount        int64             `json:"discount" validate:"gte=0"`
	PaymentAmount   int64             `json:"payment_amount" validate:"gte=0"`
	PaymentMethod   string            `json:"payment_method" validate:"required,max=50"`
	PriceType       string            `json:"price_type,omitempty" validate:"omitempty,price_type"`
	IsPaid          bool              `json:"is_paid"`
}

// SaleItemResponse for API responses
type SaleItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	ProductName string     `json:"product_name"`
	Quantity    int64      `json:"quantity"`
	UnitPrice   int64      `json:"unit_price"`
	Total       int64      `json:"total"`
}

// SaleResponse for API responses
type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	SaleDate      time.Time          `json:"sale_date"`
	Subtotal      int64              `json:"subtotal"`
	Tax           int64              `json:"tax"`
	Discount      int64              `json:"discount"`
	TotalAmount   int64              `json:"total_amount"`
	PaymentAmount int64              `json:"payment_amount"`
	Balance       int64              `json:"balance"`
	PaymentMethod string             `json:"payment_method"`
	CustomerID    *uuid.UUID         `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	PriceType     string             `json:"price_type,omitempty"`
	IsPaid        bool               `json:"is_paid"`
	Items         []SaleItemResponse `json:"items"`
}

// TodayResponse for GET /sales/today
type TodayResponse struct {
	Count   int64           `json:"count"`
	Revenue int64           `json:"revenue"`
	Sales   []*SaleResponse `json:"sales"`
}

// ToResponse converts entity to response
func ToResponse(s *Sale, items []SaleItem) *SaleResponse {
	resp := &SaleResponse{
		ID:            s.ID,
		SaleDate:      s.SaleDate,
		Subtotal:      s.Subtotal,
		Tax:           s.Tax,
		Discount:      s.Discount,
		TotalAmount:   s.TotalAmount,
		PaymentAmount: s.PaymentAmount,
		Balance:       s.Balance,
		PaymentMethod: s.PaymentMethod,
		CustomerName:  s.CustomerName,
		PriceType:     s.PriceType,
		IsPaid:        s.IsPaid,
		Items:         make([]SaleItemResponse, 0, len(items)),
	}
	if s.CustomerID.Valid {
		id := s.CustomerID.UUID
		resp.CustomerID = &id
	}
	for i := range items {
		item := &items[i]
		ir := SaleItemResponse{
			ID:          item.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
		if item.ProductID.Valid {
			pid := item.ProductID.UUID
			ir.ProductID = &pid
		}
		resp.Items = append(resp.Items, ir)
	}
	return resp
}
