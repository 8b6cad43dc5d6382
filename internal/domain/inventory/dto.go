package inventory

import (
	"time"

	"github.com/google/uuid"
)

// EntryItemRequest is one received line
type EntryItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	UnitCost  int64  `json:"unit_cost" validate:"gte=0"`
}

// CreateEntryRequest for POST /inventory
type CreateEntryRequest struct {
	ReferenceNumber string             `json:"reference_number,omitempty" validate:"omitempty,max=50"`
	Supplier        string             `json:"supplier,omitempty" validate:"omitempty,max=255"`
	Notes           string             `json:"notes,omitempty" validate:"omitempty,max=500"`
	Items           []EntryItemRequest `json:"items" validate:"required,min=1,dive"`
}

// EntryItemResponse for API responses
type EntryItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
	UnitCost    int64     `json:"unit_cost"`
	Total       int64     `json:"total"`
}

// EntryResponse for API responses
type EntryResponse struct {
	ID              uuid.UUID           `json:"id"`
	ReferenceNumber string              `json:"reference_number"`
	EntryDate       time.Time           `json:"entry_date"`
	Supplier        string              `json:"supplier,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	Total           int64               `json:"total"`
	Items           []EntryItemResponse `json:"items"`
}

// ToResponse converts entity to response
func ToResponse(e *Entry, items []EntryItem) *EntryResponse {
	resp := &EntryResponse{
		ID:              e.ID,
		ReferenceNumber: e.ReferenceNumber,
		EntryDate:       e.EntryDate,
		Supplier:        e.Supplier,
		Notes:           e.Notes,
		Total:           e.Total,
		Items:           make([]EntryItemResponse, 0, len(items)),
	}
	for i := range items {
		item := &items[i]
		resp.Items = append(resp.Items, EntryItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitCost:    item.UnitCost,
			Total:       item.Total,
		})
	}
	return resp
}
