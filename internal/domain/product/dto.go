package product

import (
	"time"

	"github.com/google/uuid"
)

// CreateProductRequest for POST /products
type CreateProductRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Description    string `json:"description,omitempty"`
	RetailPrice    int64  `json:"retail_price" validate:"gte=0"`
	WholesalePrice int64  `json:"wholesale_price" validate:"gte=0"`
	Stock          int64  `json:"stock"`
	Category       string `json:"category,omitempty" validate:"omitempty,max=100"`
}

// UpdateProductRequest for PUT /products/{id}
type UpdateProductRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Description    string `json:"description,omitempty"`
	RetailPrice    int64  `json:"retail_price" validate:"gte=0"`
	WholesalePrice int64  `json:"wholesale_price" validate:"gte=0"`
	Stock          int64  `json:"stock"`
	Category       string `json:"category,omitempty" validate:"omitempty,max=100"`
}

// ProductResponse for API responses
type ProductResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	RetailPrice    int64     `json:"retail_price"`
	WholesalePrice int64     `json:"wholesale_price"`
	Stock          int64     `json:"stock"`
	Category       string    `json:"category,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(p *Product) *ProductResponse {
	return &ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		Stock:          p.Stock,
		Category:       p.Category,
		CreatedAt:      p.CreatedAt,
	}
}
