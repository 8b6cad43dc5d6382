package product

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service handles catalog business logic
type Service struct {
	repo Repository
}

// NewService creates product service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a catalog item
func (s *Service) Create(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	now := time.Now()
	p := &Product{
		ID:             uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		RetailPrice:    req.RetailPrice,
		WholesalePrice: req.WholesalePrice,
		Stock:          req.Stock,
		Category:       req.Category,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID returns product by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Update replaces the editable fields of a product
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	p.Name = req.Name
	p.Description = req.Description
	p.RetailPrice = req.RetailPrice
	p.WholesalePrice = req.WholesalePrice
	p.Stock = req.Stock
	p.Category = req.Category

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a product from the catalog
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// List returns the full catalog ordered by name
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}
