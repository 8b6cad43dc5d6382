package customer

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service handles customer business logic
type Service struct {
	repo Repository
}

// NewService creates customer service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a customer explicitly (management flow; walk-in customers
// are usually created implicitly by checkout)
func (s *Service) Create(ctx context.Context, req *CreateCustomerRequest) (*Customer, error) {
	c := &Customer{
		ID:             uuid.New(),
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		Kind:           Kind(req.Kind),
		CurrentBalance: 0,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID returns customer by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// Update replaces the editable fields of a customer. The balance is never set
// here; it only moves through ledger transactions.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateCustomerRequest) (*Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	c.Name = req.Name
	c.Phone = req.Phone
	c.Email = req.Email
	c.Address = req.Address
	c.Kind = Kind(req.Kind)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a customer record
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// List returns all customers, newest first
func (s *Service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.List(ctx)
}

// ListRoyal returns royal customers ordered by outstanding balance
func (s *Service) ListRoyal(ctx context.Context) ([]*Customer, error) {
	return s.repo.ListRoyal(ctx)
}
