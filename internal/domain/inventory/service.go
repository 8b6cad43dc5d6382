package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/poskit/pos-api/internal/domain/product"
)

// Service records stock intakes. Each entry and its stock increments commit
// as one transaction; deleting an entry reverses the increments the same way.
type Service struct {
	repo     *Repository
	products product.Repository
}

// NewService creates inventory service
func NewService(repo *Repository, products product.Repository) *Service {
	return &Service{repo: repo, products: products}
}

// Create records an intake and increments the stock of every received
// product. Every line must reference an existing product.
func (s *Service) Create(ctx context.Context, req *CreateEntryRequest) (*EntryResponse, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now()
	entry := &Entry{
		ID:              uuid.New(),
		ReferenceNumber: req.ReferenceNumber,
		EntryDate:       now,
		Supplier:        req.Supplier,
		Notes:           req.Notes,
		CreatedAt:       now,
	}
	if entry.ReferenceNumber == "" {
		entry.ReferenceNumber = fmt.Sprintf("INV-%s-%s", now.Format("20060102"), entry.ID.String()[:8])
	}

	items := make([]EntryItem, 0, len(req.Items))
	for _, line := range req.Items {
		pid, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, ErrProductNotFound
		}
		p, err := s.products.GetByIDTx(ctx, tx, pid)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, ErrProductNotFound
		}

		lineTotal := line.Quantity * line.UnitCost
		items = append(items, EntryItem{
			ID:          uuid.New(),
			EntryID:     entry.ID,
			ProductID:   pid,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitCost:    line.UnitCost,
			Total:       lineTotal,
		})
		entry.Total += lineTotal

		if err := s.products.AdjustStockTx(ctx, tx, pid, line.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.repo.CreateTx(ctx, tx, entry, items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info().
		Str("entry_id", entry.ID.String()).
		Int("lines", len(items)).
		Msg("inventory entry created")

	return ToResponse(entry, items), nil
}

// GetByID returns an entry with its lines
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	entry, items, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToResponse(entry, items), nil
}

// List returns all entries, newest first
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

// Delete removes an entry and reverses its stock increments
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	items, err := s.repo.ItemsByEntryTx(ctx, tx, id)
	if err != nil {
		return err
	}

	for i := range items {
		if err := s.products.AdjustStockTx(ctx, tx, items[i].ProductID, -items[i].Quantity); err != nil {
			return err
		}
	}

	if err := s.repo.DeleteTx(ctx, tx, id); err != nil {
		return err
	}

	return tx.Commit()
}
