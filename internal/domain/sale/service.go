package sale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/poskit/pos-api/internal/domain/customer"
	"github.com/poskit/pos-api/internal/domain/ledger"
	"github.com/poskit/pos-api/internal/domain/product"
)

// Service implements checkout. A sale, its stock decrements, any walk-in
// customer upsert and any royal debit all commit in a single database
// transaction: a failed checkout leaves nothing behind.
type Service struct {
	repo      *Repository
	customers customer.Repository
	products  product.Repository
	ledger    *ledger.Service
}

// NewService creates sale service
func NewService(repo *Repository, customers customer.Repository, products product.Repository, ledgerSvc *ledger.Service) *Service {
	return &Service{repo: repo, customers: customers, products: products, ledger: ledgerSvc}
}

// Create runs the checkout flow: resolve the customer, verify line totals,
// compute the sale totals, persist the sale, decrement stock and, for an
// unpaid royal customer, post the debit to the ledger.
func (s *Service) Create(ctx context.Context, req *CreateSaleRequest) (*SaleResponse, error) {
	subtotal, total, err := computeTotals(req.Items, req.Discount)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	cust, err := s.resolveCustomer(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &Sale{
		ID:            uuid.New(),
		SaleDate:      now,
		Subtotal:      subtotal,
		Tax:           0,
		Discount:      req.Discount,
		TotalAmount:   total,
		PaymentAmount: req.PaymentAmount,
		Balance:       total - req.PaymentAmount,
		PaymentMethod: req.PaymentMethod,
		CustomerName:  req.CustomerName,
		PriceType:     req.PriceType,
		IsPaid:        req.IsPaid,
		CreatedAt:     now,
	}
	if cust != nil {
		sale.CustomerID = uuid.NullUUID{UUID: cust.ID, Valid: true}
		sale.CustomerName = cust.Name
	}

	items := make([]SaleItem, 0, len(req.Items))
	for _, line := range req.Items {
		item := SaleItem{
			ID:          uuid.New(),
			SaleID:      sale.ID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Total:       line.Total,
		}
		if line.ProductID != "" {
			pid, err := uuid.Parse(line.ProductID)
			if err == nil {
				item.ProductID = uuid.NullUUID{UUID: pid, Valid: true}
			}
		}
		items = append(items, item)
	}

	if err := s.repo.CreateTx(ctx, tx, sale, items); err != nil {
		return nil, err
	}

	for i := range items {
		if !items[i].ProductID.Valid {
			continue
		}
		if err := s.products.AdjustStockTx(ctx, tx, items[i].ProductID.UUID, -items[i].Quantity); err != nil {
			return nil, err
		}
	}

	if cust != nil && cust.IsRoyal() && !req.IsPaid && total > 0 {
		notes := fmt.Sprintf("Sale #%s", sale.ID)
		if _, _, err := s.ledger.PostDebitTx(ctx, tx, cust.ID, sale.ID, total, notes); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info().
		Str("sale_id", sale.ID.String()).
		Int64("total_amount", total).
		Bool("is_paid", req.IsPaid).
		Msg("sale created")

	return ToResponse(sale, items), nil
}

// resolveCustomer picks the sale's customer per the checkout rules: an
// explicit id must exist, a non-empty phone upserts a walk-in, anything else
// is an anonymous sale (nil customer).
func (s *Service) resolveCustomer(ctx context.Context, tx *sqlx.Tx, req *CreateSaleRequest) (*customer.Customer, error) {
	if req.CustomerID != "" {
		id, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, customer.ErrNotFound
		}
		cust, err := s.customers.GetByIDTx(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		if cust == nil {
			return nil, customer.ErrNotFound
		}
		if err := s.customers.TouchLastPurchaseTx(ctx, tx, cust.ID); err != nil {
			return nil, err
		}
		return cust, nil
	}

	if req.CustomerPhone == "" {
		return nil, nil
	}

	cust, err := s.customers.GetByPhoneTx(ctx, tx, req.CustomerPhone)
	if err != nil {
		return nil, err
	}
	if cust != nil {
		name := req.CustomerName
		if name == "" {
			name = cust.Name
		}
		if err := s.customers.UpdateContactTx(ctx, tx, cust.ID, name, req.CustomerAddress); err != nil {
			return nil, err
		}
		cust.Name = name
		if req.CustomerAddress != "" {
			cust.Address = req.CustomerAddress
		}
		return cust, nil
	}

	now := time.Now()
	cust = &customer.Customer{
		ID:             uuid.New(),
		Name:           req.CustomerName,
		Phone:          req.CustomerPhone,
		Address:        req.CustomerAddress,
		Kind:           customer.KindWalkIn,
		CurrentBalance: 0,
		IsActive:       true,
		CreatedAt:      now,
	}
	cust.LastPurchaseAt.Time = now
	cust.LastPurchaseAt.Valid = true

	if err := s.customers.CreateTx(ctx, tx, cust); err != nil {
		// Another checkout inserted the same phone between our lookup and
		// insert. Surface as a retryable conflict.
		if errors.Is(err, customer.ErrPhoneExists) {
			return nil, ledger.ErrConflictingUpdate
		}
		return nil, err
	}
	return cust, nil
}

// GetByID returns a sale with its lines
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, items, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToResponse(sale, items), nil
}

// List returns all sales, newest first
func (s *Service) List(ctx context.Context) ([]Sale, error) {
	return s.repo.List(ctx)
}

// Today returns sales with a sale date in the current local day
func (s *Service) Today(ctx context.Context) ([]Sale, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.repo.ListByDateRange(ctx, start, start.AddDate(0, 0, 1))
}

// computeTotals verifies each submitted line against quantity * unit_price
// and derives the sale totals. The discount is applied without clamping:
// the total may go negative.
func computeTotals(items []SaleItemRequest, discount int64) (subtotal, total int64, err error) {
	for i := range items {
		line := &items[i]
		if line.Total != line.Quantity*line.UnitPrice {
			return 0, 0, ErrInvalidLineItem
		}
		subtotal += line.Total
	}
	return subtotal, subtotal - discount, nil
}
