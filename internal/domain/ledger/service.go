package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Service posts ledger transactions and maintains the customer balance as a
// projection of the log. It performs no authorization; route-level guards are
// the caller's concern.
type Service struct {
	repo *Repository
}

// NewService creates ledger service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Post appends a manual transaction and applies its effect to the balance.
// The transaction row is always appended, whatever the kind. Returns the
// transaction and the updated balance.
func (s *Service) Post(ctx context.Context, customerID uuid.UUID, saleID *uuid.UUID, amount int64, kind Kind, notes string) (*Transaction, int64, error) {
	if amount <= 0 {
		return nil, 0, ErrInvalidAmount
	}
	switch kind {
	case KindDebit, KindCredit, KindAdjustment:
	default:
		return nil, 0, ErrInvalidKind
	}

	t := &Transaction{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     amount,
		Kind:       kind,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}
	if saleID != nil {
		t.SaleID = uuid.NullUUID{UUID: *saleID, Valid: true}
	}

	balance, err := s.repo.Post(ctx, t)
	if err != nil {
		return nil, 0, err
	}

	log.Info().
		Str("customer_id", customerID.String()).
		Str("kind", string(kind)).
		Int64("amount", amount).
		Int64("balance", balance).
		Msg("ledger transaction posted")

	return t, balance, nil
}

// PostDebitTx posts a sale debit inside an external transaction. Used at
// checkout so the debit, the sale row and the stock decrement commit as one
// unit.
func (s *Service) PostDebitTx(ctx context.Context, tx *sqlx.Tx, customerID, saleID uuid.UUID, amount int64, notes string) (*Transaction, int64, error) {
	if amount <= 0 {
		return nil, 0, ErrInvalidAmount
	}

	t := &Transaction{
		ID:         uuid.New(),
		CustomerID: customerID,
		SaleID:     uuid.NullUUID{UUID: saleID, Valid: true},
		Amount:     amount,
		Kind:       KindDebit,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}

	balance, err := s.repo.PostDebitTx(ctx, tx, t)
	if err != nil {
		return nil, 0, err
	}
	return t, balance, nil
}

// ListByCustomer returns a customer's transaction history, newest first
func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Transaction, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// Balance returns the current outstanding balance for a customer
func (s *Service) Balance(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return s.repo.Balance(ctx, customerID)
}
