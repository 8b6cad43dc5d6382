package ledger

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository owns the customers.current_balance column and the
// ledger_transactions log. Every balance change goes through here so the two
// always commit together.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates ledger repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Post applies a transaction to the customer balance and appends the log row
// in a single database transaction. The customer row is locked FOR UPDATE so
// concurrent postings against the same customer serialize instead of losing
// updates.
func (r *Repository) Post(ctx context.Context, t *Transaction) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	balance, err := r.lockBalance(ctx, tx, t.CustomerID)
	if err != nil {
		return 0, err
	}

	next := nextBalance(balance, t.Amount, t.Kind)

	if err := r.updateBalance(ctx, tx, t.CustomerID, next); err != nil {
		return 0, mapConflict(err)
	}
	if err := r.insertTransaction(ctx, tx, t); err != nil {
		return 0, mapConflict(err)
	}

	if err := tx.Commit(); err != nil {
		return 0, mapConflict(err)
	}
	return next, nil
}

// PostDebitTx posts a debit inside a caller-owned transaction. Used by sale
// checkout so the debit commits or rolls back together with the sale row and
// the stock decrement. The balance update is a relative increment, which is
// race-free without an explicit lock.
func (r *Repository) PostDebitTx(ctx context.Context, tx *sqlx.Tx, t *Transaction) (int64, error) {
	var next int64
	err := tx.GetContext(ctx, &next, `
		UPDATE customers SET current_balance = current_balance + $1
		WHERE id = $2
		RETURNING current_balance
	`, t.Amount, t.CustomerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrCustomerNotFound
		}
		return 0, mapConflict(err)
	}

	if err := r.insertTransaction(ctx, tx, t); err != nil {
		return 0, mapConflict(err)
	}
	return next, nil
}

// ListByCustomer returns the customer's log, newest first
func (r *Repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Transaction, error) {
	var txs []Transaction
	err := r.db.SelectContext(ctx, &txs, `
		SELECT * FROM ledger_transactions
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
	return txs, err
}

// Balance returns the materialized balance for a customer
func (r *Repository) Balance(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var balance int64
	err := r.db.GetContext(ctx, &balance,
		`SELECT current_balance FROM customers WHERE id = $1`, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrCustomerNotFound
	}
	return balance, err
}

func (r *Repository) lockBalance(ctx context.Context, tx *sqlx.Tx, customerID uuid.UUID) (int64, error) {
	var balance int64
	err := tx.GetContext(ctx, &balance,
		`SELECT current_balance FROM customers WHERE id = $1 FOR UPDATE`, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrCustomerNotFound
		}
		return 0, mapConflict(err)
	}
	return balance, nil
}

func (r *Repository) updateBalance(ctx context.Context, tx *sqlx.Tx, customerID uuid.UUID, balance int64) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE customers SET current_balance = $1 WHERE id = $2`, balance, customerID)
	return err
}

func (r *Repository) insertTransaction(ctx context.Context, tx *sqlx.Tx, t *Transaction) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO ledger_transactions (id, customer_id, sale_id, amount, kind, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, t.ID, t.CustomerID, t.SaleID, t.Amount, t.Kind, t.Notes, t.CreatedAt)
	return err
}

// nextBalance applies a transaction effect to a balance.
// Credit clamps at 0: a customer cannot hold negative debt.
// Adjustment is an absolute set.
func nextBalance(balance, amount int64, kind Kind) int64 {
	switch kind {
	case KindDebit:
		return balance + amount
	case KindCredit:
		next := balance - amount
		if next < 0 {
			return 0
		}
		return next
	case KindAdjustment:
		return amount
	}
	return balance
}

// mapConflict translates store-level serialization failures into the domain
// error callers are expected to retry on.
func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// 40001 serialization_failure, 40P01 deadlock_detected, 55P03 lock_not_available
		switch pqErr.Code {
		case "40001", "40P01", "55P03":
			return ErrConflictingUpdate
		}
	}
	return err
}
