package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines customer data access. The Tx variants run inside a
// caller-owned transaction so that checkout can resolve or create a customer
// atomically with the sale insert and ledger posting.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	GetByPhone(ctx context.Context, phone string) (*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Customer, error)
	ListRoyal(ctx context.Context) ([]*Customer, error)

	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*Customer, error)
	GetByPhoneTx(ctx context.Context, tx *sqlx.Tx, phone string) (*Customer, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, c *Customer) error
	// UpdateContactTx overwrites name, overwrites address only when non-empty,
	// and touches last_purchase_at.
	UpdateContactTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, name, address string) error
	TouchLastPurchaseTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates customer repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const insertQuery = `
	INSERT INTO customers (id, name, phone, email, address, kind, current_balance, is_active, created_at, last_purchase_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

func (r *repository) Create(ctx context.Context, c *Customer) error {
	_, err := r.db.ExecContext(ctx, insertQuery,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.Kind,
		c.CurrentBalance, c.IsActive, c.CreatedAt, c.LastPurchaseAt,
	)
	return mapCreateError(err)
}

func (r *repository) CreateTx(ctx context.Context, tx *sqlx.Tx, c *Customer) error {
	_, err := tx.ExecContext(ctx, insertQuery,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.Kind,
		c.CurrentBalance, c.IsActive, c.CreatedAt, c.LastPurchaseAt,
	)
	return mapCreateError(err)
}

func mapCreateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrPhoneExists
	}
	return fmt.Errorf("customer repository create: %w", err)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	var c Customer
	err := r.db.GetContext(ctx, &c, `SELECT * FROM customers WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*Customer, error) {
	var c Customer
	err := tx.GetContext(ctx, &c, `SELECT * FROM customers WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetByPhone(ctx context.Context, phone string) (*Customer, error) {
	var c Customer
	err := r.db.GetContext(ctx, &c, `SELECT * FROM customers WHERE phone = $1`, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetByPhoneTx(ctx context.Context, tx *sqlx.Tx, phone string) (*Customer, error) {
	var c Customer
	err := tx.GetContext(ctx, &c, `SELECT * FROM customers WHERE phone = $1`, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Customer) error {
	query := `
		UPDATE customers SET
			name = $2, phone = $3, email = $4, address = $5, kind = $6, is_active = $7
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.Kind, c.IsActive,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrPhoneExists
		}
		return err
	}
	return nil
}

func (r *repository) UpdateContactTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, name, address string) error {
	query := `
		UPDATE customers SET
			name = $2,
			address = CASE WHEN $3 <> '' THEN $3 ELSE address END,
			last_purchase_at = NOW()
		WHERE id = $1
	`
	_, err := tx.ExecContext(ctx, query, id, name, address)
	return err
}

func (r *repository) TouchLastPurchaseTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	_, err := tx.ExecContext(ctx, `UPDATE customers SET last_purchase_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

func (r *repository) List(ctx context.Context) ([]*Customer, error) {
	var customers []*Customer
	err := r.db.SelectContext(ctx, &customers, `SELECT * FROM customers ORDER BY created_at DESC`)
	return customers, err
}

func (r *repository) ListRoyal(ctx context.Context) ([]*Customer, error) {
	var customers []*Customer
	err := r.db.SelectContext(ctx, &customers,
		`SELECT * FROM customers WHERE kind = 'royal' ORDER BY current_balance DESC`)
	return customers, err
}
