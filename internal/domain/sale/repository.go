package sale

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository persists sales and their lines
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates sale repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Begin opens the checkout transaction. The sale service owns its lifecycle.
func (r *Repository) Begin(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

// CreateTx inserts the sale header and its lines inside a caller-owned
// transaction.
func (r *Repository) CreateTx(ctx context.Context, tx *sqlx.Tx, s *Sale, items []SaleItem) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO sales (id, sale_date, subtotal, tax, discount, total_amount, payment_amount,
			balance, payment_method, customer_id, customer_name, price_type, is_paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, s.ID, s.SaleDate, s.Subtotal, s.Tax, s.Discount, s.TotalAmount, s.PaymentAmount,
		s.Balance, s.PaymentMethod, s.CustomerID, s.CustomerName, s.PriceType, s.IsPaid, s.CreatedAt)
	if err != nil {
		return err
	}

	for i := range items {
		item := &items[i]
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, unit_price, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, item.ID, item.SaleID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.Total)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetByID returns a sale with its lines
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Sale, []SaleItem, error) {
	var s Sale
	err := r.db.GetContext(ctx, &s, `SELECT * FROM sales WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	items, err := r.itemsBySale(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return &s, items, nil
}

// List returns all sales, newest first
func (r *Repository) List(ctx context.Context) ([]Sale, error) {
	var sales []Sale
	err := r.db.SelectContext(ctx, &sales, `SELECT * FROM sales ORDER BY sale_date DESC`)
	return sales, err
}

// ListByDateRange returns sales with sale_date in [start, end)
func (r *Repository) ListByDateRange(ctx context.Context, start, end time.Time) ([]Sale, error) {
	var sales []Sale
	err := r.db.SelectContext(ctx, &sales, `
		SELECT * FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
		ORDER BY sale_date DESC
	`, start, end)
	return sales, err
}

func (r *Repository) itemsBySale(ctx context.Context, saleID uuid.UUID) ([]SaleItem, error) {
	var items []SaleItem
	err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM sale_items WHERE sale_id = $1`, saleID)
	return items, err
}
