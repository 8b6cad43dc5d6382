package inventory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository persists inventory entries and their lines
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates inventory repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Begin opens the intake transaction. The inventory service owns its
// lifecycle.
func (r *Repository) Begin(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

// CreateTx inserts an entry and its lines inside a caller-owned transaction
func (r *Repository) CreateTx(ctx context.Context, tx *sqlx.Tx, e *Entry, items []EntryItem) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO inventory_entries (id, reference_number, entry_date, supplier, notes, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.ID, e.ReferenceNumber, e.EntryDate, e.Supplier, e.Notes, e.Total, e.CreatedAt)
	if err != nil {
		return err
	}

	for i := range items {
		item := &items[i]
		_, err := tx.ExecContext(ctx, `
			INSERT INTO inventory_entry_items (id, entry_id, product_id, product_name, quantity, unit_cost, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, item.ID, item.EntryID, item.ProductID, item.ProductName, item.Quantity, item.UnitCost, item.Total)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetByID returns an entry with its lines
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Entry, []EntryItem, error) {
	var e Entry
	err := r.db.GetContext(ctx, &e, `SELECT * FROM inventory_entries WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	items, err := r.itemsByEntry(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return &e, items, nil
}

// ItemsByEntryTx returns an entry's lines inside a caller-owned transaction.
// Used on delete to reverse the stock increments before the cascade removes
// the rows.
func (r *Repository) ItemsByEntryTx(ctx context.Context, tx *sqlx.Tx, entryID uuid.UUID) ([]EntryItem, error) {
	var items []EntryItem
	err := tx.SelectContext(ctx, &items,
		`SELECT * FROM inventory_entry_items WHERE entry_id = $1`, entryID)
	return items, err
}

// DeleteTx removes an entry inside a caller-owned transaction. Lines go with
// it via ON DELETE CASCADE.
func (r *Repository) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM inventory_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all entries, newest first
func (r *Repository) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := r.db.SelectContext(ctx, &entries,
		`SELECT * FROM inventory_entries ORDER BY entry_date DESC`)
	return entries, err
}

func (r *Repository) itemsByEntry(ctx context.Context, entryID uuid.UUID) ([]EntryItem, error) {
	var items []EntryItem
	err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM inventory_entry_items WHERE entry_id = $1`, entryID)
	return items, err
}
