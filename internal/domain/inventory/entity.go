package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a stock intake: a delivery received from a supplier. Creating an
// entry increments product stock; deleting it reverses the increment.
type Entry struct {
	ID              uuid.UUID `db:"id"`
	ReferenceNumber string    `db:"reference_number"`
	EntryDate       time.Time `db:"entry_date"`
	Supplier        string    `db:"supplier"`
	Notes           string    `db:"notes"`
	Total           int64     `db:"total"`
	CreatedAt       time.Time `db:"created_at"`
}

// EntryItem is one received line
type EntryItem struct {
	ID          uuid.UUID `db:"id"`
	EntryID     uuid.UUID `db:"entry_id"`
	ProductID   uuid.UUID `db:"product_id"`
	ProductName string    `db:"product_name"`
	Quantity    int64     `db:"quantity"`
	UnitCost    int64     `db:"unit_cost"`
	Total       int64     `db:"total"`
}
