package product

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. Prices are integer amounts in the smallest
// currency unit the store trades in (the currency has no fractional subunit).
type Product struct {
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	RetailPrice    int64     `db:"retail_price"`
	WholesalePrice int64     `db:"wholesale_price"`
	Stock          int64     `db:"stock"`
	Category       string    `db:"category"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
