package customer

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Kind represents a customer kind (matches customer_kind enum)
type Kind string

const (
	KindWalkIn Kind = "walk_in" // no registration required
	KindOnline Kind = "online"  // online/registered customers
	KindRoyal  Kind = "royal"   // customers with open-ended purchase-on-credit privilege
)

// Customer represents a buyer. CurrentBalance is the outstanding amount owed:
// always >= 0, uncapped for royal customers (no credit limit), and maintained
// as a projection of the ledger transaction log.
type Customer struct {
	ID             uuid.UUID    `db:"id"`
	Name           string       `db:"name"`
	Phone          string       `db:"phone"`
	Email          string       `db:"email"`
	Address        string       `db:"address"`
	Kind           Kind         `db:"kind"`
	CurrentBalance int64        `db:"current_balance"`
	IsActive       bool         `db:"is_active"`
	CreatedAt      time.Time    `db:"created_at"`
	LastPurchaseAt sql.NullTime `db:"last_purchase_at"`
}

// IsRoyal returns true for customers who may buy on credit
func (c *Customer) IsRoyal() bool {
	return c.Kind == KindRoyal
}
