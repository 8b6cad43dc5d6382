package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Kind defines the effect of a ledger transaction on the customer balance.
type Kind string

const (
	// KindDebit increases the amount owed (purchase on credit).
	KindDebit Kind = "debit"
	// KindCredit is a payment received; the balance is reduced and clamped at 0.
	KindCredit Kind = "credit"
	// KindAdjustment sets the balance to the amount absolutely. This is not a
	// delta, so the transaction log stops reconciling to the balance once an
	// adjustment is posted. Kept that way on purpose.
	KindAdjustment Kind = "adjustment"
)

// Transaction is an immutable ledger row justifying a balance change.
type Transaction struct {
	ID         uuid.UUID     `db:"id"`
	CustomerID uuid.UUID     `db:"customer_id"`
	SaleID     uuid.NullUUID `db:"sale_id"`
	Amount     int64         `db:"amount"`
	Kind       Kind          `db:"kind"`
	Notes      string        `db:"notes"`
	CreatedAt  time.Time     `db:"created_at"`
}
