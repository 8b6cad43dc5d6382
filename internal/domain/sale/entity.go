package sale

import (
	"time"

	"github.com/google/uuid"
)

// Sale is a completed checkout. Totals are captured at sale time and never
// recomputed: tax is always 0 and total_amount = subtotal - discount, which
// may go negative when the discount exceeds the subtotal.
type Sale struct {
	ID            uuid.UUID     `db:"id"`
	SaleDate      time.Time     `db:"sale_date"`
	Subtotal      int64         `db:"subtotal"`
	Tax           int64         `db:"tax"`
	Discount      int64         `db:"discount"`
	TotalAmount   int64         `db:"total_amount"`
	PaymentAmount int64         `db:"payment_amount"`
	Balance       int64         `db:"balance"`
	PaymentMethod string        `db:"payment_method"`
	CustomerID    uuid.NullUUID `db:"customer_id"`
	CustomerName  string        `db:"customer_name"`
	PriceType     string        `db:"price_type"`
	IsPaid        bool          `db:"is_paid"`
	CreatedAt     time.Time     `db:"created_at"`
}

// SaleItem is one line of a sale. ProductID is nullable: lines keep their
// snapshot name and price even after the product is retired.
type SaleItem struct {
	ID          uuid.UUID     `db:"id"`
	SaleID      uuid.UUID     `db:"sale_id"`
	ProductID   uuid.NullUUID `db:"product_id"`
	ProductName string        `db:"product_name"`
	Quantity    int64         `db:"quantity"`
	UnitPrice   int64         `db:"unit_price"`
	Total       int64         `db:"total"`
}
