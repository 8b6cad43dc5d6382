package report

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethodTotal groups sales by payment method
type PaymentMethodTotal struct {
	PaymentMethod string `db:"payment_method" json:"payment_method"`
	Count         int64  `db:"count" json:"count"`
	Total         int64  `db:"total" json:"total"`
}

// ProductTotal is a product's aggregated sold quantity and revenue
type ProductTotal struct {
	ProductName string `db:"product_name" json:"product_name"`
	Quantity    int64  `db:"quantity" json:"quantity"`
	Total       int64  `db:"total" json:"total"`
}

// SalesSummary is the headline numbers for a date window plus the
// payment-method split and the ten best sellers
type SalesSummary struct {
	StartDate      time.Time            `json:"start_date"`
	EndDate        time.Time            `json:"end_date"`
	TotalSales     int64                `json:"total_sales"`
	TotalRevenue   int64                `json:"total_revenue"`
	TotalTax       int64                `json:"total_tax"`
	TotalDiscount  int64                `json:"total_discount"`
	AverageSale    int64                `json:"average_sale"`
	PaymentMethods []PaymentMethodTotal `json:"payment_methods"`
	TopProducts    []ProductTotal       `json:"top_products"`
}

// StockItem is a product's stock position
type StockItem struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Name  string    `db:"name" json:"name"`
	Stock int64     `db:"stock" json:"stock"`
}

// CategoryValue is one category's product count and stock value
type CategoryValue struct {
	Category   string `db:"category" json:"category"`
	Count      int64  `db:"count" json:"count"`
	StockValue int64  `db:"stock_value" json:"stock_value"`
}

// InventoryReport summarizes the stock position
type InventoryReport struct {
	TotalProducts   int64           `json:"total_products"`
	TotalStockValue int64           `json:"total_stock_value"`
	LowStock        []StockItem     `json:"low_stock"`
	OutOfStock      []StockItem     `json:"out_of_stock"`
	ByCategory      []CategoryValue `json:"by_category"`
}

// CustomerDebit is one customer's outstanding balance
type CustomerDebit struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Phone          string    `db:"phone" json:"phone,omitempty"`
	CurrentBalance int64     `db:"current_balance" json:"current_balance"`
}

// CustomerDebitsReport lists royal customers carrying debt
type CustomerDebitsReport struct {
	RoyalCustomers    int64           `json:"royal_customers"`
	CustomersWithDebt int64           `json:"customers_with_debt"`
	TotalOutstanding  int64           `json:"total_outstanding"`
	Customers         []CustomerDebit `json:"customers"`
}

// DailyBucket is one day's sales aggregate
type DailyBucket struct {
	Day   time.Time `db:"day" json:"day"`
	Count int64     `db:"count" json:"count"`
	Total int64     `db:"total" json:"total"`
}

// MonthlyBucket is one month's sales aggregate with the retail/wholesale
// split
type MonthlyBucket struct {
	Month          int64 `db:"month" json:"month"`
	Count          int64 `db:"count" json:"count"`
	Total          int64 `db:"total" json:"total"`
	RetailTotal    int64 `db:"retail_total" json:"retail_total"`
	WholesaleTotal int64 `db:"wholesale_total" json:"wholesale_total"`
}

// CustomerSales is one customer's aggregated purchases
type CustomerSales struct {
	CustomerName string `db:"customer_name" json:"customer_name"`
	Count        int64  `db:"count" json:"count"`
	Total        int64  `db:"total" json:"total"`
}

// KindTotal aggregates sales by customer kind
type KindTotal struct {
	Kind  string `db:"kind" json:"kind"`
	Count int64  `db:"count" json:"count"`
	Total int64  `db:"total" json:"total"`
}

// CustomerSalesReport lists customers by revenue plus the per-kind split
type CustomerSalesReport struct {
	Customers []CustomerSales `json:"customers"`
	ByKind    []KindTotal     `json:"by_kind"`
}

// PriceTypeTotal splits sales by retail and wholesale. Share is the revenue
// share in percent.
type PriceTypeTotal struct {
	PriceType string  `db:"price_type" json:"price_type"`
	Count     int64   `db:"count" json:"count"`
	Total     int64   `db:"total" json:"total"`
	Average   int64   `db:"average" json:"average"`
	Share     float64 `json:"share"`
}
