package report

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository runs the report aggregations. All date windows are half-open:
// start inclusive, end exclusive.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates report repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) SalesSummary(ctx context.Context, start, end time.Time) (*SalesSummary, error) {
	summary := &SalesSummary{StartDate: start, EndDate: end}

	err := r.db.QueryRowxContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0), COALESCE(SUM(tax), 0), COALESCE(SUM(discount), 0)
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
	`, start, end).Scan(&summary.TotalSales, &summary.TotalRevenue, &summary.TotalTax, &summary.TotalDiscount)
	if err != nil {
		return nil, err
	}
	if summary.TotalSales > 0 {
		summary.AverageSale = summary.TotalRevenue / summary.TotalSales
	}

	err = r.db.SelectContext(ctx, &summary.PaymentMethods, `
		SELECT payment_method, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
		GROUP BY payment_method
		ORDER BY total DESC
	`, start, end)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &summary.TopProducts, `
		SELECT si.product_name, SUM(si.quantity) AS quantity, COALESCE(SUM(si.total), 0) AS total
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.sale_date >= $1 AND s.sale_date < $2
		GROUP BY si.product_name
		ORDER BY total DESC
		LIMIT 10
	`, start, end)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *Repository) Inventory(ctx context.Context, lowStockThreshold int64) (*InventoryReport, error) {
	report := &InventoryReport{}

	err := r.db.QueryRowxContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(stock * retail_price), 0)
		FROM products
	`).Scan(&report.TotalProducts, &report.TotalStockValue)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &report.LowStock, `
		SELECT id, name, stock FROM products
		WHERE stock > 0 AND stock <= $1
		ORDER BY stock
	`, lowStockThreshold)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &report.OutOfStock, `
		SELECT id, name, stock FROM products
		WHERE stock <= 0
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &report.ByCategory, `
		SELECT category, COUNT(*) AS count, COALESCE(SUM(stock * retail_price), 0) AS stock_value
		FROM products
		GROUP BY category
		ORDER BY stock_value DESC
	`)
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (r *Repository) CustomerDebits(ctx context.Context) (*CustomerDebitsReport, error) {
	report := &CustomerDebitsReport{}

	err := r.db.GetContext(ctx, &report.RoyalCustomers,
		`SELECT COUNT(*) FROM customers WHERE kind = 'royal'`)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &report.Customers, `
		SELECT id, name, phone, current_balance FROM customers
		WHERE kind = 'royal' AND current_balance > 0
		ORDER BY current_balance DESC
	`)
	if err != nil {
		return nil, err
	}

	report.CustomersWithDebt = int64(len(report.Customers))
	for i := range report.Customers {
		report.TotalOutstanding += report.Customers[i].CurrentBalance
	}
	return report, nil
}

func (r *Repository) DailySales(ctx context.Context, start, end time.Time) ([]DailyBucket, error) {
	var buckets []DailyBucket
	err := r.db.SelectContext(ctx, &buckets, `
		SELECT date_trunc('day', sale_date) AS day, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
		GROUP BY day
		ORDER BY day
	`, start, end)
	return buckets, err
}

func (r *Repository) MonthlySales(ctx context.Context, year int) ([]MonthlyBucket, error) {
	var buckets []MonthlyBucket
	err := r.db.SelectContext(ctx, &buckets, `
		SELECT EXTRACT(MONTH FROM sale_date)::int AS month,
			COUNT(*) AS count,
			COALESCE(SUM(total_amount), 0) AS total,
			COALESCE(SUM(total_amount) FILTER (WHERE price_type = 'retail'), 0) AS retail_total,
			COALESCE(SUM(total_amount) FILTER (WHERE price_type = 'wholesale'), 0) AS wholesale_total
		FROM sales
		WHERE EXTRACT(YEAR FROM sale_date) = $1
		GROUP BY month
		ORDER BY month
	`, year)
	return buckets, err
}

func (r *Repository) CustomerSales(ctx context.Context, start, end time.Time) (*CustomerSalesReport, error) {
	report := &CustomerSalesReport{}

	err := r.db.SelectContext(ctx, &report.Customers, `
		SELECT customer_name, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total
		FROM sales
		WHERE customer_id IS NOT NULL AND sale_date >= $1 AND sale_date < $2
		GROUP BY customer_name
		ORDER BY total DESC
	`, start, end)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &report.ByKind, `
		SELECT c.kind, COUNT(*) AS count, COALESCE(SUM(s.total_amount), 0) AS total
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		WHERE s.sale_date >= $1 AND s.sale_date < $2
		GROUP BY c.kind
		ORDER BY total DESC
	`, start, end)
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (r *Repository) PriceTypeAnalysis(ctx context.Context, start, end time.Time) ([]PriceTypeTotal, error) {
	var rows []PriceTypeTotal
	err := r.db.SelectContext(ctx, &rows, `
		SELECT price_type, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total,
			COALESCE(AVG(total_amount), 0)::bigint AS average
		FROM sales
		WHERE price_type <> '' AND sale_date >= $1 AND sale_date < $2
		GROUP BY price_type
		ORDER BY price_type
	`, start, end)
	if err != nil {
		return nil, err
	}

	var grand int64
	for i := range rows {
		grand += rows[i].Total
	}
	if grand != 0 {
		for i := range rows {
			rows[i].Share = float64(rows[i].Total) / float64(grand) * 100
		}
	}
	return rows, nil
}
