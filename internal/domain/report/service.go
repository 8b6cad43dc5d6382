package report

import (
	"context"
	"time"
)

// Service exposes the report aggregations
type Service struct {
	repo              *Repository
	lowStockThreshold int64
}

// NewService creates report service
func NewService(repo *Repository, lowStockThreshold int64) *Service {
	return &Service{repo: repo, lowStockThreshold: lowStockThreshold}
}

func (s *Service) SalesSummary(ctx context.Context, start, end time.Time) (*SalesSummary, error) {
	return s.repo.SalesSummary(ctx, start, end)
}

func (s *Service) Inventory(ctx context.Context) (*InventoryReport, error) {
	return s.repo.Inventory(ctx, s.lowStockThreshold)
}

func (s *Service) CustomerDebits(ctx context.Context) (*CustomerDebitsReport, error) {
	return s.repo.CustomerDebits(ctx)
}

func (s *Service) DailySales(ctx context.Context, start, end time.Time) ([]DailyBucket, error) {
	return s.repo.DailySales(ctx, start, end)
}

func (s *Service) MonthlySales(ctx context.Context, year int) ([]MonthlyBucket, error) {
	return s.repo.MonthlySales(ctx, year)
}

func (s *Service) CustomerSales(ctx context.Context, start, end time.Time) (*CustomerSalesReport, error) {
	return s.repo.CustomerSales(ctx, start, end)
}

func (s *Service) PriceTypeAnalysis(ctx context.Context, start, end time.Time) ([]PriceTypeTotal, error) {
	return s.repo.PriceTypeAnalysis(ctx, start, end)
}
