package services

import (
	"context"
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade exposes the dashboard aggregations.
type ReportingSvcFacade interface {
	// GetMonthlyFlow materializes the money-flow chart for one year: always
	// 12 income and 12 expense buckets, zero-filled.
	GetMonthlyFlow(ctx context.Context, userID string, year int) (*domain.MonthlyFlow, error)

	// GetSpendingStatistics resolves a named period (current, last, quarter,
	// year) and returns settled expense totals per category, largest first,
	// with blank categories reported as "Others".
	GetSpendingStatistics(ctx context.Context, userID string, period string) (*domain.SpendingStatistics, error)

	// GetTotalIncome sums settled income in [start, end]; zero when empty.
	GetTotalIncome(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error)

	// GetTotalExpenses sums settled expenses in [start, end]; zero when empty.
	GetTotalExpenses(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error)
}
