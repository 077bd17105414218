package repositories

import (
	"context"
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the aggregation queries behind the dashboard
// widgets. Only SUCCESS transactions contribute to any aggregate.
type ReportingRepository interface {
	// GetMonthlyFlowData returns the (month, type, total) buckets of settled
	// activity for one calendar year. Months with no activity are absent
	// from the result; zero-filling is the service's concern.
	GetMonthlyFlowData(ctx context.Context, userID string, year int) ([]domain.MonthlyFlowRow, error)

	// GetSpendingByCategory returns settled EXPENSE totals grouped by
	// category within [start, end], ordered by total descending. A NULL or
	// blank category is reported as-is; naming it is the service's concern.
	GetSpendingByCategory(ctx context.Context, userID string, start, end time.Time) ([]domain.CategorySpend, error)

	// GetTotalIncome sums settled INCOME within [start, end]; zero when empty.
	GetTotalIncome(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error)

	// GetTotalExpenses sums settled EXPENSE within [start, end]; zero when empty.
	GetTotalExpenses(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error)
}
