package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyFlowRow is one aggregated (month, type) bucket of settled activity.
// Month is 1-based (January = 1).
type MonthlyFlowRow struct {
	Month           int
	TransactionType TransactionType
	Total           decimal.Decimal
}

// MonthlyFlow is the fully materialized money-flow chart for one year:
// always exactly 12 income and 12 expense buckets, zero-filled.
type MonthlyFlow struct {
	Income  [12]decimal.Decimal
	Expense [12]decimal.Decimal
}

// CategorySpend is one row of the spending-by-category statistics panel.
// Category is never empty; uncategorized spending reports as "Others".
type CategorySpend struct {
	Category string
	Total    decimal.Decimal
}

// SpendingStatistics is the resolved statistics panel for a period.
type SpendingStatistics struct {
	Categories []CategorySpend
	Total      decimal.Decimal
	Period     string
	StartDate  time.Time
	EndDate    time.Time
}
