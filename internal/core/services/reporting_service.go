package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	portsrepo "github.com/bdpay/dashboard-backend/internal/core/ports/repositories"
	portssvc "github.com/bdpay/dashboard-backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// uncategorizedLabel names spending rows whose transaction had no category.
const uncategorizedLabel = "Others"

// ReportingService materializes the dashboard aggregations.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
	now           func() time.Time
}

func NewReportingService(reportingRepo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{
		reportingRepo: reportingRepo,
		now:           time.Now,
	}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetMonthlyFlow materializes the money-flow chart: always 12 income and 12
// expense buckets, zero-filled for months without settled activity.
func (s *ReportingService) GetMonthlyFlow(ctx context.Context, userID string, year int) (*domain.MonthlyFlow, error) {
	if year == 0 {
		year = s.now().Year()
	}

	rows, err := s.reportingRepo.GetMonthlyFlowData(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly flow: %w", err)
	}

	flow := &domain.MonthlyFlow{}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		switch row.TransactionType {
		case domain.Income:
			flow.Income[row.Month-1] = row.Total
		case domain.Expense:
			flow.Expense[row.Month-1] = row.Total
		}
	}
	return flow, nil
}

// resolvePeriod maps a named period onto a concrete [start, end] range.
// Unknown names fall back to the current month.
func (s *ReportingService) resolvePeriod(period string) (string, time.Time, time.Time) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	switch period {
	case "last":
		start := monthStart.AddDate(0, -1, 0)
		end := monthStart.Add(-time.Second)
		return "last", start, end
	case "quarter":
		quarterStartMonth := time.Month(((int(now.Month())-1)/3)*3 + 1)
		start := time.Date(now.Year(), quarterStartMonth, 1, 0, 0, 0, 0, now.Location())
		return "quarter", start, now
	case "year":
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return "year", start, now
	default:
		return "current", monthStart, now
	}
}

// GetSpendingStatistics resolves a named period and returns settled expense
// totals per category, largest first.
func (s *ReportingService) GetSpendingStatistics(ctx context.Context, userID string, period string) (*domain.SpendingStatistics, error) {
	resolved, start, end := s.resolvePeriod(period)

	rows, err := s.reportingRepo.GetSpendingByCategory(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get spending statistics: %w", err)
	}

	total := decimal.Zero
	categories := make([]domain.CategorySpend, 0, len(rows))
	for _, row := range rows {
		if row.Category == "" {
			row.Category = uncategorizedLabel
		}
		total = total.Add(row.Total)
		categories = append(categories, row)
	}

	return &domain.SpendingStatistics{
		Categories: categories,
		Total:      total,
		Period:     resolved,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

// GetTotalIncome sums settled income in [start, end].
func (s *ReportingService) GetTotalIncome(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error) {
	total, err := s.reportingRepo.GetTotalIncome(ctx, userID, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get total income: %w", err)
	}
	return total, nil
}

// GetTotalExpenses sums settled expenses in [start, end].
func (s *ReportingService) GetTotalExpenses(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error) {
	total, err := s.reportingRepo.GetTotalExpenses(ctx, userID, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get total expenses: %w", err)
	}
	return total, nil
}
