package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	portsrepo "github.com/bdpay/dashboard-backend/internal/core/ports/repositories"
	"github.com/bdpay/dashboard-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxReportingRepository answers the dashboard aggregation queries. All of
// its queries restrict to SUCCESS transactions.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetMonthlyFlowData returns (month, type, total) buckets of settled activity
// for one calendar year. Months without activity produce no row.
func (r *PgxReportingRepository) GetMonthlyFlowData(ctx context.Context, userID string, year int) ([]domain.MonthlyFlowRow, error) {
	query := `
		SELECT EXTRACT(MONTH FROM t.transaction_date)::int AS month, t.transaction_type, SUM(t.amount) AS total
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.user_id = $1
		  AND t.status = $2
		  AND EXTRACT(YEAR FROM t.transaction_date) = $3
		GROUP BY month, t.transaction_type
		ORDER BY month ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, string(domain.StatusSuccess), year)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly flow for user %s: %w", userID, err)
	}
	defer rows.Close()

	result := []domain.MonthlyFlowRow{}
	for rows.Next() {
		var row domain.MonthlyFlowRow
		var txnType string
		if err := rows.Scan(&row.Month, &txnType, &row.Total); err != nil {
			return nil, err
		}
		parsed, err := models.ParseTransactionType(txnType)
		if err != nil {
			return nil, err
		}
		row.TransactionType = domain.TransactionType(parsed)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly flow for user %s: %w", userID, err)
	}
	return result, nil
}

// GetSpendingByCategory returns settled EXPENSE totals per category within
// [start, end], largest first.
func (r *PgxReportingRepository) GetSpendingByCategory(ctx context.Context, userID string, start, end time.Time) ([]domain.CategorySpend, error) {
	query := `
		SELECT COALESCE(t.category, '') AS category, SUM(t.amount) AS total
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.user_id = $1
		  AND t.status = $2
		  AND t.transaction_type = $3
		  AND t.transaction_date >= $4
		  AND t.transaction_date <= $5
		GROUP BY category
		ORDER BY total DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, string(domain.StatusSuccess), string(domain.Expense), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query spending by category for user %s: %w", userID, err)
	}
	defer rows.Close()

	result := []domain.CategorySpend{}
	for rows.Next() {
		var spend domain.CategorySpend
		if err := rows.Scan(&spend.Category, &spend.Total); err != nil {
			return nil, err
		}
		result = append(result, spend)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spending by category for user %s: %w", userID, err)
	}
	return result, nil
}

// GetTotalIncome sums settled INCOME within [start, end].
func (r *PgxReportingRepository) GetTotalIncome(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error) {
	return r.sumByType(ctx, userID, domain.Income, start, end)
}

// GetTotalExpenses sums settled EXPENSE within [start, end].
func (r *PgxReportingRepository) GetTotalExpenses(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error) {
	return r.sumByType(ctx, userID, domain.Expense, start, end)
}

func (r *PgxReportingRepository) sumByType(ctx context.Context, userID string, txnType domain.TransactionType, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.user_id = $1
		  AND t.status = $2
		  AND t.transaction_type = $3
		  AND t.transaction_date >= $4
		  AND t.transaction_date <= $5;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID, string(domain.StatusSuccess), string(txnType), start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s for user %s: %w", txnType, userID, err)
	}
	return total, nil
}
