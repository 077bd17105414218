package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bdpay/dashboard-backend/internal/apperrors"
	"github.com/bdpay/dashboard-backend/internal/core/domain"
	portsrepo "github.com/bdpay/dashboard-backend/internal/core/ports/repositories"
	"github.com/bdpay/dashboard-backend/internal/models"
	"github.com/bdpay/dashboard-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `t.transaction_id, t.account_id, t.business_name, t.category, t.amount, t.transaction_type, t.status, t.description, t.transaction_date, t.created_at, t.updated_at`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	var txnType, status string
	var category, description *string
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.BusinessName,
		&category,
		&m.Amount,
		&txnType,
		&status,
		&description,
		&m.TransactionDate,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.TransactionType, err = models.ParseTransactionType(txnType)
	if err != nil {
		return nil, err
	}
	m.Status, err = models.ParseTransactionStatus(status)
	if err != nil {
		return nil, err
	}
	if category != nil {
		m.Category = *category
	}
	if description != nil {
		m.Description = *description
	}
	return &m, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()
	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, mapping.ToDomainTransaction(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

// SaveTransaction persists a new transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, account_id, business_name, category, amount, transaction_type, status, description, transaction_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.BusinessName,
		nullableString(m.Category),
		m.Amount,
		m.TransactionType,
		m.Status,
		nullableString(m.Description),
		m.TransactionDate,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions t WHERE t.transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

// FindTransactionsByUserID retrieves a page of a user's transactions together
// with the total row count used for pagination metadata.
func (r *PgxTransactionRepository) FindTransactionsByUserID(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, int64, error) {
	countQuery := `
		SELECT COUNT(*) FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.user_id = $1;
	`
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions for user %s: %w", userID, err)
	}

	query := `
		SELECT ` + transactionColumns + ` FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.user_id = $1
		ORDER BY t.transaction_date DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

// FindTransactionsByAccountID retrieves a page of an account's transactions
// together with the total row count.
func (r *PgxTransactionRepository) FindTransactionsByAccountID(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE account_id = $1;`, accountID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions for account %s: %w", accountID, err)
	}

	query := `
		SELECT ` + transactionColumns + ` FROM transactions t
		WHERE t.account_id = $1
		ORDER BY t.transaction_date DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

// FindRecentByUserID retrieves the user's most recent transactions.
func (r *PgxTransactionRepository) FindRecentByUserID(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + ` FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.user_id = $1
		ORDER BY t.transaction_date DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions for user %s: %w", userID, err)
	}
	return collectTransactions(rows)
}

// FindPendingByUserID retrieves the user's PENDING transactions, newest first.
func (r *PgxTransactionRepository) FindPendingByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + ` FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.user_id = $1 AND t.status = $2
		ORDER BY t.transaction_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, string(domain.StatusPending))
	if err != nil {
		return nil, fmt.Errorf("failed to query pending transactions for user %s: %w", userID, err)
	}
	return collectTransactions(rows)
}

// SearchByBusinessName retrieves the user's transactions whose business name
// contains the term, case-insensitively.
func (r *PgxTransactionRepository) SearchByBusinessName(ctx context.Context, userID string, term string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + ` FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.user_id = $1 AND t.business_name ILIKE '%' || $2 || '%'
		ORDER BY t.transaction_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions for user %s: %w", userID, err)
	}
	return collectTransactions(rows)
}

// CountByAccountID counts transactions referencing an account, any status.
func (r *PgxTransactionRepository) CountByAccountID(ctx context.Context, accountID string) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE account_id = $1;`, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions for account %s: %w", accountID, err)
	}
	return count, nil
}

// DeleteTransaction removes a transaction row.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindTransactionByIDForUpdate selects a transaction and locks its row within
// the given transaction.
func (r *PgxTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions t WHERE t.transaction_id = $1 FOR UPDATE;`
	m, err := scanTransaction(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

// UpdateStatusInTx flips a transaction's status within the given transaction.
func (r *PgxTransactionRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.TransactionStatus, now time.Time) error {
	query := `UPDATE transactions SET status = $2, updated_at = $3 WHERE transaction_id = $1;`
	tag, err := tx.Exec(ctx, query, transactionID, string(status), now)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
