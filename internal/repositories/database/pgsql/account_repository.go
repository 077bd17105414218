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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, user_id, account_name, account_type, current_balance, previous_balance, spending_limit, total_limit, card_number, card_type, created_at, updated_at`

// scanAccount decodes one account row. The account type is parsed strictly;
// an unrecognized stored value is an error, never a silent zero value.
func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	var accountType string
	var cardNumber, cardType *string
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.AccountName,
		&accountType,
		&m.CurrentBalance,
		&m.PreviousBalance,
		&m.SpendingLimit,
		&m.TotalLimit,
		&cardNumber,
		&cardType,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.AccountType, err = models.ParseAccountType(accountType)
	if err != nil {
		return nil, err
	}
	if cardNumber != nil {
		m.CardNumber = *cardNumber
	}
	if cardType != nil {
		m.CardType = *cardType
	}
	return &m, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SaveAccount inserts a new account. The (user_id, account_type) unique
// constraint maps to ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, user_id, account_name, account_type, current_balance, previous_balance, spending_limit, total_limit, card_number, card_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.AccountName,
		m.AccountType,
		m.CurrentBalance,
		m.PreviousBalance,
		m.SpendingLimit,
		m.TotalLimit,
		nullableString(m.CardNumber),
		nullableString(m.CardType),
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: account type %s already exists for user", apperrors.ErrDuplicate, m.AccountType)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// FindAccountsByUserID retrieves all accounts of a user, ordered by type.
func (r *PgxAccountRepository) FindAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY account_type ASC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, mapping.ToDomainAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts for user %s: %w", userID, err)
	}
	return accounts, nil
}

// FindAccountByUserAndType retrieves the user's account of the given type.
func (r *PgxAccountRepository) FindAccountByUserAndType(ctx context.Context, userID string, accountType domain.AccountType) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 AND account_type = $2;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, userID, string(accountType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s account for user %s: %w", accountType, userID, err)
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// GetTotalBalanceByUserID sums current balances; zero for no accounts.
func (r *PgxAccountRepository) GetTotalBalanceByUserID(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(current_balance), 0) FROM accounts WHERE user_id = $1;`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum balances for user %s: %w", userID, err)
	}
	return total, nil
}

// UpdateAccount overwrites an existing account's mutable fields.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET account_name = $2, current_balance = $3, previous_balance = $4, spending_limit = $5, total_limit = $6, card_number = $7, card_type = $8, updated_at = $9
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.AccountName,
		m.CurrentBalance,
		m.PreviousBalance,
		m.SpendingLimit,
		m.TotalLimit,
		nullableString(m.CardNumber),
		nullableString(m.CardType),
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account row.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountsByIDsForUpdate selects accounts and locks their rows within
// the given transaction. Rows are locked in account_id order so opposing
// concurrent transfers cannot deadlock. Every requested ID must resolve.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1) ORDER BY account_id FOR UPDATE;`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locked accounts: %w", err)
	}
	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
	}
	return accounts, nil
}

// UpdateAccountBalancesInTx writes the current/previous balance snapshot of
// each account within the given transaction.
func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account, now time.Time) error {
	query := `
		UPDATE accounts
		SET current_balance = $2, previous_balance = $3, updated_at = $4
		WHERE account_id = $1;
	`
	batch := &pgx.Batch{}
	for _, acc := range accounts {
		batch.Queue(query, acc.AccountID, acc.CurrentBalance, acc.PreviousBalance, now)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to update account balances: %w", err)
	}
	return nil
}
