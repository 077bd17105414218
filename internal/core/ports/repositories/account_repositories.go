package repositories

import (
	"context"
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByUserID retrieves all accounts of a user, ordered by account type.
	FindAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error)

	// FindAccountByUserAndType retrieves the user's account of the given type.
	FindAccountByUserAndType(ctx context.Context, userID string, accountType domain.AccountType) (*domain.Account, error)

	// GetTotalBalanceByUserID sums current balances across the user's
	// accounts. Returns zero, not an error, for a user with no accounts.
	GetTotalBalanceByUserID(ctx context.Context, userID string) (decimal.Decimal, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account. A second account of the same type
	// for the same user yields apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount overwrites an existing account's mutable fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account row.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountTransactionSupport defines operations used inside scoped database
// transactions for multi-row balance mutations.
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks their rows
	// (FOR UPDATE) within the given transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx writes the current/previous balance snapshot
	// of each account within the given transaction.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account, now time.Time) error
}

// AccountRepository combines all account repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepository with transaction management.
type AccountRepositoryWithTx interface {
	AccountRepository
	TransactionManager
}
