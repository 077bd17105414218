package repositories

import (
	"context"
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for transaction data. All
// user-scoped queries join through the account table so only transactions
// against the user's own accounts are visible.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByUserID retrieves a page of the user's transactions,
	// ordered by transaction date descending, plus the total row count.
	FindTransactionsByUserID(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, int64, error)

	// FindTransactionsByAccountID retrieves a page of an account's
	// transactions, ordered by transaction date descending, plus the total count.
	FindTransactionsByAccountID(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, int64, error)

	// FindRecentByUserID retrieves the user's most recent transactions.
	FindRecentByUserID(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)

	// FindPendingByUserID retrieves the user's PENDING transactions, newest first.
	FindPendingByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)

	// SearchByBusinessName retrieves the user's transactions whose business
	// name contains the term, case-insensitively, newest first.
	SearchByBusinessName(ctx context.Context, userID string, term string) ([]domain.Transaction, error)

	// CountByAccountID counts transactions referencing an account, any status.
	CountByAccountID(ctx context.Context, accountID string) (int64, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction row.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSettlementSupport defines operations used inside the scoped
// database transaction that settles a pending transaction.
type TransactionSettlementSupport interface {
	// FindTransactionByIDForUpdate selects a transaction and locks its row
	// within the given transaction.
	FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error)

	// UpdateStatusInTx flips a transaction's status within the given transaction.
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.TransactionStatus, now time.Time) error
}

// TransactionRepository combines all transaction repository interfaces.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
	TransactionSettlementSupport
}

// TransactionRepositoryWithTx extends TransactionRepository with transaction management.
type TransactionRepositoryWithTx interface {
	TransactionRepository
	TransactionManager
}
