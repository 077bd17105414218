package services

import (
	"context"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/bdpay/dashboard-backend/internal/dto"
)

// TransactionSvcFacade exposes journal operations. Methods taking a
// requesterID enforce ownership of the touched account or transaction.
type TransactionSvcFacade interface {
	// CreateTransaction records a new PENDING transaction against one of the
	// requester's accounts. Amount must be strictly positive.
	CreateTransaction(ctx context.Context, requesterID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ProcessTransaction settles a PENDING transaction to SUCCESS or FAILED.
	// SUCCESS applies the balance mutation to the owning account in the same
	// atomic unit as the status flip. Non-pending transactions are rejected
	// with apperrors.ErrValidation.
	ProcessTransaction(ctx context.Context, requesterID string, transactionID string, newStatus domain.TransactionStatus) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction unless it settled SUCCESS.
	DeleteTransaction(ctx context.Context, requesterID string, transactionID string) error

	// GetTransactionByID fetches one transaction, enforcing ownership.
	GetTransactionByID(ctx context.Context, requesterID string, transactionID string) (*domain.Transaction, error)

	// GetRecentTransactions returns the user's 10 most recent transactions.
	GetRecentTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// GetUserTransactions returns one page of the user's transactions plus
	// the total count, ordered by transaction date descending.
	GetUserTransactions(ctx context.Context, userID string, page int, size int) ([]domain.Transaction, int64, error)

	// GetAccountTransactions returns one page of an account's transactions,
	// enforcing ownership of the account.
	GetAccountTransactions(ctx context.Context, requesterID string, accountID string, page int, size int) ([]domain.Transaction, int64, error)

	// GetPendingTransactions returns the user's PENDING transactions.
	GetPendingTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// SearchTransactions matches business names case-insensitively, scoped
	// to the user's own accounts.
	SearchTransactions(ctx context.Context, userID string, term string) ([]domain.Transaction, error)

	// InitializeSampleTransactions seeds the demo journal at registration.
	InitializeSampleTransactions(ctx context.Context, userID string) error
}
