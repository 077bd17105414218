package services

import (
	"context"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/bdpay/dashboard-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountSvcFacade exposes ledger operations. Methods taking a requesterID
// verify that the authenticated user owns the touched account and return
// apperrors.ErrForbidden otherwise.
type AccountSvcFacade interface {
	// CreateAccount creates an account for the user. Returns
	// apperrors.ErrDuplicate when the user already holds an account of the
	// requested type. WALLET accounts get default limits and card metadata.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// InitializeDefaultAccounts seeds the four demo accounts at registration.
	InitializeDefaultAccounts(ctx context.Context, userID string) error

	// GetUserAccounts lists the user's accounts ordered by account type.
	GetUserAccounts(ctx context.Context, userID string) ([]domain.Account, error)

	// GetAccountByID fetches one account, enforcing ownership.
	GetAccountByID(ctx context.Context, requesterID string, accountID string) (*domain.Account, error)

	// GetWalletAccount fetches the user's WALLET account.
	GetWalletAccount(ctx context.Context, userID string) (*domain.Account, error)

	// GetTotalBalance sums the user's current balances; zero with no accounts.
	GetTotalBalance(ctx context.Context, userID string) (decimal.Decimal, error)

	// UpdateBalance snapshots previous<-current then overwrites current.
	// The new balance is not validated against transaction history.
	UpdateBalance(ctx context.Context, requesterID string, accountID string, newBalance decimal.Decimal) (*domain.Account, error)

	// UpdateSpendingLimit changes the wallet limit. Returns
	// apperrors.ErrValidation for non-WALLET accounts.
	UpdateSpendingLimit(ctx context.Context, requesterID string, accountID string, newLimit decimal.Decimal) (*domain.Account, error)

	// TransferMoney moves amount between two accounts of the same user as a
	// single atomic unit: both rows updated or neither.
	TransferMoney(ctx context.Context, requesterID string, fromAccountID, toAccountID string, amount decimal.Decimal) error

	// DeleteAccount removes an account owning zero transactions.
	DeleteAccount(ctx context.Context, requesterID string, accountID string) error
}
