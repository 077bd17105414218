package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bdpay/dashboard-backend/internal/apperrors"
	"github.com/bdpay/dashboard-backend/internal/core/domain"
	portsrepo "github.com/bdpay/dashboard-backend/internal/core/ports/repositories"
	portssvc "github.com/bdpay/dashboard-backend/internal/core/ports/services"
	"github.com/bdpay/dashboard-backend/internal/dto"
	"github.com/bdpay/dashboard-backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet accounts carry demo card metadata and limits.
var (
	walletTotalLimit    = decimal.RequireFromString("13000.00")
	walletSpendingLimit = decimal.RequireFromString("9800.00")
)

const (
	walletCardNumber = "**** **** **** 1234"
	walletCardType   = "VISA"
)

// defaultAccountSeed lists the demo accounts created at registration.
var defaultAccountSeed = []struct {
	Name    string
	Type    domain.AccountType
	Balance string
}{
	{"Business account", domain.Business, "24098.00"},
	{"Tax Reserve", domain.TaxReserve, "2456.89"},
	{"Savings", domain.Savings, "1980.00"},
	{"Wallet", domain.Wallet, "1550.62"},
}

// AccountService implements ledger operations.
type AccountService struct {
	accountRepo     portsrepo.AccountRepositoryWithTx
	transactionRepo portsrepo.TransactionReader
}

func NewAccountService(accountRepo portsrepo.AccountRepositoryWithTx, transactionRepo portsrepo.TransactionReader) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// newAccount builds a fresh account of the given type. WALLET accounts get
// the demo limits and card metadata.
func newAccount(userID, name string, accountType domain.AccountType, balance decimal.Decimal, now time.Time) domain.Account {
	account := domain.Account{
		AccountID:       uuid.NewString(),
		UserID:          userID,
		AccountName:     name,
		AccountType:     accountType,
		CurrentBalance:  balance,
		PreviousBalance: decimal.NewNullDecimal(decimal.Zero),
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if accountType == domain.Wallet {
		account.TotalLimit = decimal.NewNullDecimal(walletTotalLimit)
		account.SpendingLimit = decimal.NewNullDecimal(walletSpendingLimit)
		account.CardNumber = walletCardNumber
		account.CardType = walletCardType
	}
	return account
}

// CreateAccount creates an account for the user.
func (s *AccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.InitialBalance.IsPositive() {
		return nil, fmt.Errorf("%w: initial balance must be positive", apperrors.ErrValidation)
	}

	account := newAccount(userID, req.AccountName, req.AccountType, req.InitialBalance, time.Now())
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

// InitializeDefaultAccounts seeds the four demo accounts at registration.
func (s *AccountService) InitializeDefaultAccounts(ctx context.Context, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	for _, seed := range defaultAccountSeed {
		account := newAccount(userID, seed.Name, seed.Type, decimal.RequireFromString(seed.Balance), now)
		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			logger.Error("Failed to seed default account", slog.String("error", err.Error()), slog.String("account_type", string(seed.Type)))
			return fmt.Errorf("failed to seed %s account: %w", seed.Type, err)
		}
	}

	logger.Info("Default accounts seeded", slog.String("user_id", userID))
	return nil
}

// GetUserAccounts lists the user's accounts ordered by account type.
func (s *AccountService) GetUserAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// getOwnedAccount fetches an account and verifies the requester owns it.
func (s *AccountService) getOwnedAccount(ctx context.Context, requesterID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != requesterID {
		return nil, fmt.Errorf("%w: account belongs to another user", apperrors.ErrForbidden)
	}
	return account, nil
}

// GetAccountByID fetches one account, enforcing ownership.
func (s *AccountService) GetAccountByID(ctx context.Context, requesterID string, accountID string) (*domain.Account, error) {
	return s.getOwnedAccount(ctx, requesterID, accountID)
}

// GetWalletAccount fetches the user's WALLET account.
func (s *AccountService) GetWalletAccount(ctx context.Context, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByUserAndType(ctx, userID, domain.Wallet)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no wallet account", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wallet account: %w", err)
	}
	return account, nil
}

// GetTotalBalance sums the user's current balances.
func (s *AccountService) GetTotalBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	total, err := s.accountRepo.GetTotalBalanceByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get total balance: %w", err)
	}
	return total, nil
}

// UpdateBalance snapshots previous<-current then overwrites the current
// balance. The new value is not reconciled against transaction history.
func (s *AccountService) UpdateBalance(ctx context.Context, requesterID string, accountID string, newBalance decimal.Decimal) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.getOwnedAccount(ctx, requesterID, accountID)
	if err != nil {
		return nil, err
	}

	account.PreviousBalance = decimal.NewNullDecimal(account.CurrentBalance)
	account.CurrentBalance = newBalance
	account.UpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update balance", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	logger.Info("Balance updated", slog.String("account_id", accountID))
	return account, nil
}

// UpdateSpendingLimit changes the wallet spending limit.
func (s *AccountService) UpdateSpendingLimit(ctx context.Context, requesterID string, accountID string, newLimit decimal.Decimal) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.getOwnedAccount(ctx, requesterID, accountID)
	if err != nil {
		return nil, err
	}
	if account.AccountType != domain.Wallet {
		return nil, fmt.Errorf("%w: spending limit applies only to wallet accounts", apperrors.ErrValidation)
	}
	if newLimit.IsNegative() {
		return nil, fmt.Errorf("%w: spending limit must not be negative", apperrors.ErrValidation)
	}

	account.SpendingLimit = decimal.NewNullDecimal(newLimit)
	account.UpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update spending limit", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update spending limit: %w", err)
	}

	return account, nil
}

// TransferMoney moves amount between two accounts of the same user as one
// atomic unit. Both rows are locked, mutated and committed together.
func (s *AccountService) TransferMoney(ctx context.Context, requesterID string, fromAccountID, toAccountID string, amount decimal.Decimal) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amount.IsPositive() {
		return fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	if fromAccountID == toAccountID {
		return fmt.Errorf("%w: cannot transfer to the same account", apperrors.ErrValidation)
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transfer transaction: %w", err)
	}
	defer func() {
		_ = s.accountRepo.Rollback(ctx, tx)
	}()

	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{fromAccountID, toAccountID})
	if err != nil {
		return err
	}

	from := accounts[fromAccountID]
	to := accounts[toAccountID]
	if from.UserID != requesterID {
		return fmt.Errorf("%w: source account belongs to another user", apperrors.ErrForbidden)
	}
	if to.UserID != requesterID {
		return fmt.Errorf("%w: cannot transfer to another user's account", apperrors.ErrValidation)
	}
	if from.CurrentBalance.LessThan(amount) {
		return fmt.Errorf("%w: insufficient funds in source account", apperrors.ErrValidation)
	}

	now := time.Now()
	from.PreviousBalance = decimal.NewNullDecimal(from.CurrentBalance)
	from.CurrentBalance = from.CurrentBalance.Sub(amount)
	to.PreviousBalance = decimal.NewNullDecimal(to.CurrentBalance)
	to.CurrentBalance = to.CurrentBalance.Add(amount)

	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, []domain.Account{from, to}, now); err != nil {
		return err
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit transfer: %w", err)
	}

	logger.Info("Transfer completed",
		slog.String("from_account_id", fromAccountID),
		slog.String("to_account_id", toAccountID),
		slog.String("amount", amount.String()),
	)
	return nil
}

// DeleteAccount removes an account that owns zero transactions.
func (s *AccountService) DeleteAccount(ctx context.Context, requesterID string, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.getOwnedAccount(ctx, requesterID, accountID); err != nil {
		return err
	}

	count, err := s.transactionRepo.CountByAccountID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to count transactions for account: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: account has transactions and cannot be deleted", apperrors.ErrValidation)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		logger.Error("Failed to delete account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	return nil
}
