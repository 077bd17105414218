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

// recentTransactionLimit is the fixed size of the dashboard's recent list.
const recentTransactionLimit = 10

// sampleTransactionSeed lists the demo journal entries created at
// registration, all against the BUSINESS account.
var sampleTransactionSeed = []struct {
	BusinessName string
	Category     string
	Amount       string
	Type         domain.TransactionType
	Description  string
	SettleTo     domain.TransactionStatus // empty string leaves it PENDING
}{
	{"Gym", "Payment", "300.00", domain.Expense, "Monthly gym membership", ""},
	{"Al-Bank", "Deposit", "890.00", domain.Income, "Bank deposit", domain.StatusSuccess},
	{"Facebook Ads", "Payment", "123.00", domain.Expense, "Marketing campaign", domain.StatusFailed},
}

// TransactionService implements journal operations.
type TransactionService struct {
	transactionRepo portsrepo.TransactionRepositoryWithTx
	accountRepo     portsrepo.AccountRepositoryWithTx
}

func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryWithTx, accountRepo portsrepo.AccountRepositoryWithTx) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// CreateTransaction records a new PENDING transaction against one of the
// requester's accounts.
func (s *TransactionService) CreateTransaction(ctx context.Context, requesterID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != requesterID {
		return nil, fmt.Errorf("%w: account belongs to another user", apperrors.ErrForbidden)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       req.AccountID,
		BusinessName:    req.BusinessName,
		Category:        req.Category,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Status:          domain.StatusPending,
		Description:     req.Description,
		TransactionDate: now,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

// ProcessTransaction settles a PENDING transaction to SUCCESS or FAILED.
// SUCCESS applies the balance mutation to the owning account in the same
// database transaction as the status flip; the transaction row and the
// account row are both locked for the duration.
func (s *TransactionService) ProcessTransaction(ctx context.Context, requesterID string, transactionID string, newStatus domain.TransactionStatus) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if newStatus != domain.StatusSuccess && newStatus != domain.StatusFailed {
		return nil, fmt.Errorf("%w: status must be SUCCESS or FAILED", apperrors.ErrValidation)
	}

	tx, err := s.transactionRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin settlement transaction: %w", err)
	}
	defer func() {
		_ = s.transactionRepo.Rollback(ctx, tx)
	}()

	txn, err := s.transactionRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: only pending transactions can be processed", apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{txn.AccountID})
	if err != nil {
		return nil, err
	}
	account := accounts[txn.AccountID]
	if account.UserID != requesterID {
		return nil, fmt.Errorf("%w: transaction belongs to another user", apperrors.ErrForbidden)
	}

	now := time.Now()
	if newStatus == domain.StatusSuccess {
		account.PreviousBalance = decimal.NewNullDecimal(account.CurrentBalance)
		account.CurrentBalance = account.CurrentBalance.Add(txn.SignedAmount())
		if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, []domain.Account{account}, now); err != nil {
			return nil, err
		}
	}

	if err := s.transactionRepo.UpdateStatusInTx(ctx, tx, transactionID, newStatus, now); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit settlement: %w", err)
	}

	txn.Status = newStatus
	txn.UpdatedAt = now
	logger.Info("Transaction processed",
		slog.String("transaction_id", transactionID),
		slog.String("status", string(newStatus)),
	)
	return txn, nil
}

// getOwnedTransaction fetches a transaction and verifies the requester owns
// the account it belongs to.
func (s *TransactionService) getOwnedTransaction(ctx context.Context, requesterID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owning account: %w", err)
	}
	if account.UserID != requesterID {
		return nil, fmt.Errorf("%w: transaction belongs to another user", apperrors.ErrForbidden)
	}
	return txn, nil
}

// DeleteTransaction removes a transaction unless it settled SUCCESS, since
// a settled transaction already mutated its account balance.
func (s *TransactionService) DeleteTransaction(ctx context.Context, requesterID string, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.getOwnedTransaction(ctx, requesterID, transactionID)
	if err != nil {
		return err
	}
	if txn.Status == domain.StatusSuccess {
		return fmt.Errorf("%w: successful transactions cannot be deleted", apperrors.ErrValidation)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// GetTransactionByID fetches one transaction, enforcing ownership.
func (s *TransactionService) GetTransactionByID(ctx context.Context, requesterID string, transactionID string) (*domain.Transaction, error) {
	return s.getOwnedTransaction(ctx, requesterID, transactionID)
}

// GetRecentTransactions returns the user's 10 most recent transactions.
func (s *TransactionService) GetRecentTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.FindRecentByUserID(ctx, userID, recentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return txns, nil
}

// GetUserTransactions returns one page of the user's transactions plus the
// total count.
func (s *TransactionService) GetUserTransactions(ctx context.Context, userID string, page int, size int) ([]domain.Transaction, int64, error) {
	txns, total, err := s.transactionRepo.FindTransactionsByUserID(ctx, userID, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get user transactions: %w", err)
	}
	return txns, total, nil
}

// GetAccountTransactions returns one page of an account's transactions,
// enforcing ownership of the account.
func (s *TransactionService) GetAccountTransactions(ctx context.Context, requesterID string, accountID string, page int, size int) ([]domain.Transaction, int64, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}
	if account.UserID != requesterID {
		return nil, 0, fmt.Errorf("%w: account belongs to another user", apperrors.ErrForbidden)
	}

	txns, total, err := s.transactionRepo.FindTransactionsByAccountID(ctx, accountID, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get account transactions: %w", err)
	}
	return txns, total, nil
}

// GetPendingTransactions returns the user's PENDING transactions.
func (s *TransactionService) GetPendingTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.FindPendingByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending transactions: %w", err)
	}
	return txns, nil
}

// SearchTransactions matches business names case-insensitively within the
// user's own accounts.
func (s *TransactionService) SearchTransactions(ctx context.Context, userID string, term string) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.SearchByBusinessName(ctx, userID, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}
	return txns, nil
}

// InitializeSampleTransactions seeds the demo journal at registration: three
// transactions against the BUSINESS account, the second settled SUCCESS and
// the third FAILED.
func (s *TransactionService) InitializeSampleTransactions(ctx context.Context, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	business, err := s.accountRepo.FindAccountByUserAndType(ctx, userID, domain.Business)
	if err != nil {
		return fmt.Errorf("failed to find business account for sample seed: %w", err)
	}

	for _, seed := range sampleTransactionSeed {
		txn, err := s.CreateTransaction(ctx, userID, dto.CreateTransactionRequest{
			AccountID:       business.AccountID,
			BusinessName:    seed.BusinessName,
			Category:        seed.Category,
			Amount:          decimal.RequireFromString(seed.Amount),
			TransactionType: seed.Type,
			Description:     seed.Description,
		})
		if err != nil {
			return fmt.Errorf("failed to seed sample transaction %s: %w", seed.BusinessName, err)
		}
		if seed.SettleTo != "" {
			if _, err := s.ProcessTransaction(ctx, userID, txn.TransactionID, seed.SettleTo); err != nil {
				return fmt.Errorf("failed to settle sample transaction %s: %w", seed.BusinessName, err)
			}
		}
	}

	logger.Info("Sample transactions seeded", slog.String("user_id", userID))
	return nil
}
