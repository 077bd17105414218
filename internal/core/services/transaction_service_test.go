package services_test

import (
	"context"
	"testing"

	"github.com/bdpay/dashboard-backend/internal/apperrors"
	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/bdpay/dashboard-backend/internal/core/services"
	"github.com/bdpay/dashboard-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockAccountRepo     *MockAccountRepository
	service             *services.TransactionService
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockTransactionRepo = new(MockTransactionRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.service = services.NewTransactionService(s.mockTransactionRepo, s.mockAccountRepo)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "a1", UserID: "u1"}
	s.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(account, nil).Once()
	s.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.AccountID == "a1" &&
			txn.BusinessName == "Gym" &&
			txn.Status == domain.StatusPending &&
			txn.TransactionID != "" &&
			!txn.TransactionDate.IsZero()
	})).Return(nil).Once()

	txn, err := s.service.CreateTransaction(ctx, "u1", dto.CreateTransactionRequest{
		AccountID:       "a1",
		BusinessName:    "Gym",
		Category:        "Payment",
		Amount:          decimal.RequireFromString("300.00"),
		TransactionType: domain.Expense,
		Description:     "Monthly gym membership",
	})

	s.Require().NoError(err)
	s.Equal(domain.StatusPending, txn.Status)
	s.mockTransactionRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	_, err := s.service.CreateTransaction(context.Background(), "u1", dto.CreateTransactionRequest{
		AccountID:       "a1",
		BusinessName:    "Gym",
		Amount:          decimal.Zero,
		TransactionType: domain.Expense,
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockTransactionRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_ForeignAccountForbidden() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "a1", UserID: "someone-else"}
	s.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(account, nil).Once()

	_, err := s.service.CreateTransaction(ctx, "u1", dto.CreateTransactionRequest{
		AccountID:       "a1",
		BusinessName:    "Gym",
		Amount:          decimal.RequireFromString("10.00"),
		TransactionType: domain.Expense,
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TransactionServiceTestSuite) TestProcessTransaction_SuccessAppliesExpense() {
	ctx := context.Background()
	pending := &domain.Transaction{
		TransactionID:   "t1",
		AccountID:       "a1",
		BusinessName:    "Gym",
		Amount:          decimal.RequireFromString("30.00"),
		TransactionType: domain.Expense,
		Status:          domain.StatusPending,
	}
	account := domain.Account{AccountID: "a1", UserID: "u1", CurrentBalance: decimal.RequireFromString("200.00")}

	s.mockTransactionRepo.On("Begin", ctx).Return(nil, nil).Once()
	s.mockTransactionRepo.On("FindTransactionByIDForUpdate", ctx, mock.Anything, "t1").Return(pending, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, mock.Anything, []string{"a1"}).
		Return(map[string]domain.Account{"a1": account}, nil).Once()
	s.mockAccountRepo.On("UpdateAccountBalancesInTx", ctx, mock.Anything, mock.MatchedBy(func(accounts []domain.Account) bool {
		return len(accounts) == 1 &&
			accounts[0].CurrentBalance.Equal(decimal.RequireFromString("170.00")) &&
			accounts[0].PreviousBalance.Valid &&
			accounts[0].PreviousBalance.Decimal.Equal(decimal.RequireFromString("200.00"))
	}), mock.Anything).Return(nil).Once()
	s.mockTransactionRepo.On("UpdateStatusInTx", ctx, mock.Anything, "t1", domain.StatusSuccess, mock.Anything).Return(nil).Once()
	s.mockTransactionRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	s.mockTransactionRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	txn, err := s.service.ProcessTransaction(ctx, "u1", "t1", domain.StatusSuccess)

	s.Require().NoError(err)
	s.Equal(domain.StatusSuccess, txn.Status)
	s.mockAccountRepo.AssertExpectations(s.T())
	s.mockTransactionRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestProcessTransaction_FailedSkipsBalance() {
	ctx := context.Background()
	pending := &domain.Transaction{
		TransactionID:   "t1",
		AccountID:       "a1",
		Amount:          decimal.RequireFromString("123.00"),
		TransactionType: domain.Expense,
		Status:          domain.StatusPending,
	}
	account := domain.Account{AccountID: "a1", UserID: "u1", CurrentBalance: decimal.RequireFromString("200.00")}

	s.mockTransactionRepo.On("Begin", ctx).Return(nil, nil).Once()
	s.mockTransactionRepo.On("FindTransactionByIDForUpdate", ctx, mock.Anything, "t1").Return(pending, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, mock.Anything, []string{"a1"}).
		Return(map[string]domain.Account{"a1": account}, nil).Once()
	s.mockTransactionRepo.On("UpdateStatusInTx", ctx, mock.Anything, "t1", domain.StatusFailed, mock.Anything).Return(nil).Once()
	s.mockTransactionRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	s.mockTransactionRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	txn, err := s.service.ProcessTransaction(ctx, "u1", "t1", domain.StatusFailed)

	s.Require().NoError(err)
	s.Equal(domain.StatusFailed, txn.Status)
	s.mockAccountRepo.AssertNotCalled(s.T(), "UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestProcessTransaction_AlreadySettledRejected() {
	ctx := context.Background()
	settled := &domain.Transaction{
		TransactionID: "t1",
		AccountID:     "a1",
		Status:        domain.StatusSuccess,
	}

	s.mockTransactionRepo.On("Begin", ctx).Return(nil, nil).Once()
	s.mockTransactionRepo.On("FindTransactionByIDForUpdate", ctx, mock.Anything, "t1").Return(settled, nil).Once()
	s.mockTransactionRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := s.service.ProcessTransaction(ctx, "u1", "t1", domain.StatusFailed)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockTransactionRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestProcessTransaction_InvalidTargetStatus() {
	_, err := s.service.ProcessTransaction(context.Background(), "u1", "t1", domain.StatusPending)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockTransactionRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *TransactionServiceTestSuite) TestProcessTransaction_ForeignAccountForbidden() {
	ctx := context.Background()
	pending := &domain.Transaction{
		TransactionID:   "t1",
		AccountID:       "a1",
		Amount:          decimal.RequireFromString("10.00"),
		TransactionType: domain.Income,
		Status:          domain.StatusPending,
	}
	account := domain.Account{AccountID: "a1", UserID: "intruder"}

	s.mockTransactionRepo.On("Begin", ctx).Return(nil, nil).Once()
	s.mockTransactionRepo.On("FindTransactionByIDForUpdate", ctx, mock.Anything, "t1").Return(pending, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, mock.Anything, []string{"a1"}).
		Return(map[string]domain.Account{"a1": account}, nil).Once()
	s.mockTransactionRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := s.service.ProcessTransaction(ctx, "u1", "t1", domain.StatusSuccess)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_SuccessfulRejected() {
	ctx := context.Background()
	settled := &domain.Transaction{TransactionID: "t1", AccountID: "a1", Status: domain.StatusSuccess}
	account := &domain.Account{AccountID: "a1", UserID: "u1"}

	s.mockTransactionRepo.On("FindTransactionByID", ctx, "t1").Return(settled, nil).Once()
	s.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(account, nil).Once()

	err := s.service.DeleteTransaction(ctx, "u1", "t1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockTransactionRepo.AssertNotCalled(s.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_PendingDeleted() {
	ctx := context.Background()
	pending := &domain.Transaction{TransactionID: "t1", AccountID: "a1", Status: domain.StatusPending}
	account := &domain.Account{AccountID: "a1", UserID: "u1"}

	s.mockTransactionRepo.On("FindTransactionByID", ctx, "t1").Return(pending, nil).Once()
	s.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(account, nil).Once()
	s.mockTransactionRepo.On("DeleteTransaction", ctx, "t1").Return(nil).Once()

	err := s.service.DeleteTransaction(ctx, "u1", "t1")

	s.Require().NoError(err)
	s.mockTransactionRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestGetAccountTransactions_ForeignAccountForbidden() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "a1", UserID: "someone-else"}
	s.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(account, nil).Once()

	_, _, err := s.service.GetAccountTransactions(ctx, "u1", "a1", 0, 20)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockTransactionRepo.AssertNotCalled(s.T(), "FindTransactionsByAccountID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestGetUserTransactions_PagesByOffset() {
	ctx := context.Background()
	s.mockTransactionRepo.On("FindTransactionsByUserID", ctx, "u1", 20, 40).
		Return([]domain.Transaction{}, int64(45), nil).Once()

	_, total, err := s.service.GetUserTransactions(ctx, "u1", 2, 20)

	s.Require().NoError(err)
	s.Equal(int64(45), total)
	s.mockTransactionRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestInitializeSampleTransactions_SettlesSecondAndThird() {
	ctx := context.Background()
	business := &domain.Account{
		AccountID:      "biz-1",
		UserID:         "u1",
		AccountType:    domain.Business,
		CurrentBalance: decimal.RequireFromString("24098.00"),
	}

	s.mockAccountRepo.On("FindAccountByUserAndType", ctx, "u1", domain.Business).Return(business, nil).Once()
	s.mockAccountRepo.On("FindAccountByID", ctx, "biz-1").Return(business, nil).Times(3)

	var created []domain.Transaction
	s.mockTransactionRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(domain.Transaction))
		}).Return(nil).Times(3)

	// Two of the three seeds settle immediately. The lookup inside the
	// settlement returns whichever seed was just created.
	lookedUp := &domain.Transaction{}
	s.mockTransactionRepo.On("Begin", ctx).Return(nil, nil).Times(2)
	s.mockTransactionRepo.On("FindTransactionByIDForUpdate", ctx, mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			for _, txn := range created {
				if txn.TransactionID == args.String(2) {
					*lookedUp = txn
				}
			}
		}).Return(lookedUp, nil).Times(2)
	s.mockTransactionRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()
	s.mockTransactionRepo.On("Commit", ctx, mock.Anything).Return(nil).Times(2)
	s.mockTransactionRepo.On("UpdateStatusInTx", ctx, mock.Anything, mock.AnythingOfType("string"), domain.StatusSuccess, mock.Anything).Return(nil).Once()
	s.mockTransactionRepo.On("UpdateStatusInTx", ctx, mock.Anything, mock.AnythingOfType("string"), domain.StatusFailed, mock.Anything).Return(nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, mock.Anything, []string{"biz-1"}).
		Return(map[string]domain.Account{"biz-1": *business}, nil).Times(2)
	// Only the SUCCESS settlement (Al-Bank INCOME) touches the balance.
	s.mockAccountRepo.On("UpdateAccountBalancesInTx", ctx, mock.Anything, mock.MatchedBy(func(accounts []domain.Account) bool {
		return len(accounts) == 1 &&
			accounts[0].CurrentBalance.Equal(decimal.RequireFromString("24988.00"))
	}), mock.Anything).Return(nil).Once()

	err := s.service.InitializeSampleTransactions(ctx, "u1")

	s.Require().NoError(err)
	s.Require().Len(created, 3)
	s.Equal("Gym", created[0].BusinessName)
	s.Equal("Al-Bank", created[1].BusinessName)
	s.Equal("Facebook Ads", created[2].BusinessName)
	s.mockTransactionRepo.AssertExpectations(s.T())
}
