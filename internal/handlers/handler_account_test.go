package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bdpay/dashboard-backend/internal/apperrors"
	"github.com/bdpay/dashboard-backend/internal/core/domain"
	portssvc "github.com/bdpay/dashboard-backend/internal/core/ports/services"
	"github.com/bdpay/dashboard-backend/internal/dto"
	"github.com/bdpay/dashboard-backend/internal/handlers"
	"github.com/bdpay/dashboard-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) InitializeDefaultAccounts(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockAccountService) GetUserAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, requesterID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, requesterID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetWalletAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetTotalBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockAccountService) UpdateBalance(ctx context.Context, requesterID string, accountID string, newBalance decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, requesterID, accountID, newBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateSpendingLimit(ctx context.Context, requesterID string, accountID string, newLimit decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, requesterID, accountID, newLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) TransferMoney(ctx context.Context, requesterID string, fromAccountID, toAccountID string, amount decimal.Decimal) error {
	args := m.Called(ctx, requesterID, fromAccountID, toAccountID, amount)
	return args.Error(0)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, requesterID string, accountID string) error {
	args := m.Called(ctx, requesterID, accountID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "dashboard-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockAccountService = new(MockAccountService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAccountRoutes(v1, suite.mockAccountService)
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	userID := uuid.NewString()

	accounts := []domain.Account{
		{
			AccountID:       uuid.NewString(),
			UserID:          userID,
			AccountName:     "Business account",
			AccountType:     domain.Business,
			CurrentBalance:  decimal.RequireFromString("24098.00"),
			PreviousBalance: decimal.NewNullDecimal(decimal.RequireFromString("23208.00")),
		},
		{
			AccountID:      uuid.NewString(),
			UserID:         userID,
			AccountName:    "Wallet",
			AccountType:    domain.Wallet,
			CurrentBalance: decimal.RequireFromString("1550.62"),
			SpendingLimit:  decimal.NewNullDecimal(decimal.RequireFromString("9800.00")),
			TotalLimit:     decimal.NewNullDecimal(decimal.RequireFromString("13000.00")),
			CardNumber:     "**** **** **** 1234",
			CardType:       "VISA",
		},
	}
	totalBalance := decimal.RequireFromString("25648.62")

	suite.mockAccountService.On("GetUserAccounts", mock.Anything, userID).Return(accounts, nil).Once()
	suite.mockAccountService.On("GetTotalBalance", mock.Anything, userID).Return(totalBalance, nil).Once()

	url := fmt.Sprintf("/api/v1/accounts/user/%s", userID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code, "Expected status OK")

	var body dto.ListAccountsResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Len(body.Accounts, 2)
	suite.True(body.TotalBalance.Equal(totalBalance))
	suite.Equal("Business account", body.Accounts[0].DisplayName)
	suite.Equal("**** **** **** 1234", body.Accounts[1].CardNumber)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_OtherUserIsForbidden() {
	authedUserID := uuid.NewString()
	otherUserID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/accounts/user/%s", otherUserID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(authedUserID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "GetUserAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_MissingTokenIsUnauthorized() {
	url := fmt.Sprintf("/api/v1/accounts/user/%s", uuid.NewString())
	req, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AccountHandlerTestSuite) TestTransfer_Success() {
	userID := uuid.NewString()
	fromID := uuid.NewString()
	toID := uuid.NewString()
	amount := decimal.RequireFromString("150.00")

	suite.mockAccountService.On("TransferMoney", mock.Anything, userID, fromID, toID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(amount) }),
	).Return(nil).Once()

	payload, _ := json.Marshal(dto.TransferRequest{FromAccountID: fromID, ToAccountID: toID, Amount: amount})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/transfer", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Transfer completed")
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestTransfer_InsufficientFundsIsBadRequest() {
	userID := uuid.NewString()
	fromID := uuid.NewString()
	toID := uuid.NewString()

	suite.mockAccountService.On("TransferMoney", mock.Anything, userID, fromID, toID, mock.Anything).
		Return(fmt.Errorf("%w: insufficient funds in source account", apperrors.ErrValidation)).Once()

	payload, _ := json.Marshal(dto.TransferRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        decimal.RequireFromString("150.00"),
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/transfer", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "insufficient funds")
}

func (suite *AccountHandlerTestSuite) TestUpdateBalance_NonPositiveRejected() {
	userID := uuid.NewString()
	accountID := uuid.NewString()

	payload := []byte(`{"balance": "-5.00"}`)
	url := fmt.Sprintf("/api/v1/accounts/%s/balance", accountID)
	req, _ := http.NewRequest(http.MethodPut, url, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_NotFound() {
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountService.On("DeleteAccount", mock.Anything, userID, accountID).
		Return(fmt.Errorf("%w: account not found", apperrors.ErrNotFound)).Once()

	url := fmt.Sprintf("/api/v1/accounts/%s", accountID)
	req, _ := http.NewRequest(http.MethodDelete, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
