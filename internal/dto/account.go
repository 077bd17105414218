package dto

import (
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// InitialBalance must be strictly positive at this boundary; arithmetic
// paths (transfer, settlement) are not re-validated against it.
type CreateAccountRequest struct {
	AccountName    string             `json:"accountName" binding:"required"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=BUSINESS TAX_RESERVE SAVINGS WALLET"`
	InitialBalance decimal.Decimal    `json:"initialBalance" binding:"required"`
}

// UpdateBalanceRequest defines the payload for a direct balance overwrite.
type UpdateBalanceRequest struct {
	Balance decimal.Decimal `json:"balance" binding:"required"`
}

// UpdateSpendingLimitRequest defines the payload for a wallet limit change.
type UpdateSpendingLimitRequest struct {
	SpendingLimit decimal.Decimal `json:"spendingLimit" binding:"required"`
}

// TransferRequest defines the payload for a balance transfer between two
// accounts of the same user.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountId" binding:"required"`
	ToAccountID   string          `json:"toAccountId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// AccountResponse defines the data returned for an account, including the
// derived percentage-change trend used by the dashboard cards.
type AccountResponse struct {
	AccountID        string              `json:"id"`
	UserID           string              `json:"userId"`
	AccountName      string              `json:"accountName"`
	AccountType      domain.AccountType  `json:"accountType"`
	DisplayName      string              `json:"displayName"`
	CurrentBalance   decimal.Decimal     `json:"currentBalance"`
	PreviousBalance  decimal.NullDecimal `json:"previousBalance"`
	PercentageChange decimal.Decimal     `json:"percentageChange"`
	SpendingLimit    decimal.NullDecimal `json:"spendingLimit,omitempty"`
	TotalLimit       decimal.NullDecimal `json:"totalLimit,omitempty"`
	CardNumber       string              `json:"cardNumber,omitempty"`
	CardType         string              `json:"cardType,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:        acc.AccountID,
		UserID:           acc.UserID,
		AccountName:      acc.AccountName,
		AccountType:      acc.AccountType,
		DisplayName:      acc.AccountType.DisplayName(),
		CurrentBalance:   acc.CurrentBalance,
		PreviousBalance:  acc.PreviousBalance,
		PercentageChange: acc.PercentageChange(),
		SpendingLimit:    acc.SpendingLimit,
		TotalLimit:       acc.TotalLimit,
		CardNumber:       acc.CardNumber,
		CardType:         acc.CardType,
		CreatedAt:        acc.CreatedAt,
		UpdatedAt:        acc.UpdatedAt,
	}
}

// ToAccountResponseSlice converts a slice of domain accounts.
func ToAccountResponseSlice(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the dashboard card listing.
type ListAccountsResponse struct {
	Accounts     []AccountResponse `json:"accounts"`
	TotalBalance decimal.Decimal   `json:"totalBalance"`
}
