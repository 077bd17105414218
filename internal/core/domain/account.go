package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType is the closed set of account kinds a user may hold.
// At most one account per (user, type) pair exists.
type AccountType string

const (
	Business   AccountType = "BUSINESS"
	TaxReserve AccountType = "TAX_RESERVE"
	Savings    AccountType = "SAVINGS"
	Wallet     AccountType = "WALLET"
)

// DisplayName returns the human-readable label shown on dashboard cards.
func (t AccountType) DisplayName() string {
	switch t {
	case Business:
		return "Business account"
	case TaxReserve:
		return "Tax Reserve"
	case Savings:
		return "Savings"
	case Wallet:
		return "Wallet"
	}
	return string(t)
}

// Account represents a financial account within the core domain.
// PreviousBalance is a snapshot taken at the last balance mutation and is
// used only to compute the percentage-change trend. Limit and card fields
// are populated only for WALLET accounts.
type Account struct {
	AccountID       string              `json:"accountID"`
	UserID          string              `json:"userID"`
	AccountName     string              `json:"accountName"`
	AccountType     AccountType         `json:"accountType"`
	CurrentBalance  decimal.Decimal     `json:"currentBalance"`
	PreviousBalance decimal.NullDecimal `json:"previousBalance"`
	SpendingLimit   decimal.NullDecimal `json:"spendingLimit,omitempty"`
	TotalLimit      decimal.NullDecimal `json:"totalLimit,omitempty"`
	CardNumber      string              `json:"cardNumber,omitempty"`
	CardType        string              `json:"cardType,omitempty"`
	Timestamps
}

// PercentageChange computes the balance trend against the previous snapshot:
// (current - previous) / previous, rounded to 4 decimal places half-up before
// multiplying by 100. Returns zero when no previous balance exists or the
// previous balance is zero (guards divide-by-zero).
func (a *Account) PercentageChange() decimal.Decimal {
	if !a.PreviousBalance.Valid || a.PreviousBalance.Decimal.IsZero() {
		return decimal.Zero
	}
	change := a.CurrentBalance.Sub(a.PreviousBalance.Decimal)
	return change.DivRound(a.PreviousBalance.Decimal, 4).Mul(decimal.NewFromInt(100))
}
