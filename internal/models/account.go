package models

import (
	"fmt"
	"time"

	"github.com/bdpay/dashboard-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Timestamps holds the shared audit columns.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AccountType mirrors the account_type column. Values are persisted as
// strings; decoding is strict and fails on unrecognized values rather than
// producing a silent zero value.
type AccountType string

const (
	Business   AccountType = "BUSINESS"
	TaxReserve AccountType = "TAX_RESERVE"
	Savings    AccountType = "SAVINGS"
	Wallet     AccountType = "WALLET"
)

// ParseAccountType decodes a stored account type, rejecting unknown values.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Business, TaxReserve, Savings, Wallet:
		return AccountType(s), nil
	}
	return "", fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, s)
}

// Account mirrors the accounts table.
type Account struct {
	AccountID       string              `db:"account_id"`
	UserID          string              `db:"user_id"`
	AccountName     string              `db:"account_name"`
	AccountType     AccountType         `db:"account_type"`
	CurrentBalance  decimal.Decimal     `db:"current_balance"`
	PreviousBalance decimal.NullDecimal `db:"previous_balance"`
	SpendingLimit   decimal.NullDecimal `db:"spending_limit"`
	TotalLimit      decimal.NullDecimal `db:"total_limit"`
	CardNumber      string              `db:"card_number"`
	CardType        string              `db:"card_type"`
	Timestamps
}
