package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money flowing into or out of an account.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// TransactionStatus is the settlement state of a transaction. Transactions
// are created PENDING and move exactly once to SUCCESS or FAILED.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "PENDING"
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
)

// Transaction represents a single journal entry against an account.
type Transaction struct {
	TransactionID   string            `json:"transactionID"`
	AccountID       string            `json:"accountID"`
	BusinessName    string            `json:"businessName"`
	Category        string            `json:"category"`
	Amount          decimal.Decimal   `json:"amount"`
	TransactionType TransactionType   `json:"transactionType"`
	Status          TransactionStatus `json:"status"`
	Description     string            `json:"description"`
	TransactionDate time.Time         `json:"transactionDate"`
	Timestamps
}

// SignedAmount returns the balance effect of the transaction when settled:
// positive for INCOME, negative for EXPENSE.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
