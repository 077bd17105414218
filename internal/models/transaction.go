package models

import (
	"fmt"
	"time"

	"github.com/bdpay/dashboard-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType mirrors the transaction_type column.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// ParseTransactionType decodes a stored transaction type, rejecting unknown values.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, s)
}

// TransactionStatus mirrors the status column.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "PENDING"
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
)

// ParseTransactionStatus decodes a stored status, rejecting unknown values.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(s) {
	case StatusPending, StatusSuccess, StatusFailed:
		return TransactionStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown transaction status %q", apperrors.ErrValidation, s)
}

// Transaction mirrors the transactions table.
type Transaction struct {
	TransactionID   string            `db:"transaction_id"`
	AccountID       string            `db:"account_id"`
	BusinessName    string            `db:"business_name"`
	Category        string            `db:"category"`
	Amount          decimal.Decimal   `db:"amount"`
	TransactionType TransactionType   `db:"transaction_type"`
	Status          TransactionStatus `db:"status"`
	Description     string            `db:"description"`
	TransactionDate time.Time         `db:"transaction_date"`
	Timestamps
}
