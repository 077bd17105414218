package dto

import (
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for recording a new transaction.
type CreateTransactionRequest struct {
	AccountID       string                 `json:"accountId" binding:"required"`
	BusinessName    string                 `json:"businessName" binding:"required"`
	Category        string                 `json:"category"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=INCOME EXPENSE"`
	Description     string                 `json:"description"`
}

// ProcessTransactionRequest defines the payload for settling a pending
// transaction. Only terminal statuses are accepted.
type ProcessTransactionRequest struct {
	Status domain.TransactionStatus `json:"status" binding:"required,oneof=SUCCESS FAILED"`
}

// ListTransactionsParams defines the offset pagination query parameters.
type ListTransactionsParams struct {
	Page int `form:"page,default=0" binding:"min=0"`
	Size int `form:"size,default=10" binding:"min=1,max=100"`
}

// SearchTransactionsParams defines the search query parameter.
type SearchTransactionsParams struct {
	Query string `form:"query" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                   `json:"id"`
	AccountID       string                   `json:"accountId"`
	BusinessName    string                   `json:"businessName"`
	Category        string                   `json:"category"`
	Amount          decimal.Decimal          `json:"amount"`
	TransactionType domain.TransactionType   `json:"transactionType"`
	Status          domain.TransactionStatus `json:"status"`
	Description     string                   `json:"description"`
	TransactionDate time.Time                `json:"transactionDate"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		BusinessName:    txn.BusinessName,
		Category:        txn.Category,
		Amount:          txn.Amount,
		TransactionType: txn.TransactionType,
		Status:          txn.Status,
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate,
		CreatedAt:       txn.CreatedAt,
		UpdatedAt:       txn.UpdatedAt,
	}
}

// ToTransactionResponseSlice converts a slice of domain transactions.
func ToTransactionResponseSlice(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsResponse wraps a simple (non-paginated) transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// PagedTransactionsResponse wraps an offset-paginated transaction listing.
type PagedTransactionsResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	TotalElements int64                 `json:"totalElements"`
	TotalPages    int                   `json:"totalPages"`
	CurrentPage   int                   `json:"currentPage"`
	Size          int                   `json:"size"`
}
