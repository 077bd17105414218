package mapping

import (
	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/bdpay/dashboard-backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its database model.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		BusinessName:    d.BusinessName,
		Category:        d.Category,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.TransactionType),
		Status:          models.TransactionStatus(d.Status),
		Description:     d.Description,
		TransactionDate: d.TransactionDate,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainTransaction converts a database model transaction to the domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		BusinessName:    m.BusinessName,
		Category:        m.Category,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		Status:          domain.TransactionStatus(m.Status),
		Description:     m.Description,
		TransactionDate: m.TransactionDate,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainTransactionSlice converts a slice of model transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
