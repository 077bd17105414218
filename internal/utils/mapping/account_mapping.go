package mapping

import (
	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/bdpay/dashboard-backend/internal/models"
)

// ToModelAccount converts a domain.Account to its database model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		UserID:          d.UserID,
		AccountName:     d.AccountName,
		AccountType:     models.AccountType(d.AccountType),
		CurrentBalance:  d.CurrentBalance,
		PreviousBalance: d.PreviousBalance,
		SpendingLimit:   d.SpendingLimit,
		TotalLimit:      d.TotalLimit,
		CardNumber:      d.CardNumber,
		CardType:        d.CardType,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainAccount converts a database model account to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		UserID:          m.UserID,
		AccountName:     m.AccountName,
		AccountType:     domain.AccountType(m.AccountType),
		CurrentBalance:  m.CurrentBalance,
		PreviousBalance: m.PreviousBalance,
		SpendingLimit:   m.SpendingLimit,
		TotalLimit:      m.TotalLimit,
		CardNumber:      m.CardNumber,
		CardType:        m.CardType,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainAccountSlice converts a slice of model accounts.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
