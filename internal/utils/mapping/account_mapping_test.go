package mapping_test

import (
	"testing"
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/bdpay/dashboard-backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountMappingRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Microsecond)

	wallet := domain.Account{
		AccountID:       "acc-1",
		UserID:          "u1",
		AccountName:     "Wallet",
		AccountType:     domain.Wallet,
		CurrentBalance:  decimal.RequireFromString("1550.62"),
		PreviousBalance: decimal.NewNullDecimal(decimal.RequireFromString("1400.00")),
		SpendingLimit:   decimal.NewNullDecimal(decimal.RequireFromString("9800.00")),
		TotalLimit:      decimal.NewNullDecimal(decimal.RequireFromString("13000.00")),
		CardNumber:      "**** **** **** 1234",
		CardType:        "VISA",
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	got := mapping.ToDomainAccount(mapping.ToModelAccount(wallet))

	assert.Equal(t, wallet.AccountID, got.AccountID)
	assert.Equal(t, wallet.UserID, got.UserID)
	assert.Equal(t, wallet.AccountName, got.AccountName)
	assert.Equal(t, wallet.AccountType, got.AccountType)
	assert.True(t, got.CurrentBalance.Equal(wallet.CurrentBalance))
	require.True(t, got.PreviousBalance.Valid)
	assert.True(t, got.PreviousBalance.Decimal.Equal(wallet.PreviousBalance.Decimal))
	require.True(t, got.SpendingLimit.Valid)
	assert.True(t, got.SpendingLimit.Decimal.Equal(wallet.SpendingLimit.Decimal))
	require.True(t, got.TotalLimit.Valid)
	assert.True(t, got.TotalLimit.Decimal.Equal(wallet.TotalLimit.Decimal))
	assert.Equal(t, wallet.CardNumber, got.CardNumber)
	assert.Equal(t, wallet.CardType, got.CardType)
	assert.Equal(t, wallet.CreatedAt, got.CreatedAt)
	assert.Equal(t, wallet.UpdatedAt, got.UpdatedAt)
}

func TestAccountMappingRoundTripWithoutLimits(t *testing.T) {
	business := domain.Account{
		AccountID:      "acc-2",
		UserID:         "u1",
		AccountName:    "Business account",
		AccountType:    domain.Business,
		CurrentBalance: decimal.RequireFromString("24098.00"),
	}

	got := mapping.ToDomainAccount(mapping.ToModelAccount(business))

	assert.Equal(t, domain.Business, got.AccountType)
	assert.True(t, got.CurrentBalance.Equal(business.CurrentBalance))
	assert.False(t, got.PreviousBalance.Valid)
	assert.False(t, got.SpendingLimit.Valid)
	assert.False(t, got.TotalLimit.Valid)
	assert.Empty(t, got.CardNumber)
	assert.Empty(t, got.CardType)
}
