package mapping

import (
	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/bdpay/dashboard-backend/internal/models"
)

// ToModelUser converts a domain.User to its database model.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:             d.UserID,
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		Email:              d.Email,
		PasswordHash:       d.PasswordHash,
		AuthProvider:       string(d.AuthProvider),
		RefreshTokenHash:   d.RefreshTokenHash,
		RefreshTokenExpiry: d.RefreshTokenExpiry,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainUser converts a database model user to the domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:             m.UserID,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		AuthProvider:       domain.AuthProvider(m.AuthProvider),
		RefreshTokenHash:   m.RefreshTokenHash,
		RefreshTokenExpiry: m.RefreshTokenExpiry,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
