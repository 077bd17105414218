package repositories

import (
	"context"
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by id. When includeAccounts is true the
	// user's accounts are fetched in the same round trip instead of relying
	// on lazy loading.
	FindUserByID(ctx context.Context, userID string, includeAccounts bool) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByRefreshTokenHash retrieves the user holding the given hashed
	// refresh token, whether or not the token has expired.
	FindUserByRefreshTokenHash(ctx context.Context, tokenHash string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user. A duplicate email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser overwrites the user's profile fields and credential hash.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hashed refresh token and its expiry.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time, now time.Time) error

	// DeleteUser removes the user row. Accounts are intentionally not cascaded.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepository combines all user repository interfaces.
type UserRepository interface {
	UserReader
	UserWriter
}
