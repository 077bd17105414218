package services

import (
	"context"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/bdpay/dashboard-backend/internal/dto"
)

// UserSvcFacade exposes identity operations to handlers and other services.
type UserSvcFacade interface {
	// RegisterUser creates a user with a bcrypt-hashed credential. Returns
	// apperrors.ErrDuplicate when the email is already registered.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// AuthenticateUser verifies email/password. Returns
	// apperrors.ErrUnauthorized on unknown email or hash mismatch without
	// distinguishing the two.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)

	// ChangePassword replaces the stored hash after verifying the old password.
	ChangePassword(ctx context.Context, userID string, oldPassword string, newPassword string) error

	// UpdateUser unconditionally overwrites the profile fields.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// GetUserByID fetches a user, optionally joining their accounts.
	GetUserByID(ctx context.Context, userID string, includeAccounts bool) (*domain.User, error)

	// ListUsers retrieves a paginated user listing (admin surface).
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// DeleteUser removes the user row. Existing accounts and transactions
	// are neither cascaded nor checked.
	DeleteUser(ctx context.Context, userID string) error

	// FindOrCreateOAuthUser resolves an externally authenticated identity to
	// a local user, creating one on first sign-in. The second return value
	// reports whether the user was created.
	FindOrCreateOAuthUser(ctx context.Context, firstName, lastName, email string, provider domain.AuthProvider) (*domain.User, bool, error)
}
