package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bdpay/dashboard-backend/internal/apperrors"
	"github.com/bdpay/dashboard-backend/internal/core/domain"
	portsrepo "github.com/bdpay/dashboard-backend/internal/core/ports/repositories"
	portssvc "github.com/bdpay/dashboard-backend/internal/core/ports/services"
	"github.com/bdpay/dashboard-backend/internal/dto"
	"github.com/bdpay/dashboard-backend/internal/middleware"
	"github.com/bdpay/dashboard-backend/internal/utils"
	"github.com/google/uuid"
)

// UserService implements identity management on top of the user repository.
type UserService struct {
	userRepo portsrepo.UserRepository
}

func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// RegisterUser creates a user with a bcrypt-hashed credential.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AuthProvider: domain.ProviderLocal,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Registration rejected for duplicate email", slog.String("email", req.Email))
			return nil, err
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// AuthenticateUser verifies email and password. Unknown email and wrong
// password both map to ErrUnauthorized so the two are indistinguishable.
func (s *UserService) AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		logger.Error("Failed to look up user by email", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Login rejected for bad credentials", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	return user, nil
}

// ChangePassword replaces the stored hash after verifying the old password.
func (s *UserService) ChangePassword(ctx context.Context, userID string, oldPassword string, newPassword string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID, false)
	if err != nil {
		return fmt.Errorf("failed to load user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		logger.Warn("Password change rejected for bad old password", slog.String("user_id", userID))
		return fmt.Errorf("%w: old password does not match", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	user.PasswordHash = newHash
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to persist password change", slog.String("error", err.Error()), slog.String("user_id", userID))
		return fmt.Errorf("failed to change password: %w", err)
	}

	logger.Info("Password changed", slog.String("user_id", userID))
	return nil
}

// UpdateUser overwrites the profile fields.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for update: %w", err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update user", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// GetUserByID fetches a user, optionally joining their accounts.
func (s *UserService) GetUserByID(ctx context.Context, userID string, includeAccounts bool) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID, includeAccounts)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// ListUsers retrieves a paginated user listing.
func (s *UserService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes the user row. Accounts and transactions are left in
// place; a user still owning accounts surfaces the store's constraint error.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		logger.Error("Failed to delete user", slog.String("error", err.Error()), slog.String("user_id", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	logger.Info("User deleted", slog.String("user_id", userID))
	return nil
}

// FindOrCreateOAuthUser resolves an externally authenticated identity to a
// local user, creating one with an unusable credential on first sign-in.
func (s *UserService) FindOrCreateOAuthUser(ctx context.Context, firstName, lastName, email string, provider domain.AuthProvider) (*domain.User, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to resolve OAuth user: %w", err)
	}

	// First sign-in: create a user whose password can never match, since
	// the random secret is discarded immediately.
	randomSecret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate placeholder credential: %w", err)
	}
	passwordHash, err := utils.HashPassword(randomSecret)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash placeholder credential: %w", err)
	}

	now := time.Now()
	newUser := domain.User{
		UserID:       uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		AuthProvider: provider,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		logger.Error("Failed to save OAuth user", slog.String("error", err.Error()))
		return nil, false, fmt.Errorf("failed to create OAuth user: %w", err)
	}

	logger.Info("OAuth user created", slog.String("user_id", newUser.UserID), slog.String("provider", string(provider)))
	return &newUser, true, nil
}
