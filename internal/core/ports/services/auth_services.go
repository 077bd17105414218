package services

import (
	"context"
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues and validates the application's tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new refresh token, persists its hash on
	// the user row (replacing any outstanding token) and returns the raw value.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken resolves a raw refresh token to its user. Returns
	// apperrors.ErrUnauthorized for unknown, mismatched or expired tokens.
	ValidateRefreshToken(ctx context.Context, rawToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade wraps the Google authorization-code flow.
type GoogleOAuthSvcFacade interface {
	// AuthCodeURL builds the Google consent redirect URL for the given state.
	AuthCodeURL(state string) string

	// ExchangeCodeForToken exchanges an authorization code for Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken verifies the ID token signature and audience.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
