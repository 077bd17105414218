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
	"github.com/bdpay/dashboard-backend/internal/middleware"
	"github.com/bdpay/dashboard-backend/internal/platform/config"
	"github.com/bdpay/dashboard-backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// refreshTokenBytes is the entropy of a raw refresh token (hex-encoded to
// twice as many characters).
const refreshTokenBytes = 32

// TokenService issues and validates the application's access and refresh
// tokens. Refresh tokens are stored hashed and rotated on every use.
type TokenService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepository
}

func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepository) *TokenService {
	return &TokenService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.TokenSvcFacade = (*TokenService)(nil)

// GenerateAccessToken creates a signed JWT for the user.
func (s *TokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, nil
}

// GenerateRefreshToken creates a new refresh token and persists its hash on
// the user row, replacing any outstanding token.
func (s *TokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rawToken, err := utils.GenerateSecureRandomString(refreshTokenBytes)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	expiry := now.Add(s.cfg.RefreshTokenExpiryDuration)
	tokenHash := utils.HashRefreshToken(rawToken)

	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, tokenHash, &expiry, now); err != nil {
		logger.Error("Failed to persist refresh token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, expiry, nil
}

// ValidateRefreshToken resolves a raw refresh token to its user. Unknown,
// mismatched and expired tokens all map to ErrUnauthorized.
func (s *TokenService) ValidateRefreshToken(ctx context.Context, rawToken string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tokenHash := utils.HashRefreshToken(rawToken)
	user, err := s.userRepo.FindUserByRefreshTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to validate refresh token: %w", err)
	}

	if !utils.CompareRefreshTokenHash(rawToken, user.RefreshTokenHash) {
		return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
	}
	if user.RefreshTokenExpiry == nil || time.Now().After(*user.RefreshTokenExpiry) {
		logger.Warn("Expired refresh token presented", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: refresh token expired", apperrors.ErrUnauthorized)
	}

	return user, nil
}

// GoogleOAuthService wraps the Google authorization-code flow.
type GoogleOAuthService struct {
	clientID     string
	oauth2Config *oauth2.Config
}

func NewGoogleOAuthService(cfg *config.Config) *GoogleOAuthService {
	return &GoogleOAuthService{
		clientID: cfg.GoogleClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*GoogleOAuthService)(nil)

// AuthCodeURL builds the Google consent redirect URL for the given state.
func (s *GoogleOAuthService) AuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an authorization code for Google tokens.
func (s *GoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken verifies the ID token signature and audience.
func (s *GoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(ctx, idTokenString, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid google id token: %v", apperrors.ErrUnauthorized, err)
	}
	return payload, nil
}
