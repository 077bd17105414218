package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	portssvc "github.com/bdpay/dashboard-backend/internal/core/ports/services"
	"github.com/bdpay/dashboard-backend/internal/dto"
	"github.com/bdpay/dashboard-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and token refresh.
type AuthHandler struct {
	userService        portssvc.UserSvcFacade
	accountService     portssvc.AccountSvcFacade
	transactionService portssvc.TransactionSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *portssvc.ServiceContainer) *AuthHandler {
	return &AuthHandler{
		userService:        services.User,
		accountService:     services.Account,
		transactionService: services.Transaction,
		tokenService:       services.Token,
	}
}

// issueAuthResponse generates a fresh access/refresh token pair for the user.
func (h *AuthHandler) issueAuthResponse(c *gin.Context, user *domain.User) (*dto.AuthResponse, bool) {
	ctx := c.Request.Context()

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondServiceError(c, err)
		return nil, false
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		respondServiceError(c, err)
		return nil, false
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, true
}

// seedNewUser creates the demo accounts and journal for a new user.
func (h *AuthHandler) seedNewUser(c *gin.Context, userID string) bool {
	ctx := c.Request.Context()
	if err := h.accountService.InitializeDefaultAccounts(ctx, userID); err != nil {
		respondServiceError(c, err)
		return false
	}
	if err := h.transactionService.InitializeSampleTransactions(ctx, userID); err != nil {
		respondServiceError(c, err)
		return false
	}
	return true
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user, seeds the demo accounts and journal, and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid input or duplicate email"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !h.seedNewUser(c, user.UserID) {
		return
	}

	resp, ok := h.issueAuthResponse(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp, ok := h.issueAuthResponse(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Refresh the token pair
// @Description Exchanges a valid refresh token for a rotated access/refresh pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp, ok := h.issueAuthResponse(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Current user
// @Description Returns the authenticated user's profile.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := requireAuthenticatedUser(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID, false)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to load authenticated user", slog.String("error", err.Error()), slog.String("user_id", userID))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
