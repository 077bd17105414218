package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bdpay/dashboard-backend/internal/apperrors"
	"github.com/bdpay/dashboard-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError maps service-layer sentinel errors onto HTTP statuses.
// Anything unrecognized is a 500 with a generic message; the wrapped detail
// goes to the log, not the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// requireAuthenticatedUser reads the authenticated user id from the request
// context, answering 401 when the middleware did not attach one.
func requireAuthenticatedUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// requireOwnPath answers 403 unless the :userID path parameter matches the
// authenticated user.
func requireOwnPath(c *gin.Context, pathUserID string) (string, bool) {
	authedID, ok := requireAuthenticatedUser(c)
	if !ok {
		return "", false
	}
	if authedID != pathUserID {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("User forbidden to access another user's resource",
			slog.String("accessor_id", authedID),
			slog.String("target_id", pathUserID),
		)
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return "", false
	}
	return authedID, true
}
