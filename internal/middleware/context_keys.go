package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key under which the authenticated user's id is stored in
// the request context by AuthMiddleware.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user id from the request
// context. The boolean reports whether an authenticated identity is attached.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
