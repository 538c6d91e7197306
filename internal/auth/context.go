package auth

import "github.com/gin-gonic/gin"

// Context keys set by AuthRequired.
const (
	ctxKeyUserID    = "userID"
	ctxKeyUserEmail = "userEmail"
)

// GetUserID returns the authenticated user's ID, or "" when the request
// did not pass AuthRequired.
func GetUserID(c *gin.Context) string {
	return contextString(c, ctxKeyUserID)
}

// GetUserEmail returns the authenticated user's email, or "".
func GetUserEmail(c *gin.Context) string {
	return contextString(c, ctxKeyUserEmail)
}

func contextString(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
