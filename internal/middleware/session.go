package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/pkg/jwt"
)

// SessionCookieName is the cookie carrying the signed admin session
// token.
const SessionCookieName = "blog_session"

// SessionAuth extracts the admin identity from the session cookie.
// Optional auth: an absent or invalid cookie leaves the request
// anonymous and lets it continue.
func SessionAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err == nil && tokenString != "" {
			claims, verifyErr := jwtManager.VerifyToken(tokenString)
			if verifyErr == nil && claims.Admin {
				c.Set("admin_username", claims.Username)
				c.Set("admin_authenticated", true)
			}
		}

		c.Next()
	}
}

// RequireAdmin aborts requests without the admin session marker.
// Mutating routes fail closed.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IsAdmin reports whether the request carries an authenticated admin
// session
func IsAdmin(c *gin.Context) bool {
	authenticated, exists := c.Get("admin_authenticated")
	if !exists {
		return false
	}
	if auth, ok := authenticated.(bool); ok {
		return auth
	}
	return false
}

// GetAdminUsername extracts the admin username from context
func GetAdminUsername(c *gin.Context) string {
	username, exists := c.Get("admin_username")
	if !exists {
		return ""
	}
	if str, ok := username.(string); ok {
		return str
	}
	return ""
}
