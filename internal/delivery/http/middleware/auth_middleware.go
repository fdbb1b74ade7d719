package middleware

import (
	"net/http"
	"strings"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin inbox routes. It expects a Bearer token
// issued by the admin login endpoint.
func AuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			response.Error(c, http.StatusUnauthorized, "Bearer token required", nil)
			c.Abort()
			return
		}

		if err := tokens.Verify(tokenString); err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
