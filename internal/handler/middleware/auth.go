package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/yard-terminal/internal/auth"
)

const LoginKey = "login"

// Authenticator — флаг сессии оператора (logout гасит все выданные токены).
type Authenticator interface {
	Authenticated() bool
}

// AuthMiddleware — Bearer JWT из заголовка Authorization плюс флаг сессии.
func AuthMiddleware(svc *auth.Service, sess Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := svc.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if !sess.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session closed"})
			return
		}
		c.Set(LoginKey, claims.Login)
		c.Next()
	}
}
