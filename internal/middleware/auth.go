package middleware

import (
	"net/http"
	"strings"

	"cribsim-go/internal/auth"
	"cribsim-go/internal/config"

	"github.com/gin-gonic/gin"
)

func RequireAuth(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := auth.ParseAndValidateToken(token, cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("client", claims.Client)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	// Authorization: Bearer <token>
	authz := c.GetHeader("Authorization")
	if authz != "" {
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	// Websocket clients cannot set headers from the browser; accept the
	// token as a query parameter on upgrade requests only.
	if strings.HasPrefix(c.Request.URL.Path, "/ws/") {
		return strings.TrimSpace(c.Query("token"))
	}
	return ""
}
