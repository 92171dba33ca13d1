package handlers

import (
	"net/http"

	"cribsim-go/internal/auth"
	"cribsim-go/internal/config"

	"github.com/gin-gonic/gin"
)

type tokenRequest struct {
	APIKey string `json:"api_key"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// TokenHandler exchanges the operator API key for a short-lived JWT.
func TokenHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		if err := auth.CompareAPIKeyHash(cfg.APIKeyHash, req.APIKey); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		token, err := auth.GenerateToken("operator", cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		c.JSON(http.StatusOK, tokenResponse{Token: token})
	}
}
