package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"cribsim-go/internal/models"

	"github.com/gin-gonic/gin"
)

func writeAPIError(c *gin.Context, err error) {
	if err == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if errors.Is(err, models.ErrNotFound) || errors.Is(err, sql.ErrNoRows) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	// Safe typed validation errors (do NOT echo raw errors).
	switch {
	case errors.Is(err, models.ErrInvalidJSON):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	case errors.Is(err, models.ErrUnknownStrategy):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown strategy"})
		return
	case errors.Is(err, models.ErrInvalidGames):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid number of games"})
		return
	case errors.Is(err, models.ErrTooManyGames):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "too many games requested"})
		return
	case errors.Is(err, models.ErrRunNotFinished):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "simulation run not finished"})
		return
	}

	// Unknown/internal errors: log details, return generic message.
	log.Printf("internal error: %v", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
