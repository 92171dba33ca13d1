package handlers

import (
	"database/sql"
	"net/http"

	"cribsim-go/internal/models"

	"github.com/gin-gonic/gin"
)

func StrategyStatsHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := models.BuildStrategyStats(c.Request.Context(), db)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
