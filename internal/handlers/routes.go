package handlers

import (
	"database/sql"
	"log/slog"

	"cribsim-go/internal/config"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes wires the token exchange endpoint.
func RegisterAuthRoutes(rg *gin.RouterGroup, cfg config.Config) {
	rg.POST("/auth/token", TokenHandler(cfg))
}

// RegisterSimulationRoutes wires the authenticated simulation API.
func RegisterSimulationRoutes(rg *gin.RouterGroup, db *sql.DB, cfg config.Config, logger *slog.Logger) {
	rg.POST("/simulations", CreateSimulationHandler(db, cfg, logger))
	rg.GET("/simulations", ListSimulationsHandler(db))
	rg.GET("/simulations/:id", GetSimulationHandler(db))
	rg.GET("/stats/strategies", StrategyStatsHandler(db))
}
