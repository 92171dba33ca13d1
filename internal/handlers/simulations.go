package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"cribsim-go/internal/config"
	"cribsim-go/internal/models"
	"cribsim-go/internal/sim"

	"github.com/gin-gonic/gin"
)

type createSimulationRequest struct {
	StrategyA string `json:"strategy_a"`
	StrategyB string `json:"strategy_b"`
	NumGames  int    `json:"num_games"`
	Seed      *int64 `json:"seed"`
	Workers   int    `json:"workers"`
}

// CreateSimulationHandler records a run, plays it to completion, and
// returns the finished row. Batches are bounded by SIM_MAX_GAMES, so
// running them inside the request keeps the API simple without tying
// up the server for long.
func CreateSimulationHandler(db *sql.DB, cfg config.Config, logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(c *gin.Context) {
		var req createSimulationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeAPIError(c, models.ErrInvalidJSON)
			return
		}

		if req.StrategyA == "" {
			req.StrategyA = sim.DefaultStrategy
		}
		if req.StrategyB == "" {
			req.StrategyB = sim.DefaultStrategy
		}
		if _, err := sim.ResolveStrategy(req.StrategyA); err != nil {
			writeAPIError(c, err)
			return
		}
		if _, err := sim.ResolveStrategy(req.StrategyB); err != nil {
			writeAPIError(c, err)
			return
		}
		if req.NumGames <= 0 {
			writeAPIError(c, models.ErrInvalidGames)
			return
		}
		if req.NumGames > cfg.SimMaxGames {
			writeAPIError(c, fmt.Errorf("%w: %d > %d", models.ErrTooManyGames, req.NumGames, cfg.SimMaxGames))
			return
		}

		seed := int64(0)
		if req.Seed != nil {
			seed = *req.Seed
		} else {
			seed = sim.DefaultSeed()
		}

		run := &models.SimulationRun{
			StrategyA: req.StrategyA,
			StrategyB: req.StrategyB,
			NumGames:  req.NumGames,
			Seed:      seed,
		}
		ctx := c.Request.Context()
		if err := models.InsertSimulationRun(ctx, db, run); err != nil {
			writeAPIError(c, err)
			return
		}
		if err := models.MarkSimulationRunning(ctx, db, run.ID); err != nil {
			writeAPIError(c, err)
			return
		}

		result, err := sim.Run(ctx, sim.Request{
			StrategyA: run.StrategyA,
			StrategyB: run.StrategyB,
			NumGames:  run.NumGames,
			Seed:      run.Seed,
			Workers:   req.Workers,
		}, logger)
		if err != nil {
			if dbErr := models.MarkSimulationFailed(ctx, db, run.ID, err); dbErr != nil {
				logger.Error("mark run failed", "id", run.ID, "error", dbErr)
			}
			writeAPIError(c, err)
			return
		}

		if err := models.MarkSimulationFinished(ctx, db, run.ID, result.WinsA, result.WinsB); err != nil {
			writeAPIError(c, err)
			return
		}

		stored, err := models.GetSimulationRun(ctx, db, run.ID)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusCreated, stored)
	}
}

func ListSimulationsHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		runs, err := models.ListSimulationRuns(c.Request.Context(), db, limit)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": runs})
	}
}

func GetSimulationHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			writeAPIError(c, models.ErrNotFound)
			return
		}
		run, err := models.GetSimulationRun(c.Request.Context(), db, id)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, run)
	}
}
