package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"sync"

	"cribsim-go/internal/game/common"
	"cribsim-go/internal/game/cribbage"
	"cribsim-go/internal/models"
	"cribsim-go/internal/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// Request describes one batch of games between two named strategies.
type Request struct {
	StrategyA string
	StrategyB string
	NumGames  int
	Seed      int64
	Workers   int
}

// Result aggregates per-identity win counts over a finished batch.
type Result struct {
	WinsA int
	WinsB int
}

// Run plays NumGames independent games and tallies wins per identity.
// Games are sharded across workers; each shard derives its own rng from
// the base seed, so a (seed, workers) pair always replays identically.
func Run(ctx context.Context, req Request, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if req.NumGames <= 0 {
		return Result{}, fmt.Errorf("%w: %d", models.ErrInvalidGames, req.NumGames)
	}

	stratA, err := ResolveStrategy(req.StrategyA)
	if err != nil {
		return Result{}, err
	}
	stratB, err := ResolveStrategy(req.StrategyB)
	if err != nil {
		return Result{}, err
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > req.NumGames {
		workers = req.NumGames
	}

	ctx, span := tracing.StartSpan(ctx, "sim.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("sim.strategy_a", req.StrategyA),
		attribute.String("sim.strategy_b", req.StrategyB),
		attribute.Int("sim.games", req.NumGames),
		attribute.Int64("sim.seed", req.Seed),
		attribute.Int("sim.workers", workers),
	)

	logger.Info("simulation start",
		"strategyA", req.StrategyA,
		"strategyB", req.StrategyB,
		"games", req.NumGames,
		"seed", req.Seed,
		"workers", workers)

	// Per-hand engine narration is only worth the volume when debugging.
	var gameLogger *slog.Logger
	if logger.Enabled(ctx, slog.LevelDebug) {
		gameLogger = logger
	}

	type shardResult struct {
		wins [2]int
		err  error
	}
	results := make(chan shardResult, workers)

	var wg sync.WaitGroup
	for shard := 0; shard < workers; shard++ {
		games := req.NumGames / workers
		if shard < req.NumGames%workers {
			games++
		}
		if games == 0 {
			continue
		}

		wg.Add(1)
		go func(shard, games int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(req.Seed + int64(shard)))
			deck := common.NewDeck()

			var res shardResult
			for i := 0; i < games; i++ {
				if err := ctx.Err(); err != nil {
					res.err = err
					break
				}
				g := cribbage.NewGame(stratA, stratB, rng, gameLogger)
				winner, err := g.PlayGame(deck)
				if err != nil {
					res.err = err
					break
				}
				res.wins[winner]++
			}
			results <- res
		}(shard, games)
	}

	wg.Wait()
	close(results)

	var out Result
	for res := range results {
		if res.err != nil {
			return Result{}, res.err
		}
		out.WinsA += res.wins[cribbage.PlayerA]
		out.WinsB += res.wins[cribbage.PlayerB]
	}

	logger.Info("simulation done", "winsA", out.WinsA, "winsB", out.WinsB)
	return out, nil
}
