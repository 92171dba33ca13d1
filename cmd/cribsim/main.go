package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cribsim-go/internal/sim"
)

func main() {
	var (
		games     = flag.Int("games", 1, "number of games to simulate")
		seed      = flag.Int64("seed", 0, "rng seed (default: derived from clock and pid)")
		workers   = flag.Int("workers", 0, "worker goroutines (default: GOMAXPROCS)")
		strategyA = flag.String("a", sim.DefaultStrategy, "player A strategy: "+strings.Join(sim.StrategyNames(), ", "))
		strategyB = flag.String("b", sim.DefaultStrategy, "player B strategy: "+strings.Join(sim.StrategyNames(), ", "))
		logLevel  = flag.String("log", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log %q\n", *logLevel)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *seed == 0 {
		*seed = sim.DefaultSeed()
	}

	result, err := sim.Run(context.Background(), sim.Request{
		StrategyA: *strategyA,
		StrategyB: *strategyB,
		NumGames:  *games,
		Seed:      *seed,
		Workers:   *workers,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cribsim: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d games (seed %d): a=%s won %d, b=%s won %d\n",
		*games, *seed, *strategyA, result.WinsA, *strategyB, result.WinsB)
}
