package models

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
)

// StrategyStats aggregates every finished run a strategy took part in,
// from either seat.
type StrategyStats struct {
	Strategy    string  `json:"strategy"`
	Runs        int64   `json:"runs"`
	GamesPlayed int64   `json:"games_played"`
	GamesWon    int64   `json:"games_won"`
	WinRate     float64 `json:"win_rate"` // [0..1]
}

// StrategyStatsResponse ranks strategies by win rate across all
// finished simulation runs.
type StrategyStatsResponse struct {
	Items []StrategyStats `json:"items"`
}

func BuildStrategyStats(ctx context.Context, db *sql.DB) (*StrategyStatsResponse, error) {
	rows, err := db.QueryContext(
		ctx,
		`SELECT strategy_a, strategy_b, num_games, wins_a, wins_b
		 FROM simulation_runs WHERE status = ?`,
		RunStatusFinished,
	)
	if err != nil {
		return nil, fmt.Errorf("BuildStrategyStats: querying runs: %w", err)
	}
	defer rows.Close()

	type agg struct {
		runs   int64
		played int64
		won    int64
	}
	byStrategy := map[string]*agg{}
	add := func(name string, games, wins int64) {
		a := byStrategy[name]
		if a == nil {
			a = &agg{}
			byStrategy[name] = a
		}
		a.runs++
		a.played += games
		a.won += wins
	}

	for rows.Next() {
		var stratA, stratB string
		var games, winsA, winsB int64
		if err := rows.Scan(&stratA, &stratB, &games, &winsA, &winsB); err != nil {
			return nil, fmt.Errorf("BuildStrategyStats: scanning run row: %w", err)
		}
		add(stratA, games, winsA)
		add(stratB, games, winsB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("BuildStrategyStats: iterating run rows: %w", err)
	}

	out := make([]StrategyStats, 0, len(byStrategy))
	for name, a := range byStrategy {
		var rate float64
		if a.played > 0 {
			rate = float64(a.won) / float64(a.played)
		}
		out = append(out, StrategyStats{
			Strategy:    name,
			Runs:        a.runs,
			GamesPlayed: a.played,
			GamesWon:    a.won,
			WinRate:     rate,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		if out[i].GamesPlayed != out[j].GamesPlayed {
			return out[i].GamesPlayed > out[j].GamesPlayed
		}
		return out[i].Strategy < out[j].Strategy
	})

	return &StrategyStatsResponse{Items: out}, nil
}
