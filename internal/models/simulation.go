package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run statuses. A run is inserted as pending, flips to running when a
// worker picks it up, and ends as finished or failed.
const (
	RunStatusPending  = "pending"
	RunStatusRunning  = "running"
	RunStatusFinished = "finished"
	RunStatusFailed   = "failed"
)

// SimulationRun is one launched batch of games between two strategies.
type SimulationRun struct {
	ID         int64      `json:"id"`
	StrategyA  string     `json:"strategy_a"`
	StrategyB  string     `json:"strategy_b"`
	NumGames   int        `json:"num_games"`
	Seed       int64      `json:"seed"`
	WinsA      int        `json:"wins_a"`
	WinsB      int        `json:"wins_b"`
	Status     string     `json:"status"`
	Error      string     `json:"error,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

func InsertSimulationRun(ctx context.Context, db *sql.DB, run *SimulationRun) error {
	res, err := db.ExecContext(
		ctx,
		`INSERT INTO simulation_runs (strategy_a, strategy_b, num_games, seed, status)
		 VALUES (?, ?, ?, ?, ?)`,
		run.StrategyA, run.StrategyB, run.NumGames, run.Seed, RunStatusPending,
	)
	if err != nil {
		return fmt.Errorf("InsertSimulationRun: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("InsertSimulationRun: last insert id: %w", err)
	}
	run.ID = id
	run.Status = RunStatusPending
	return nil
}

func GetSimulationRun(ctx context.Context, db *sql.DB, id int64) (*SimulationRun, error) {
	row := db.QueryRowContext(
		ctx,
		`SELECT id, strategy_a, strategy_b, num_games, seed, wins_a, wins_b,
		        status, COALESCE(error, ''), created_at, finished_at
		 FROM simulation_runs WHERE id = ?`,
		id,
	)
	run, err := scanSimulationRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetSimulationRun: %w", err)
	}
	return run, nil
}

func ListSimulationRuns(ctx context.Context, db *sql.DB, limit int) ([]SimulationRun, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	rows, err := db.QueryContext(
		ctx,
		`SELECT id, strategy_a, strategy_b, num_games, seed, wins_a, wins_b,
		        status, COALESCE(error, ''), created_at, finished_at
		 FROM simulation_runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSimulationRuns: %w", err)
	}
	defer rows.Close()

	out := make([]SimulationRun, 0, limit)
	for rows.Next() {
		run, err := scanSimulationRun(rows)
		if err != nil {
			return nil, fmt.Errorf("ListSimulationRuns: %w", err)
		}
		out = append(out, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSimulationRuns: iterating rows: %w", err)
	}
	return out, nil
}

func MarkSimulationRunning(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(
		ctx,
		`UPDATE simulation_runs SET status = ? WHERE id = ?`,
		RunStatusRunning, id,
	)
	if err != nil {
		return fmt.Errorf("MarkSimulationRunning: %w", err)
	}
	return nil
}

func MarkSimulationFinished(ctx context.Context, db *sql.DB, id int64, winsA, winsB int) error {
	_, err := db.ExecContext(
		ctx,
		`UPDATE simulation_runs
		 SET status = ?, wins_a = ?, wins_b = ?, finished_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		RunStatusFinished, winsA, winsB, id,
	)
	if err != nil {
		return fmt.Errorf("MarkSimulationFinished: %w", err)
	}
	return nil
}

func MarkSimulationFailed(ctx context.Context, db *sql.DB, id int64, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	_, err := db.ExecContext(
		ctx,
		`UPDATE simulation_runs
		 SET status = ?, error = ?, finished_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		RunStatusFailed, msg, id,
	)
	if err != nil {
		return fmt.Errorf("MarkSimulationFailed: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSimulationRun(row rowScanner) (*SimulationRun, error) {
	var run SimulationRun
	var finished sql.NullTime
	if err := row.Scan(
		&run.ID, &run.StrategyA, &run.StrategyB, &run.NumGames, &run.Seed,
		&run.WinsA, &run.WinsB, &run.Status, &run.Error, &run.CreatedAt, &finished,
	); err != nil {
		return nil, err
	}
	if finished.Valid {
		t := finished.Time
		run.FinishedAt = &t
	}
	return &run, nil
}
