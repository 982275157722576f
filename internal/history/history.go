// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite record of batch runs and the tool
// invocations each one made, so a missing BLIF file can be traced back to
// the run that should have produced it.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/blifify/pkg/types"
)

const defaultMaxResults = 20

// Store manages the history database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Run summarizes one recorded batch.
type Run struct {
	ID         int64
	InputDir   string
	OutputDir  string
	Tool       string
	StartedAt  time.Time
	FinishedAt time.Time
	Converted  int
	Failed     int
}

// Total returns the number of invocations in the run.
func (r Run) Total() int { return r.Converted + r.Failed }

// Open opens or creates the database at cfg.DBPath and creates the schema
// if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("history database path is empty")
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input_dir TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			tool TEXT NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS invocations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			name TEXT NOT NULL,
			input_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_invocations_run_id ON invocations(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one run and its invocations in a single transaction and
// returns the new run ID.
func (s *Store) Record(ctx context.Context, cfg types.ConversionConfig, results []types.InvocationResult, startedAt, finishedAt time.Time) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (input_dir, output_dir, tool, started_at, finished_at) VALUES (?, ?, ?, ?, ?)`,
		cfg.InputDir, cfg.OutputDir, cfg.Tool,
		startedAt.UTC().Format(time.RFC3339Nano), finishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO invocations (run_id, seq, name, input_path, output_path, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range results {
		if _, err := stmt.ExecContext(ctx,
			runID, i, r.Name, r.InputPath, r.OutputPath, string(r.Status), r.Error,
		); err != nil {
			return 0, fmt.Errorf("inserting invocation %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Recent returns up to limit runs, newest first. A limit of zero or less
// uses the store's configured maximum.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.input_dir, r.output_dir, r.tool, r.started_at, r.finished_at,
			COALESCE(SUM(CASE WHEN i.status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN i.status = ? THEN 1 ELSE 0 END), 0)
		 FROM runs r LEFT JOIN invocations i ON i.run_id = r.id
		 GROUP BY r.id
		 ORDER BY r.id DESC
		 LIMIT ?`,
		string(types.InvocationConverted), string(types.InvocationFailed), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished string
		if err := rows.Scan(&r.ID, &r.InputDir, &r.OutputDir, &r.Tool, &started, &finished, &r.Converted, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		r.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Invocations returns the invocations of one run in execution order.
func (s *Store) Invocations(ctx context.Context, runID int64) ([]types.InvocationResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, input_path, output_path, status, COALESCE(error, '')
		 FROM invocations WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying invocations: %w", err)
	}
	defer rows.Close()

	var results []types.InvocationResult
	for rows.Next() {
		var r types.InvocationResult
		var status string
		if err := rows.Scan(&r.Name, &r.InputPath, &r.OutputPath, &status, &r.Error); err != nil {
			return nil, fmt.Errorf("scanning invocation: %w", err)
		}
		r.Status = types.InvocationStatus(status)
		results = append(results, r)
	}
	return results, rows.Err()
}
