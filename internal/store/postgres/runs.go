package postgres

import (
	"context"
	"fmt"

	"github.com/tiantiangg/dagger/internal/store"
)

func (c *Client) RecordRun(ctx context.Context, run store.Run, diagnostics []store.DiagnosticRecord) (int64, error) {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var runID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO runs (project, ran_at, bindings, edges, errors, warnings)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		run.Project, run.RanAt, run.Bindings, run.Edges, run.Errors, run.Warnings).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	for _, d := range diagnostics {
		if _, err := tx.Exec(ctx,
			`INSERT INTO diagnostics (run_id, pass, severity, key, entry_point, message)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			runID, d.Pass, d.Severity, d.Key, d.EntryPoint, d.Message); err != nil {
			return 0, fmt.Errorf("inserting diagnostic: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

func (c *Client) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := c.pool.Query(ctx,
		`SELECT id, project, ran_at, bindings, edges, errors, warnings FROM runs ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var run store.Run
		if err := rows.Scan(&run.ID, &run.Project, &run.RanAt, &run.Bindings, &run.Edges, &run.Errors, &run.Warnings); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (c *Client) ListDiagnostics(ctx context.Context, runID int64) ([]store.DiagnosticRecord, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT run_id, pass, severity, key, entry_point, message FROM diagnostics WHERE run_id = $1 ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing diagnostics: %w", err)
	}
	defer rows.Close()

	var records []store.DiagnosticRecord
	for rows.Next() {
		var record store.DiagnosticRecord
		if err := rows.Scan(&record.RunID, &record.Pass, &record.Severity, &record.Key, &record.EntryPoint, &record.Message); err != nil {
			return nil, fmt.Errorf("scanning diagnostic: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
