package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/tiantiangg/dagger/internal/store"
)

func (c *Client) RecordRun(ctx context.Context, run store.Run, diagnostics []store.DiagnosticRecord) (int64, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO runs (project, ran_at, bindings, edges, errors, warnings) VALUES (?, ?, ?, ?, ?, ?)`,
		run.Project, run.RanAt.UTC().Format(time.RFC3339), run.Bindings, run.Edges, run.Errors, run.Warnings)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, d := range diagnostics {
		entryPoint := 0
		if d.EntryPoint {
			entryPoint = 1
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO diagnostics (run_id, pass, severity, key, entry_point, message) VALUES (?, ?, ?, ?, ?, ?)`,
			runID, d.Pass, d.Severity, d.Key, entryPoint, d.Message); err != nil {
			return 0, fmt.Errorf("inserting diagnostic: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

func (c *Client) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, project, ran_at, bindings, edges, errors, warnings FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var run store.Run
		var ranAt string
		if err := rows.Scan(&run.ID, &run.Project, &ranAt, &run.Bindings, &run.Edges, &run.Errors, &run.Warnings); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339, ranAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp: %w", err)
		}
		run.RanAt = parsed
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (c *Client) ListDiagnostics(ctx context.Context, runID int64) ([]store.DiagnosticRecord, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT run_id, pass, severity, key, entry_point, message FROM diagnostics WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing diagnostics: %w", err)
	}
	defer rows.Close()

	var records []store.DiagnosticRecord
	for rows.Next() {
		var record store.DiagnosticRecord
		var entryPoint int
		if err := rows.Scan(&record.RunID, &record.Pass, &record.Severity, &record.Key, &entryPoint, &record.Message); err != nil {
			return nil, fmt.Errorf("scanning diagnostic: %w", err)
		}
		record.EntryPoint = entryPoint != 0
		records = append(records, record)
	}
	return records, rows.Err()
}
