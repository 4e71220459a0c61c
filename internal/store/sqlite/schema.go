package sqlite

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS runs (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		project  TEXT NOT NULL,
		ran_at   TEXT NOT NULL,
		bindings INTEGER NOT NULL DEFAULT 0,
		edges    INTEGER NOT NULL DEFAULT 0,
		errors   INTEGER NOT NULL DEFAULT 0,
		warnings INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS diagnostics (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id      INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		pass        TEXT NOT NULL,
		severity    TEXT NOT NULL,
		key         TEXT NOT NULL,
		entry_point INTEGER NOT NULL DEFAULT 0,
		message     TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_project ON runs (project);
	CREATE INDEX IF NOT EXISTS idx_diagnostics_run ON diagnostics (run_id);
	CREATE INDEX IF NOT EXISTS idx_diagnostics_severity ON diagnostics (severity);
	`

	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}
	return nil
}
