package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id       BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    project  TEXT NOT NULL,
    ran_at   TIMESTAMPTZ NOT NULL,
    bindings INTEGER NOT NULL DEFAULT 0,
    edges    INTEGER NOT NULL DEFAULT 0,
    errors   INTEGER NOT NULL DEFAULT 0,
    warnings INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS diagnostics (
    id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    run_id      BIGINT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    pass        TEXT NOT NULL,
    severity    TEXT NOT NULL,
    key         TEXT NOT NULL,
    entry_point BOOLEAN NOT NULL DEFAULT FALSE,
    message     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_project ON runs (project);
CREATE INDEX IF NOT EXISTS idx_diagnostics_run ON diagnostics (run_id);
CREATE INDEX IF NOT EXISTS idx_diagnostics_severity ON diagnostics (severity);
`

	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensuring postgres schema: %w", err)
	}
	return nil
}
