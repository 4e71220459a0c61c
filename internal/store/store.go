package store

import (
	"context"
)

// Store persists validation runs so findings can be compared over time.
// Recording is opt-in; validation itself never touches a store.
type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	RecordRun(ctx context.Context, run Run, diagnostics []DiagnosticRecord) (int64, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	ListDiagnostics(ctx context.Context, runID int64) ([]DiagnosticRecord, error)
}
