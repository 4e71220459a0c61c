package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/tiantiangg/dagger/internal/store"
)

func openTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bindcheck.db")
	client, err := New(ctx, "sqlite://"+path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { client.Close(ctx) })
	if err := client.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return client
}

func TestRecordAndListRuns(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)

	run := store.Run{
		Project:  "payments",
		RanAt:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Bindings: 12,
		Edges:    18,
		Errors:   2,
		Warnings: 1,
	}
	diagnostics := []store.DiagnosticRecord{
		{
			Pass:     "Dagger/ProviderDependsOnProducer",
			Severity: "error",
			Key:      "Database",
			Message:  "Database is a provision, which cannot depend on a production.",
		},
		{
			Pass:       "Dagger/ProviderDependsOnProducer",
			Severity:   "error",
			Key:        "Report",
			EntryPoint: true,
			Message:    "Report is a provision entry-point, which cannot depend on a production.",
		},
	}

	runID, err := client.RecordRun(ctx, run, diagnostics)
	if err != nil {
		t.Fatalf("record run: %v", err)
	}
	if runID == 0 {
		t.Fatalf("expected non-zero run id")
	}

	runs, err := client.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.Project != "payments" || got.Bindings != 12 || got.Errors != 2 {
		t.Fatalf("unexpected run: %+v", got)
	}
	if !got.RanAt.Equal(run.RanAt) {
		t.Fatalf("expected timestamp %v, got %v", run.RanAt, got.RanAt)
	}

	records, err := client.ListDiagnostics(ctx, runID)
	if err != nil {
		t.Fatalf("list diagnostics: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(records))
	}
	if records[0].Key != "Database" || records[0].EntryPoint {
		t.Fatalf("unexpected first diagnostic: %+v", records[0])
	}
	if records[1].Key != "Report" || !records[1].EntryPoint {
		t.Fatalf("unexpected second diagnostic: %+v", records[1])
	}
}

func TestListRunsOrderedNewestFirst(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)

	for i := 0; i < 3; i++ {
		run := store.Run{Project: "payments", RanAt: time.Now().UTC()}
		if _, err := client.RecordRun(ctx, run, nil); err != nil {
			t.Fatalf("record run %d: %v", i, err)
		}
	}

	runs, err := client.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(runs))
	}
	if runs[0].ID < runs[1].ID {
		t.Fatalf("expected newest first, got %d before %d", runs[0].ID, runs[1].ID)
	}
}

func TestListDiagnosticsEmptyRun(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)

	records, err := client.ListDiagnostics(ctx, 999)
	if err != nil {
		t.Fatalf("list diagnostics: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
