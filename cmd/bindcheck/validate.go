package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiantiangg/dagger/internal/config"
	"github.com/tiantiangg/dagger/internal/graph"
	"github.com/tiantiangg/dagger/internal/store"
	"github.com/tiantiangg/dagger/internal/validate"
)

func validateCmd() *cobra.Command {
	var record bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build the binding graph and run validation passes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(record)
		},
	}
	cmd.Flags().BoolVar(&record, "record", false, "Record the run in the configured database")
	return cmd
}

func runValidate(record bool) error {
	ctx := context.Background()

	cfg, g, err := loadProject()
	if err != nil {
		return err
	}

	passes := validate.Enabled(validate.Passes(), cfg.Passes.Disable)
	report := validate.Run(g, passes)

	var errorDiags []validate.Diagnostic
	var warnDiags []validate.Diagnostic
	for _, diag := range report.Diagnostics {
		switch diag.Severity {
		case validate.SeverityError:
			errorDiags = append(errorDiags, diag)
		case validate.SeverityWarn:
			warnDiags = append(warnDiags, diag)
		}
	}

	if record {
		if err := recordRun(ctx, cfg, g, report); err != nil {
			return err
		}
	}

	if len(errorDiags) == 0 && len(warnDiags) == 0 {
		fmt.Fprintln(os.Stdout, "No issues found.")
		return nil
	}

	if len(errorDiags) > 0 {
		fmt.Fprintf(os.Stdout, "Errors (%d):\n", len(errorDiags))
		printDiagnostics(os.Stdout, errorDiags)
	}
	if len(warnDiags) > 0 {
		if len(errorDiags) > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		fmt.Fprintf(os.Stdout, "Warnings (%d):\n", len(warnDiags))
		printDiagnostics(os.Stdout, warnDiags)
	}

	if len(errorDiags) > 0 {
		return fmt.Errorf("validation found errors")
	}
	return nil
}

func printDiagnostics(out *os.File, diags []validate.Diagnostic) {
	for _, diag := range diags {
		location := diag.Edge.Request.Key.String()
		if diag.Edge.EntryPoint {
			location = fmt.Sprintf("%s [entry point]", location)
		}
		fmt.Fprintf(out, "  - %s: %s (%s)\n", location, diag.Message, diag.Pass)
	}
}

func recordRun(ctx context.Context, cfg *config.ProjectConfig, g *graph.BindingGraph, report *validate.Report) error {
	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	records := make([]store.DiagnosticRecord, 0, len(report.Diagnostics))
	for _, diag := range report.Diagnostics {
		records = append(records, store.DiagnosticRecord{
			Pass:       diag.Pass,
			Severity:   string(diag.Severity),
			Key:        diag.Edge.Request.Key.String(),
			EntryPoint: diag.Edge.EntryPoint,
			Message:    diag.Message,
		})
	}

	run := store.Run{
		Project:  cfg.Project,
		RanAt:    time.Now(),
		Bindings: len(g.Bindings()),
		Edges:    len(g.Edges()),
		Errors:   report.Count(validate.SeverityError),
		Warnings: report.Count(validate.SeverityWarn),
	}

	runID, err := db.RecordRun(ctx, run, records)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Recorded run %d.\n", runID)
	return nil
}
