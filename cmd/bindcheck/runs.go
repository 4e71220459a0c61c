package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiantiangg/dagger/internal/config"
)

func runsCmd() *cobra.Command {
	var limit int
	var showDiags int64
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded validation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(limit, showDiags)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	cmd.Flags().Int64Var(&showDiags, "diagnostics", 0, "Show diagnostics for a specific run ID")
	return cmd
}

func runRuns(limit int, showDiags int64) error {
	ctx := context.Background()

	cfg, err := config.LoadProjectConfig(configFile)
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	if showDiags > 0 {
		records, err := db.ListDiagnostics(ctx, showDiags)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintf(os.Stdout, "No diagnostics for run %d.\n", showDiags)
			return nil
		}
		for _, record := range records {
			fmt.Fprintf(os.Stdout, "  - [%s] %s: %s (%s)\n", record.Severity, record.Key, record.Message, record.Pass)
		}
		return nil
	}

	runs, err := db.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No recorded runs.")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(os.Stdout, "%d\t%s\t%s\tbindings=%d edges=%d errors=%d warnings=%d\n",
			run.ID, run.Project, run.RanAt.Format(time.RFC3339), run.Bindings, run.Edges, run.Errors, run.Warnings)
	}
	return nil
}
