package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var projectName string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new bindcheck project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(projectName)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	return cmd
}

func runInit(projectName string) error {
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("%s already exists", configFile)
	}

	configContents := fmt.Sprintf("project: %s\nversion: 1\n\nmanifests:\n  - ./bindings/\n\ndatabase:\n  driver: sqlite\n  dsn: sqlite://bindcheck.db\n", projectName)
	if err := os.WriteFile(configFile, []byte(configContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configFile, err)
	}

	if err := os.MkdirAll("bindings", 0o750); err != nil {
		return fmt.Errorf("creating bindings directory: %w", err)
	}

	examplePath := filepath.Join("bindings", "app.yaml")
	if _, err := os.Stat(examplePath); err == nil {
		return nil
	}
	exampleContents := `module: app

bindings:
  - key: Config
    kind: provision
  - key: Database
    kind: provision
    dependencies:
      - key: Config
        request: instance
  - key: ReportData
    kind: production
    dependencies:
      - key: Database
        request: instance

components:
  - name: AppComponent
    entry_points:
      - key: Database
        request: instance
      - key: ReportData
        request: future
`
	if err := os.WriteFile(examplePath, []byte(exampleContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", examplePath, err)
	}

	return nil
}
