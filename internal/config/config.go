package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type ProjectConfig struct {
	Project   string         `yaml:"project"`
	Version   int            `yaml:"version"`
	Manifests []string       `yaml:"manifests"`
	Exclude   []string       `yaml:"exclude"`
	Database  DatabaseConfig `yaml:"database"`
	Passes    PassConfig     `yaml:"passes"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type PassConfig struct {
	Disable []string `yaml:"disable"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if len(cfg.Manifests) == 0 {
		return fmt.Errorf("at least one manifest path is required")
	}

	seen := make(map[string]struct{})
	for i, path := range cfg.Manifests {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("manifest path %d is empty", i)
		}
		if _, exists := seen[path]; exists {
			return fmt.Errorf("duplicate manifest path: %s", path)
		}
		seen[path] = struct{}{}
	}

	switch cfg.Database.Driver {
	case "", "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
	if cfg.Database.Driver != "" && strings.TrimSpace(cfg.Database.DSN) == "" {
		return fmt.Errorf("database dsn is required when a driver is set")
	}

	return nil
}
