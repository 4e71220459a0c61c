package main

import (
	"context"

	"github.com/tiantiangg/dagger/internal/config"
	"github.com/tiantiangg/dagger/internal/graph"
	"github.com/tiantiangg/dagger/internal/manifest"
)

const configFile = "bindcheck.yaml"

func loadProject() (*config.ProjectConfig, *graph.BindingGraph, error) {
	cfg, err := config.LoadProjectConfig(configFile)
	if err != nil {
		return nil, nil, err
	}

	g, err := loadGraph(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, g, nil
}

func loadGraph(cfg *config.ProjectConfig) (*graph.BindingGraph, error) {
	manifests, err := manifest.LoadAll(cfg.Manifests, cfg.Exclude)
	if err != nil {
		return nil, err
	}
	return graph.Build(manifests)
}

// configLoader adapts the project config to mcp.GraphLoader.
type configLoader struct {
	cfg *config.ProjectConfig
}

func (l *configLoader) Load(ctx context.Context) (*graph.BindingGraph, error) {
	return loadGraph(l.cfg)
}
