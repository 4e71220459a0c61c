package main

import (
	"context"
	"fmt"

	"github.com/tiantiangg/dagger/internal/config"
	"github.com/tiantiangg/dagger/internal/store"
	"github.com/tiantiangg/dagger/internal/store/postgres"
	"github.com/tiantiangg/dagger/internal/store/sqlite"
)

func openDB(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		return sqlite.New(ctx, cfg.Database.DSN)
	case "postgres":
		return postgres.New(ctx, cfg.Database.DSN)
	case "":
		return nil, fmt.Errorf("no database configured; set database.driver in %s", configFile)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}
