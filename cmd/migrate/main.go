package main

import (
	"context"
	"log/slog"

	"github.com/viraj5503/portfolio-api/internal/config"
	"github.com/viraj5503/portfolio-api/internal/logging"
	"github.com/viraj5503/portfolio-api/internal/repository"
)

// migrate applies the contact_submissions schema. The statements are
// idempotent, so re-running against an existing database is safe.
func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, repository.Schema); err != nil {
		logging.Fatal("failed to apply schema", "error", err)
	}
	slog.Info("schema applied")
}
