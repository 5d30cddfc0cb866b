package main

import (
	"budgetsync/internal/config"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/db"
	zaplogging "budgetsync/internal/implementations/logging"
	"context"
	"os"
)

func main() {
	cfg, err := config.LoadMigrator()
	if err != nil {
		panic(err)
	}

	log := zaplogging.NewZapLogger(cfg.Debug)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Applying migrations.", logging.Entry("path", cfg.MigrationsPath))

	changed, err := db.Migrate(cfg.PostgresqlURL, cfg.MigrationsPath)
	if err != nil {
		log.Error(ctx, "Could not apply migrations.", logging.Entry("err", err))
		log.Sync()
		os.Exit(1)
	}
	if !changed {
		log.Info(ctx, "Database schema is up to date.")
		return
	}
	log.Info(ctx, "Migrations have been applied.")
}
