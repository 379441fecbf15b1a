// Command setup applies schema migrations and seeds the deployment: roles
// for the admin and engine addresses, the admin's working inventory and the
// metadata base URI. Safe to run repeatedly.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/veylan/EmberArmory_Go/internal/config"
	"github.com/veylan/EmberArmory_Go/internal/database"
	"github.com/veylan/EmberArmory_Go/internal/database/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewDefaultPool(cfg.GetDBConnString())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.Migrate(dbPool); err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := postgres.EnsureDeployment(ctx, dbPool, cfg.AdminAddress, cfg.EngineAddress, cfg.BaseMetadataURI); err != nil {
		slog.Error("Failed to seed deployment", "error", err)
		os.Exit(1)
	}

	slog.Info("Setup complete",
		"admin", cfg.AdminAddress,
		"engine", cfg.EngineAddress)
}
