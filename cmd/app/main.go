package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veylan/EmberArmory_Go/internal/access"
	"github.com/veylan/EmberArmory_Go/internal/catalog"
	"github.com/veylan/EmberArmory_Go/internal/config"
	"github.com/veylan/EmberArmory_Go/internal/database"
	"github.com/veylan/EmberArmory_Go/internal/database/postgres"
	"github.com/veylan/EmberArmory_Go/internal/event"
	"github.com/veylan/EmberArmory_Go/internal/eventlog"
	"github.com/veylan/EmberArmory_Go/internal/metrics"
	"github.com/veylan/EmberArmory_Go/internal/progression"
	"github.com/veylan/EmberArmory_Go/internal/server"
	"github.com/veylan/EmberArmory_Go/internal/token"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	dbPool, err := database.NewDefaultPool(cfg.GetDBConnString())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx := context.Background()

	if cfg.AutoMigrate {
		if err := database.Migrate(dbPool); err != nil {
			slog.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	if err := postgres.EnsureDeployment(ctx, dbPool, cfg.AdminAddress, cfg.EngineAddress, cfg.BaseMetadataURI); err != nil {
		slog.Error("Failed to seed deployment", "error", err)
		os.Exit(1)
	}

	eventBus := event.NewMemoryBus()

	accessService := access.NewService(postgres.NewAccessRepository(dbPool))
	tokenService := token.NewService(postgres.NewTokenRepository(dbPool), accessService)
	catalogService := catalog.NewService(postgres.NewCatalogRepository(dbPool), accessService)
	progressionService := progression.NewService(
		postgres.NewEngineRepository(dbPool),
		catalogService,
		accessService,
		eventBus,
		cfg.EngineAddress,
	)
	eventLogService := eventlog.NewService(postgres.NewEventLogRepository(dbPool))

	// Wire event consumers before any event can fire
	if err := eventLogService.Subscribe(eventBus); err != nil {
		slog.Error("Failed to subscribe event logger", "error", err)
		os.Exit(1)
	}
	if err := metrics.NewEventMetricsCollector().Register(eventBus); err != nil {
		slog.Error("Failed to register metrics collector", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		nil,
		dbPool,
		tokenService,
		catalogService,
		progressionService,
		accessService,
		eventLogService,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced to shut down", "error", err)
	}

	slog.Info("Server stopped")
}
