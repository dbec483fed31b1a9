// Package main is the entry point for the Virtual Piggy Bank API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/piggybank/backend/config"
	"github.com/piggybank/backend/internal/application/adapter"
	"github.com/piggybank/backend/internal/infra/db"
	"github.com/piggybank/backend/internal/infra/dependency"
	"github.com/piggybank/backend/internal/integration/persistence"
	"github.com/piggybank/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Virtual Piggy Bank API",
		"environment", cfg.Server.Environment,
		"storage", cfg.Storage.Driver,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	ledgerRepo, storageHealth, cleanup, err := buildStorage(cfg)
	if err != nil {
		slog.Error("Failed to initialize snapshot storage", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Wire everything; the injector loads the ledger snapshot once.
	injector := dependency.NewInjector(cfg, ledgerRepo, storageHealth)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// buildStorage constructs the configured snapshot backend. The returned
// cleanup is always safe to call.
func buildStorage(cfg *config.Config) (adapter.LedgerRepository, func() bool, func(), error) {
	switch cfg.Storage.Driver {
	case "redis":
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, func() {}, fmt.Errorf("invalid redis URL: %w", err)
		}
		client := redis.NewClient(opts)
		health := func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err() == nil
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}
		return persistence.NewRedisLedgerRepository(client), health, cleanup, nil

	case "postgres", "sqlite":
		var database *db.Database
		var err error
		if cfg.Storage.Driver == "postgres" {
			database, err = db.NewPostgresConnection(&cfg.Database)
		} else {
			database, err = db.NewSQLiteConnection(&cfg.Database)
		}
		if err != nil {
			return nil, nil, func() {}, err
		}
		if err := database.AutoMigrate(&model.GoalModel{}, &model.LedgerSettingModel{}); err != nil {
			return nil, nil, func() {}, fmt.Errorf("failed to run database migrations: %w", err)
		}
		slog.Info("Database migrations completed successfully")
		cleanup := func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}
		return persistence.NewGormLedgerRepository(database.DB()), database.HealthCheck, cleanup, nil

	case "memory":
		slog.Warn("Using in-memory storage, the ledger will not survive a restart")
		return persistence.NewMemoryLedgerRepository(), func() bool { return true }, func() {}, nil

	default:
		return nil, nil, func() {}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
