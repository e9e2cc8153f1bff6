// Command app serves the household Mystery Wheel API.
//
// @title Chore Wheel API
// @version 1.0
// @description Mystery Wheel reward engine for household chores.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	"github.com/osse101/ChoreWheel_Go/internal/auth"
	"github.com/osse101/ChoreWheel_Go/internal/bootstrap"
	"github.com/osse101/ChoreWheel_Go/internal/config"
	"github.com/osse101/ChoreWheel_Go/internal/database"
	"github.com/osse101/ChoreWheel_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load reads .env first, so validation sees the same variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	slog.Info("Starting chore wheel",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port)
	slog.Debug("Configuration loaded",
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return err
	}

	if cfg.MigrateOnStart {
		if _, err := database.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return err
		}
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}
	if err := bootstrap.RegisterEventHandlers(bus); err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos, publisher)

	verifier, err := auth.NewVerifier(cfg.JWTSecret)
	if err != nil {
		dbPool.Close()
		return err
	}

	srv := server.NewServer(cfg.Port, verifier, cfg.TrustedProxies, dbPool, services.Wheel, services.Config, server.BuildInfo{
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		DBPool:             dbPool,
	})
	return nil
}
