// Command migrate applies the embedded schema migrations and exits.
// Use it when the service runs with MIGRATE_ON_START=false.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/ChoreWheel_Go/internal/config"
	"github.com/osse101/ChoreWheel_Go/internal/database"
)

func main() {
	wait := flag.Duration("wait", time.Minute, "how long to wait for the database to accept connections")
	flag.Parse()

	if err := run(*wait); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func run(wait time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{SkipPing: true})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool); err != nil {
		return err
	}

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		return err
	}
	slog.Info("Schema up to date", "version", version)
	return nil
}

// waitForDB pings until the database answers or ctx expires
func waitForDB(ctx context.Context, pool database.Pool) error {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		err := pool.Ping(ctx)
		if err == nil {
			return nil
		}
		slog.Info("Database not ready", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("database not ready: %w", err)
		case <-ticker.C:
		}
	}
}
