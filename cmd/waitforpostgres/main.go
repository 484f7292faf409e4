package main

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"

	"github.com/Skotchmaster/idea_board/internal/config"
	"github.com/Skotchmaster/idea_board/internal/logging"
)

// waitforpostgres blocks until the configured database answers a ping.
// It runs before migrations in compose and CI.
func main() {
	l := logging.New(config.EnvDefault("LOG_LEVEL", "info"))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			l.Error("config error", "error", err)
			os.Exit(2)
		}
		dsn = cfg.DatabaseURL
	}

	timeout := 60 * time.Second
	if raw := os.Getenv("WAIT_FOR_POSTGRES_TIMEOUT_SEC"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			l.Error("invalid WAIT_FOR_POSTGRES_TIMEOUT_SEC", "value", raw)
			os.Exit(2)
		}
		timeout = time.Duration(secs) * time.Second
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		l.Error("open postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	deadline := time.Now().Add(timeout)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := db.PingContext(ctx)
		cancel()
		if err == nil {
			l.Info("postgres ready")
			return
		}
		if time.Now().After(deadline) {
			l.Error("postgres not ready", "timeout", timeout.String(), "error", err)
			os.Exit(1)
		}
		time.Sleep(2 * time.Second)
	}
}
