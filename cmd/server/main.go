package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/football-career-sim/internal/config"
	"github.com/preston-bernstein/football-career-sim/internal/logging"
	"github.com/preston-bernstein/football-career-sim/internal/server"
)

const (
	serviceName = "football-career-sim"
	appVersion  = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	// A missing .env is fine; the environment still applies.
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(loggerConfig(cfg))
	if envErr != nil && !os.IsNotExist(envErr) {
		logging.Warn(logger, "could not load .env", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		logging.Error(logger, "server setup failed", err)
		stop()
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}

func loggerConfig(cfg config.Config) logging.Config {
	return logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	}
}
