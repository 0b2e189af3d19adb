package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/phl-league-service/internal/config"
	"github.com/preston-bernstein/phl-league-service/internal/logging"
	"github.com/preston-bernstein/phl-league-service/internal/server"
)

const (
	appName    = "phl-league-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	// .env only fills variables the environment does not already set.
	dotenvErr := config.LoadDotEnv()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: appName,
		Version: appVersion,
	})
	if dotenvErr != nil {
		logging.Warn(logger, "failed to load .env", "error", dotenvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
