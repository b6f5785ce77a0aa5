package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelsys/config"
	"hotelsys/di"
	"hotelsys/shared/logger"
	"hotelsys/shared/timezone"

	"github.com/rs/zerolog/log"
)

const traceShutdownTimeout = 5 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := di.InitializeCLI()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	err = app.Run(ctx, os.Args[1:], os.Stdout)
	if err != nil {
		log.Debug().Err(err).Msg("Command failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), traceShutdownTimeout)
	if shutdownErr := app.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("Failed to shut down tracing")
	}
	cancel()

	if err != nil {
		stop()
		os.Exit(1)
	}
}
