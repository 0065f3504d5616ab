package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sariops/sariops/config"
	"github.com/sariops/sariops/internal/app"
	"github.com/sariops/sariops/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger().WithField("error", err.Error()).Fatal("Failed to load configuration")
	}

	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	log.WithFields(map[string]interface{}{
		"version":     cfg.Version,
		"environment": cfg.Environment,
	}).Info("Starting sariops")

	application := app.NewApp(cfg, app.WithLogger(log))
	if err := application.Initialize(); err != nil {
		log.WithField("error", err.Error()).Fatal("Failed to initialize application")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.WithField("error", err.Error()).Fatal("Server failed")
		}
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.WithField("error", err.Error()).Error("Shutdown error")
		os.Exit(1)
	}
}
