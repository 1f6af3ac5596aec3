package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	api "taskapp/internal/adapter/http"
	"taskapp/internal/adapter/telemetry"
	"taskapp/pkg/config"
)

func main() {
	ctx := context.Background()

	cfg := config.GetDefaultConfig()

	logger, err := config.NewAppLogger("taskapp")

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	container, err := telemetry.NewContainer(telemetry.Config{
		ServiceName:    "taskapp",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Environment,
		MetricsPort:    cfg.MetricsPort,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	}, slog.Default())

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer container.Shutdown(ctx)

	container.AppMetrics.StartSystemMetrics(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		api.StartServerWithConfig(container.AppMetrics, logger, cfg)
	}()

	<-c
	logger.Logger.Info("Shutting down gracefully...")
}
