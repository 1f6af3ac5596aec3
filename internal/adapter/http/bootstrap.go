package http

import (
	"log/slog"
	"net/http"
	"time"

	"taskapp/internal/adapter/database/postgres"
	pgrepo "taskapp/internal/adapter/database/postgres/repository"
	"taskapp/internal/adapter/database/sqlite"
	sqliterepo "taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/adapter/http/routes"
	"taskapp/internal/core/port"
	"taskapp/internal/core/telemetry"
	"taskapp/pkg/config"
)

func StartServer(metrics *telemetry.AppMetrics, logger *config.AppLogger) {
	StartServerWithConfig(metrics, logger, config.GetDefaultConfig())
}

func StartServerWithConfig(metrics *telemetry.AppMetrics, logger *config.AppLogger, cfg *config.AppConfig) {
	userRepo, taskRepo, cleanup, err := buildRepositories(cfg)

	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return
	}

	defer cleanup()

	container := NewContainer(userRepo, taskRepo, metrics)

	router := routes.SetupRouterWithConfig(routes.HandlersConfig{
		UserHandler: container.UserHandler,
		TaskHandler: container.TaskHandler,
	}, metrics, logger, cfg)

	slog.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"database_driver", cfg.DatabaseDriver,
		"rate_limit_enabled", cfg.RateLimitEnabled)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed to start", "error", err)
	}
}

func buildRepositories(cfg *config.AppConfig) (port.UserRepository, port.TaskRepository, func(), error) {
	if cfg.DatabaseDriver == "postgres" {
		db, err := postgres.NewDB()

		if err != nil {
			return nil, nil, nil, err
		}

		return pgrepo.NewUserRepository(db), pgrepo.NewTaskRepository(db), db.Close, nil
	}

	db, err := sqlite.NewDB()

	if err != nil {
		return nil, nil, nil, err
	}

	cleanup := func() { db.Close() }

	return sqliterepo.NewUserRepository(db), sqliterepo.NewTaskRepository(db), cleanup, nil
}
