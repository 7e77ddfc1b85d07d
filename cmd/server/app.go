package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tasktrack/tasktrack-api/internal/config"
	"github.com/tasktrack/tasktrack-api/internal/platform/memory"
	"github.com/tasktrack/tasktrack-api/internal/platform/postgres"
	"github.com/tasktrack/tasktrack-api/internal/service"
	"github.com/tasktrack/tasktrack-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskService     service.TaskService
	feedbackService service.FeedbackService

	pool *pgxpool.Pool // nil for the memory backend
}

// newApplication selects the storage backend from configuration and wires
// the services on top of it. The memory backend is the default and keeps
// all state per process; the postgres backend is the shared store for
// multi-instance deployments and gets its schema migrated here.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var (
		taskStore     store.TaskStore
		feedbackStore store.FeedbackStore
	)
	switch cfg.Store.Backend {
	case "postgres":
		if err := postgres.Migrate(cfg.Store.DatabaseURL); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create connection pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		app.pool = pool
		taskStore = postgres.NewTaskStore(pool, logger)
		feedbackStore = postgres.NewFeedbackStore(pool, logger)
		logger.Info("using postgres store backend")

	default:
		taskStore = memory.NewTaskStore()
		feedbackStore = memory.NewFeedbackStore()
		logger.Info("using in-memory store backend",
			"note", "state is per-process and does not survive restarts")
	}

	app.taskService = service.NewTaskService(taskStore, logger)
	app.feedbackService = service.NewFeedbackService(feedbackStore, logger)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
	}
}
