package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tasktrack/tasktrack-api/internal/domain"
	"github.com/tasktrack/tasktrack-api/internal/platform/logger"
	"github.com/tasktrack/tasktrack-api/internal/store"
)

// FeedbackStore implements store.FeedbackStore using PostgreSQL. The log
// table is insert-only; the BIGSERIAL id matches the entry's position in
// the log under serialized inserts.
type FeedbackStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewFeedbackStore creates a new PostgreSQL implementation of the
// FeedbackStore interface.
func NewFeedbackStore(pool *pgxpool.Pool, logger *slog.Logger) *FeedbackStore {
	if pool == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pool cannot be nil for FeedbackStore")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FeedbackStore{
		pool:   pool,
		logger: logger.With(slog.String("component", "feedback_store")),
	}
}

// Ensure FeedbackStore implements store.FeedbackStore
var _ store.FeedbackStore = (*FeedbackStore)(nil)

// Append implements store.FeedbackStore.Append.
func (s *FeedbackStore) Append(ctx context.Context, feedback *domain.Feedback) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO feedback (feedback_text, rating, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.pool.QueryRow(
		ctx,
		query,
		feedback.FeedbackText,
		feedback.Rating,
		feedback.Timestamp,
	).Scan(&feedback.ID)
	if err != nil {
		log.Error("failed to append feedback", slog.String("error", err.Error()))
		return mapError(err)
	}

	log.Debug("feedback appended", slog.Int64("feedback_id", feedback.ID))
	return nil
}
