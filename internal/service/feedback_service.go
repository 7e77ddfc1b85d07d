package service

import (
	"context"
	"log/slog"

	"github.com/tasktrack/tasktrack-api/internal/domain"
	"github.com/tasktrack/tasktrack-api/internal/store"
)

// FeedbackService provides feedback submission. All fields are optional;
// a submission never fails validation.
type FeedbackService interface {
	// SubmitFeedback appends a feedback entry with defaults filled in and
	// returns it with its assigned ID. A nil rating means the caller sent
	// none and the default applies; an explicit zero is kept.
	SubmitFeedback(ctx context.Context, text string, rating *int) (*domain.Feedback, error)
}

// feedbackServiceImpl implements the FeedbackService interface.
type feedbackServiceImpl struct {
	feedbackStore store.FeedbackStore
	logger        *slog.Logger
}

// NewFeedbackService creates a new FeedbackService backed by the given store.
func NewFeedbackService(feedbackStore store.FeedbackStore, logger *slog.Logger) FeedbackService {
	if feedbackStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("feedbackStore cannot be nil for FeedbackService")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &feedbackServiceImpl{
		feedbackStore: feedbackStore,
		logger:        logger.With(slog.String("component", "feedback_service")),
	}
}

func (s *feedbackServiceImpl) SubmitFeedback(ctx context.Context, text string, rating *int) (*domain.Feedback, error) {
	feedback := domain.NewFeedback(text, rating)

	if err := s.feedbackStore.Append(ctx, feedback); err != nil {
		return nil, newTaskServiceError("submit_feedback", "failed to append feedback", err)
	}

	s.logger.Info("feedback submitted",
		slog.Int64("feedback_id", feedback.ID),
		slog.Int("rating", feedback.Rating))
	return feedback, nil
}
