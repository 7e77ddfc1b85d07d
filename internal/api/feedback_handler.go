package api

import (
	"log/slog"
	"net/http"

	"github.com/tasktrack/tasktrack-api/internal/api/shared"
	"github.com/tasktrack/tasktrack-api/internal/platform/logger"
	"github.com/tasktrack/tasktrack-api/internal/service"
)

// FeedbackHandler handles feedback-related HTTP requests
type FeedbackHandler struct {
	feedbackService service.FeedbackService
	logger          *slog.Logger
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackService service.FeedbackService, logger *slog.Logger) *FeedbackHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for FeedbackHandler")
	}

	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger.With(slog.String("component", "feedback_handler")),
	}
}

// SubmitFeedback handles POST /api/feedback requests.
// Every field is optional: an empty object is a valid submission and gets
// the documented defaults. Only an undecodable body fails, as an internal
// error.
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req FeedbackRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Error("failed to decode feedback request", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to process request body", err)
		return
	}

	feedback, err := h.feedbackService.SubmitFeedback(r.Context(), req.Text(), req.Rating)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to submit feedback", err)
		return
	}

	log.Debug("submitted feedback", slog.Int64("feedback_id", feedback.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, FeedbackResponse{
		Status:   shared.StatusSuccess,
		Message:  "Feedback submitted successfully",
		Feedback: feedback,
	})
}
