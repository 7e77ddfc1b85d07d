package api

import (
	"encoding/json"

	"github.com/tasktrack/tasktrack-api/internal/domain"
)

// Common request/response structures

// CreateTaskRequest defines the payload for the task creation endpoint.
// Heading is the only required field; deadline is stored opaquely, so any
// JSON value is accepted there.
type CreateTaskRequest struct {
	Heading  string          `json:"heading"  validate:"required"`
	Details  string          `json:"details"`
	Deadline json.RawMessage `json:"deadline"`
	Priority string          `json:"priority"`
}

// FeedbackRequest defines the payload for the feedback endpoint. Both the
// feedback_text and legacy feedback keys are accepted; feedback_text wins
// when both are present. Nothing is required. Rating is a pointer so an
// explicit zero stays distinguishable from an omitted key.
type FeedbackRequest struct {
	FeedbackText string `json:"feedback_text"`
	Feedback     string `json:"feedback"`
	Rating       *int   `json:"rating"`
}

// Text returns the feedback text, preferring feedback_text over the
// legacy feedback key.
func (r FeedbackRequest) Text() string {
	if r.FeedbackText != "" {
		return r.FeedbackText
	}
	return r.Feedback
}

// TaskListResponse defines the successful response for the task list endpoint.
type TaskListResponse struct {
	Status string         `json:"status"`
	Tasks  []*domain.Task `json:"tasks"`
	Count  int            `json:"count"`
}

// TaskResponse defines the successful response for the task create/update endpoints.
type TaskResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Task    *domain.Task `json:"task"`
}

// MessageResponse defines a successful response carrying only a message,
// used by the delete endpoint.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FeedbackResponse defines the successful response for the feedback endpoint.
type FeedbackResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Feedback *domain.Feedback `json:"feedback"`
}
