package api

import (
	"net/http"
	"time"

	"github.com/tasktrack/tasktrack-api/internal/api/shared"
)

// SystemHandler serves the endpoints with no state behind them: health
// probes and the fixed current-subtask descriptor.
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HealthResponse defines the response for the health endpoints.
type HealthResponse struct {
	Status  string    `json:"status"`
	Service string    `json:"service"`
	Time    time.Time `json:"time"`
}

// currentSubtask is the constant payload served by the current-subtask
// endpoint. There is no subtask model behind it; the endpoint exists for
// wire compatibility with clients that poll it.
var currentSubtask = map[string]any{
	"id":      1,
	"heading": "Review current task details",
	"details": "Check the task list and pick the next item to work on",
	"status":  "pending",
}

// Health handles GET /health and GET /api/health requests.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "tasktrack-api",
		Time:    time.Now().UTC(),
	})
}

// CurrentSubtask handles GET /api/current-subtask requests. It returns the
// same fixed descriptor on every call and has no error paths.
func (h *SystemHandler) CurrentSubtask(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		"status":  shared.StatusSuccess,
		"subtask": currentSubtask,
	})
}
