// Package api provides HTTP handlers for the API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tasktrack/tasktrack-api/internal/api/shared"
	"github.com/tasktrack/tasktrack-api/internal/domain"
	"github.com/tasktrack/tasktrack-api/internal/platform/logger"
	"github.com/tasktrack/tasktrack-api/internal/service"
	"github.com/tasktrack/tasktrack-api/internal/store"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/tasks requests.
// It returns every task in insertion order together with a count.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to list tasks", err)
		return
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{
		Status: shared.StatusSuccess,
		Tasks:  tasks,
		Count:  len(tasks),
	})
}

// CreateTask handles POST /api/tasks requests.
// A missing heading yields 400; an undecodable body is treated as an
// internal failure and yields 500.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Error("failed to decode create task request", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to process request body", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("create task validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Heading is required")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), service.CreateTaskParams{
		Heading:  req.Heading,
		Details:  req.Details,
		Deadline: req.Deadline,
		Priority: domain.TaskPriority(req.Priority),
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("created task", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, TaskResponse{
		Status:  shared.StatusSuccess,
		Message: "Task created successfully",
		Task:    task,
	})
}

// UpdateTask handles PUT /api/tasks/{id} requests.
// The body is a partial field map: recognized keys are merged, unknown
// keys are silently dropped, and a patch with no recognized keys leaves
// the record (including its updated_at) untouched.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	var fields map[string]json.RawMessage
	if err := shared.DecodeJSON(r, &fields); err != nil {
		log.Error("failed to decode update task request",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to process request body", err)
		return
	}

	patch, err := store.PatchFromFields(fields)
	if err != nil {
		log.Error("failed to parse update fields",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to process request body", err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("updated task", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, TaskResponse{
		Status: shared.StatusSuccess,
		Task:   task,
	})
}

// DeleteTask handles DELETE /api/tasks/{id} requests.
// Deletion is idempotent: an absent ID still reports success.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to delete task", err)
		return
	}

	log.Debug("deleted task", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Status:  shared.StatusSuccess,
		Message: "Task deleted successfully",
	})
}

// taskIDFromRequest extracts and parses the {id} URL parameter. On failure
// it writes the 400 response itself and reports false.
func taskIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return 0, false
	}
	return id, true
}
