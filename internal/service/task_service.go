package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/tasktrack/tasktrack-api/internal/domain"
	"github.com/tasktrack/tasktrack-api/internal/store"
)

// CreateTaskParams carries the caller-supplied fields for a new task.
// Heading is the only required field; Priority overrides the documented
// default when non-empty.
type CreateTaskParams struct {
	Heading  string
	Details  string
	Deadline json.RawMessage
	Priority domain.TaskPriority
}

// TaskService provides task-related operations.
type TaskService interface {
	// ListTasks returns all tasks in insertion order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// CreateTask creates a new task with defaults filled in.
	// Returns ErrValidation if the heading is missing.
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// UpdateTask merges the patch into the task with the given ID.
	// Returns ErrTaskNotFound if the task does not exist. Unknown patch
	// keys have already been dropped by this point; an all-unknown patch
	// is a valid no-op update.
	UpdateTask(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error)

	// DeleteTask removes the task with the given ID. Absent IDs succeed:
	// the operation is idempotent.
	DeleteTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService backed by the given store.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) TaskService {
	if taskStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskStore cannot be nil for TaskService")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, newTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	task, err := domain.NewTask(params.Heading, params.Details, params.Deadline)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTaskHeading) {
			return nil, ErrValidation
		}
		return nil, newTaskServiceError("create_task", "invalid task", err)
	}
	if params.Priority != "" {
		task.Priority = params.Priority
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, newTaskServiceError("create_task", "failed to save task", err)
	}

	s.logger.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.String("priority", string(task.Priority)))
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error) {
	task, err := s.taskStore.Update(ctx, id, patch)
	if err != nil {
		return nil, newTaskServiceError("update_task", "failed to update task", err)
	}

	s.logger.Info("task updated", slog.Int64("task_id", id))
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		return newTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.logger.Info("task deleted", slog.Int64("task_id", id))
	return nil
}
