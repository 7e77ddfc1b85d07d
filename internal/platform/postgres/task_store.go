// Package postgres implements the store interfaces on PostgreSQL. It is
// the shared backend for deployments running more than one server
// instance; the default in-memory backend keeps state per process.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tasktrack/tasktrack-api/internal/domain"
	"github.com/tasktrack/tasktrack-api/internal/platform/logger"
	"github.com/tasktrack/tasktrack-api/internal/store"
)

const taskColumns = "id, heading, details, status, priority, deadline, created_at, updated_at"

// TaskStore implements store.TaskStore using a PostgreSQL database as the
// storage backend. IDs come from a BIGSERIAL sequence, which preserves the
// strictly-increasing, never-reused assignment the memory backend provides.
type TaskStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore
// interface. The pool must be initialized and is managed by the caller.
// If logger is nil, the process default logger is used.
func NewTaskStore(pool *pgxpool.Pool, logger *slog.Logger) *TaskStore {
	if pool == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pool cannot be nil for TaskStore")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		pool:   pool,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

// List implements store.TaskStore.List.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks ORDER BY id", taskColumns)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, mapError(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return tasks, nil
}

// Create implements store.TaskStore.Create. The task's ID is assigned by
// the database sequence.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return store.NewStoreError("task", "create", "validation failed", store.ErrInvalidEntity)
	}

	query := `
		INSERT INTO tasks (heading, details, status, priority, deadline, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.pool.QueryRow(
		ctx,
		query,
		task.Heading,
		task.Details,
		task.Status,
		task.Priority,
		rawOrNil(task.Deadline),
		task.CreatedAt,
	).Scan(&task.ID)
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return mapError(err)
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	return nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = $1", taskColumns)

	task, err := scanTask(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return task, nil
}

// Update implements store.TaskStore.Update. The SET list is built from the
// fields present in the patch; updated_at is stamped in the same statement,
// and only when at least one recognized field matched.
func (s *TaskStore) Update(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.IsZero() {
		// Nothing recognized to merge; still report absence for unknown IDs.
		return s.GetByID(ctx, id)
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Heading != nil {
		sets = append(sets, "heading = "+arg(*patch.Heading))
	}
	if patch.Details != nil {
		sets = append(sets, "details = "+arg(*patch.Details))
	}
	if patch.Status != nil {
		sets = append(sets, "status = "+arg(*patch.Status))
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = "+arg(*patch.Priority))
	}
	if patch.DeadlineSet {
		sets = append(sets, "deadline = "+arg(rawOrNil(patch.Deadline)))
	}
	sets = append(sets, "updated_at = "+arg(time.Now().UTC()))

	query := fmt.Sprintf(
		"UPDATE tasks SET %s WHERE id = %s RETURNING %s",
		strings.Join(sets, ", "),
		arg(id),
		taskColumns,
	)

	task, err := scanTask(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if mapped := mapError(err); store.IsNotFoundError(mapped) {
			return nil, mapped
		}
		log.Error("failed to update task",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	log.Debug("task updated", slog.Int64("task_id", id))
	return task, nil
}

// Delete implements store.TaskStore.Delete. Absent IDs are a silent no-op.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag, err := s.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete task",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return mapError(err)
	}

	log.Debug("task delete executed",
		slog.Int64("task_id", id),
		slog.Int64("rows_affected", tag.RowsAffected()))
	return nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task      domain.Task
		deadline  []byte
		updatedAt *time.Time
	)
	err := row.Scan(
		&task.ID,
		&task.Heading,
		&task.Details,
		&task.Status,
		&task.Priority,
		&deadline,
		&task.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if deadline != nil {
		task.Deadline = deadline
	}
	task.UpdatedAt = updatedAt
	return &task, nil
}

// rawOrNil converts an absent deadline to a SQL NULL instead of an empty
// JSONB value.
func rawOrNil(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
