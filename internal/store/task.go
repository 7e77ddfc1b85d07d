// Package store defines the persistence contracts for the task tracker.
// Implementations live under internal/platform; the default backend keeps
// all state in process memory, the optional Postgres backend provides a
// shared store for multi-instance deployments.
package store

import (
	"context"
	"encoding/json"

	"github.com/tasktrack/tasktrack-api/internal/domain"
)

// TaskPatch is a partial field map applied to an existing task. Only the
// caller-settable fields appear here; id and the server-owned timestamps
// cannot be patched. A nil pointer means the key was absent from the
// request. Deadline gets an explicit presence flag because callers may
// set it to JSON null.
type TaskPatch struct {
	Heading     *string
	Details     *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	Deadline    json.RawMessage
	DeadlineSet bool
}

// IsZero reports whether the patch carries no recognized field. Stores use
// this to decide whether an update stamps the task's UpdatedAt.
func (p TaskPatch) IsZero() bool {
	return p.Heading == nil &&
		p.Details == nil &&
		p.Status == nil &&
		p.Priority == nil &&
		!p.DeadlineSet
}

// PatchFromFields builds a TaskPatch from a decoded JSON object, keeping
// only the recognized keys. Unrecognized keys are silently dropped rather
// than rejected; this mirrors the documented merge-by-presence update
// contract.
func PatchFromFields(fields map[string]json.RawMessage) (TaskPatch, error) {
	var patch TaskPatch
	for key, raw := range fields {
		switch key {
		case "heading":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return TaskPatch{}, err
			}
			patch.Heading = &v
		case "details":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return TaskPatch{}, err
			}
			patch.Details = &v
		case "status":
			var v domain.TaskStatus
			if err := json.Unmarshal(raw, &v); err != nil {
				return TaskPatch{}, err
			}
			patch.Status = &v
		case "priority":
			var v domain.TaskPriority
			if err := json.Unmarshal(raw, &v); err != nil {
				return TaskPatch{}, err
			}
			patch.Priority = &v
		case "deadline":
			patch.Deadline = raw
			patch.DeadlineSet = true
		}
	}
	return patch, nil
}

// Apply merges the patch into the task and reports whether any recognized
// field was present. It does not stamp UpdatedAt; that is the store's job,
// and only when Apply returns true.
func (p TaskPatch) Apply(task *domain.Task) bool {
	if p.IsZero() {
		return false
	}
	if p.Heading != nil {
		task.Heading = *p.Heading
	}
	if p.Details != nil {
		task.Details = *p.Details
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
	if p.DeadlineSet {
		task.Deadline = p.Deadline
	}
	return true
}

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// List returns all tasks in insertion order. An empty store yields an
	// empty slice, never an error.
	List(ctx context.Context) ([]*domain.Task, error)

	// Create saves a new task and assigns its ID. IDs are strictly
	// increasing from 1 and are never reused, even after deletes.
	// Returns ErrInvalidEntity (wrapping the domain error) if the task
	// fails validation.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update merges the patch into the task with the given ID and returns
	// the updated task. UpdatedAt is stamped only when at least one
	// recognized field was present in the patch.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error)

	// Delete removes the task with the given ID. Deleting an absent ID is
	// a silent no-op: the operation is idempotent and never reports
	// absence as an error.
	Delete(ctx context.Context, id int64) error
}
