// Package domain defines the core business entities and errors.
package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

// Well-known task status values. The status field is a free-form token:
// callers may set any value, these constants only name the defaults the
// API documents.
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority represents the urgency of a task. Like TaskStatus it is a
// free-form token with a documented default.
type TaskPriority string

// Well-known task priority values.
const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task-specific validation errors
var (
	// ErrEmptyTaskHeading is returned when a task's heading is empty.
	ErrEmptyTaskHeading = errors.New("task heading cannot be empty")
)

// Task represents a single to-do item. The ID is assigned by the store,
// not by the constructor; a zero ID marks a task that has not been
// persisted yet. Deadline is an opaque JSON value the service stores and
// echoes back without interpretation.
type Task struct {
	ID        int64           `json:"id"`
	Heading   string          `json:"heading"`
	Details   string          `json:"details"`
	Status    TaskStatus      `json:"status"`
	Priority  TaskPriority    `json:"priority"`
	Deadline  json.RawMessage `json:"deadline"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// NewTask creates a new Task with the given heading, details, and deadline,
// fills the documented defaults for status and priority, and stamps the
// creation time. Returns an error if validation fails.
func NewTask(heading, details string, deadline json.RawMessage) (*Task, error) {
	task := &Task{
		Heading:   heading,
		Details:   details,
		Status:    TaskStatusPending,
		Priority:  TaskPriorityMedium,
		Deadline:  deadline,
		CreatedAt: time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Heading == "" {
		return ErrEmptyTaskHeading
	}
	return nil
}

// Touch stamps the UpdatedAt timestamp. Called by stores after a
// successful field merge; tasks that were never updated keep a nil
// UpdatedAt and omit the field on the wire.
func (t *Task) Touch() {
	now := time.Now().UTC()
	t.UpdatedAt = &now
}
