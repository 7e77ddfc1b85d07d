// Package memory implements the store interfaces with process-local state.
// This is the default backend: every server process owns an independent
// copy of the data, and nothing survives a restart. Deployments that need
// shared state across instances must select the Postgres backend instead.
package memory

import (
	"context"
	"sync"

	"github.com/tasktrack/tasktrack-api/internal/domain"
	"github.com/tasktrack/tasktrack-api/internal/store"
)

// TaskStore is an in-memory implementation of store.TaskStore. Tasks are
// kept in insertion order; the ID counter is owned by the store and only
// ever increments, so IDs are never reused after a delete.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []*domain.Task
	byID   map[int64]*domain.Task
	nextID int64
}

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		byID:   make(map[int64]*domain.Task),
		nextID: 1,
	}
}

// List returns all tasks in insertion order. The returned slice holds
// copies so callers cannot mutate stored state without going through
// Update.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, copyTask(task))
	}
	return tasks, nil
}

// Create validates the task, assigns the next ID, stamps nothing further
// (CreatedAt is set by the domain constructor), and appends it.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return store.NewStoreError("task", "create", "validation failed", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextID
	s.nextID++

	stored := copyTask(task)
	s.tasks = append(s.tasks, stored)
	s.byID[stored.ID] = stored
	return nil
}

// GetByID retrieves a task by its ID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.byID[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return copyTask(task), nil
}

// Update merges the patch into the stored task. UpdatedAt is stamped only
// when the patch carried at least one recognized field; a patch of purely
// unknown keys leaves the record untouched.
func (s *TaskStore) Update(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.byID[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	if patch.Apply(task) {
		task.Touch()
	}
	return copyTask(task), nil
}

// Delete removes the task with the given ID. Absent IDs are a silent
// no-op; the freed ID is never handed out again.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return nil
	}

	delete(s.byID, id)
	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// copyTask returns a shallow copy with its own UpdatedAt pointer, so a
// handed-out task and the stored one never alias mutable state.
func copyTask(task *domain.Task) *domain.Task {
	c := *task
	if task.UpdatedAt != nil {
		updatedAt := *task.UpdatedAt
		c.UpdatedAt = &updatedAt
	}
	return &c
}
