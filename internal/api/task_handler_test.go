package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack/tasktrack-api/internal/domain"
	"github.com/tasktrack/tasktrack-api/internal/service"
	"github.com/tasktrack/tasktrack-api/internal/store"
)

// mockTaskService is a function-backed implementation of service.TaskService.
type mockTaskService struct {
	listFn   func(ctx context.Context) ([]*domain.Task, error)
	createFn func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error)
	updateFn func(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return m.listFn(ctx)
}

func (m *mockTaskService) CreateTask(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error) {
	return m.createFn(ctx, params)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// newTestRouter mounts the handler on the same route table the server uses.
func newTestRouter(svc service.TaskService) http.Handler {
	h := NewTaskHandler(svc, slog.Default())
	r := chi.NewRouter()
	r.Get("/api/tasks", h.ListTasks)
	r.Post("/api/tasks", h.CreateTask)
	r.Put("/api/tasks/{id}", h.UpdateTask)
	r.Delete("/api/tasks/{id}", h.DeleteTask)
	return r
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestListTasks(t *testing.T) {
	t.Run("returns tasks with count", func(t *testing.T) {
		router := newTestRouter(&mockTaskService{
			listFn: func(ctx context.Context) ([]*domain.Task, error) {
				return []*domain.Task{
					{ID: 1, Heading: "first", Status: domain.TaskStatusPending},
					{ID: 2, Heading: "second", Status: domain.TaskStatusDone},
				}, nil
			},
		})

		rec := doRequest(t, router, http.MethodGet, "/api/tasks", "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, float64(2), body["count"])
		assert.Len(t, body["tasks"], 2)
	})

	t.Run("empty store yields empty list, not null", func(t *testing.T) {
		router := newTestRouter(&mockTaskService{
			listFn: func(ctx context.Context) ([]*domain.Task, error) {
				return []*domain.Task{}, nil
			},
		})

		rec := doRequest(t, router, http.MethodGet, "/api/tasks", "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, float64(0), body["count"])
		tasks, ok := body["tasks"].([]any)
		require.True(t, ok, "tasks must serialize as an array")
		assert.Empty(t, tasks)
	})

	t.Run("service failure yields 500 envelope", func(t *testing.T) {
		router := newTestRouter(&mockTaskService{
			listFn: func(ctx context.Context) ([]*domain.Task, error) {
				return nil, errors.New("store exploded")
			},
		})

		rec := doRequest(t, router, http.MethodGet, "/api/tasks", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "error", body["status"])
		assert.NotEmpty(t, body["error"])
	})
}

func TestCreateTask(t *testing.T) {
	t.Run("201 with task and message", func(t *testing.T) {
		router := newTestRouter(&mockTaskService{
			createFn: func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error) {
				task, err := domain.NewTask(params.Heading, params.Details, params.Deadline)
				require.NoError(t, err)
				task.ID = 1
				return task, nil
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/api/tasks", `{"heading":"Buy milk"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "success", body["status"])
		assert.NotEmpty(t, body["message"])

		task := body["task"].(map[string]any)
		assert.Equal(t, float64(1), task["id"])
		assert.Equal(t, "Buy milk", task["heading"])
		assert.Equal(t, "", task["details"])
		assert.Equal(t, "pending", task["status"])
		assert.Equal(t, "medium", task["priority"])
		assert.Nil(t, task["deadline"])
		assert.NotContains(t, task, "updated_at")
	})

	t.Run("missing heading yields 400 without calling the service", func(t *testing.T) {
		called := false
		router := newTestRouter(&mockTaskService{
			createFn: func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error) {
				called = true
				return nil, nil
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/api/tasks", `{"details":"no heading"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, called)

		body := decodeBody(t, rec)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "Heading is required", body["error"])
	})

	t.Run("malformed body yields 500", func(t *testing.T) {
		router := newTestRouter(&mockTaskService{})

		rec := doRequest(t, router, http.MethodPost, "/api/tasks", `{"heading": `)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "error", body["status"])
	})

	t.Run("caller priority is forwarded", func(t *testing.T) {
		var got service.CreateTaskParams
		router := newTestRouter(&mockTaskService{
			createFn: func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error) {
				got = params
				return &domain.Task{ID: 1, Heading: params.Heading, Priority: params.Priority}, nil
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/api/tasks",
			`{"heading":"Urgent","priority":"high","deadline":"2026-09-15"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, domain.TaskPriority("high"), got.Priority)
		assert.JSONEq(t, `"2026-09-15"`, string(got.Deadline))
	})
}

func TestUpdateTask(t *testing.T) {
	t.Run("200 with updated task", func(t *testing.T) {
		router := newTestRouter(&mockTaskService{
			updateFn: func(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error) {
				require.Equal(t, int64(1), id)
				require.NotNil(t, patch.Status)
				task := &domain.Task{ID: 1, Heading: "Buy milk", Status: *patch.Status}
				task.Touch()
				return task, nil
			},
		})

		rec := doRequest(t, router, http.MethodPut, "/api/tasks/1", `{"status":"done"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "success", body["status"])
		task := body["task"].(map[string]any)
		assert.Equal(t, "done", task["status"])
		assert.Contains(t, task, "updated_at")
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		router := newTestRouter(&mockTaskService{
			updateFn: func(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error) {
				return nil, service.ErrTaskNotFound
			},
		})

		rec := doRequest(t, router, http.MethodPut, "/api/tasks/99", `{"status":"done"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "Task not found", body["error"])
	})

	t.Run("unknown fields are dropped before the service sees them", func(t *testing.T) {
		var got store.TaskPatch
		router := newTestRouter(&mockTaskService{
			updateFn: func(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error) {
				got = patch
				return &domain.Task{ID: id, Heading: "unchanged"}, nil
			},
		})

		rec := doRequest(t, router, http.MethodPut, "/api/tasks/1", `{"color":"blue","owner":"bob"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, got.IsZero())
	})

	t.Run("non-integer id yields 400", func(t *testing.T) {
		router := newTestRouter(&mockTaskService{})

		rec := doRequest(t, router, http.MethodPut, "/api/tasks/abc", `{"status":"done"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Invalid task ID", body["error"])
	})

	t.Run("malformed body yields 500", func(t *testing.T) {
		router := newTestRouter(&mockTaskService{})

		rec := doRequest(t, router, http.MethodPut, "/api/tasks/1", `not json`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("200 with message", func(t *testing.T) {
		router := newTestRouter(&mockTaskService{
			deleteFn: func(ctx context.Context, id int64) error {
				assert.Equal(t, int64(1), id)
				return nil
			},
		})

		rec := doRequest(t, router, http.MethodDelete, "/api/tasks/1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "success", body["status"])
		assert.NotEmpty(t, body["message"])
	})

	t.Run("absent id still succeeds", func(t *testing.T) {
		// The store treats absent IDs as a no-op, so the service returns nil.
		router := newTestRouter(&mockTaskService{
			deleteFn: func(ctx context.Context, id int64) error { return nil },
		})

		rec := doRequest(t, router, http.MethodDelete, "/api/tasks/12345", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-integer id yields 400", func(t *testing.T) {
		router := newTestRouter(&mockTaskService{})
		rec := doRequest(t, router, http.MethodDelete, "/api/tasks/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
