package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack/tasktrack-api/internal/domain"
)

func TestPatchFromFields(t *testing.T) {
	t.Run("keeps recognized keys", func(t *testing.T) {
		fields := map[string]json.RawMessage{
			"heading":  json.RawMessage(`"New heading"`),
			"status":   json.RawMessage(`"done"`),
			"deadline": json.RawMessage(`"2026-09-15"`),
		}
		patch, err := PatchFromFields(fields)
		require.NoError(t, err)

		require.NotNil(t, patch.Heading)
		assert.Equal(t, "New heading", *patch.Heading)
		require.NotNil(t, patch.Status)
		assert.Equal(t, domain.TaskStatus("done"), *patch.Status)
		assert.True(t, patch.DeadlineSet)
		assert.Nil(t, patch.Details)
		assert.Nil(t, patch.Priority)
	})

	t.Run("drops unknown keys silently", func(t *testing.T) {
		fields := map[string]json.RawMessage{
			"color":      json.RawMessage(`"blue"`),
			"id":         json.RawMessage(`99`),
			"created_at": json.RawMessage(`"2020-01-01T00:00:00Z"`),
		}
		patch, err := PatchFromFields(fields)
		require.NoError(t, err)
		assert.True(t, patch.IsZero())
	})

	t.Run("null deadline counts as present", func(t *testing.T) {
		patch, err := PatchFromFields(map[string]json.RawMessage{
			"deadline": json.RawMessage(`null`),
		})
		require.NoError(t, err)
		assert.False(t, patch.IsZero())
		assert.True(t, patch.DeadlineSet)
	})

	t.Run("rejects mistyped field", func(t *testing.T) {
		_, err := PatchFromFields(map[string]json.RawMessage{
			"heading": json.RawMessage(`42`),
		})
		assert.Error(t, err)
	})
}

func TestPatchApply(t *testing.T) {
	newTask := func(t *testing.T) *domain.Task {
		task, err := domain.NewTask("Original", "original details", json.RawMessage(`"2026-01-01"`))
		require.NoError(t, err)
		return task
	}

	t.Run("merges present fields only", func(t *testing.T) {
		task := newTask(t)
		status := domain.TaskStatus("done")
		changed := TaskPatch{Status: &status}.Apply(task)

		assert.True(t, changed)
		assert.Equal(t, domain.TaskStatus("done"), task.Status)
		assert.Equal(t, "Original", task.Heading)
		assert.Equal(t, "original details", task.Details)
	})

	t.Run("empty patch changes nothing", func(t *testing.T) {
		task := newTask(t)
		changed := TaskPatch{}.Apply(task)

		assert.False(t, changed)
		assert.Equal(t, "Original", task.Heading)
	})

	t.Run("clears deadline with explicit null", func(t *testing.T) {
		task := newTask(t)
		changed := TaskPatch{Deadline: json.RawMessage(`null`), DeadlineSet: true}.Apply(task)

		assert.True(t, changed)
		assert.Equal(t, json.RawMessage(`null`), task.Deadline)
	})
}
