package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		task, err := NewTask("Buy milk", "", nil)
		require.NoError(t, err)

		assert.Equal(t, int64(0), task.ID, "ID is assigned by the store, not the constructor")
		assert.Equal(t, "Buy milk", task.Heading)
		assert.Equal(t, "", task.Details)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.Equal(t, TaskPriorityMedium, task.Priority)
		assert.Nil(t, task.Deadline)
		assert.False(t, task.CreatedAt.IsZero())
		assert.Nil(t, task.UpdatedAt)
	})

	t.Run("requires heading", func(t *testing.T) {
		_, err := NewTask("", "details", nil)
		assert.ErrorIs(t, err, ErrEmptyTaskHeading)
	})

	t.Run("keeps deadline opaque", func(t *testing.T) {
		deadline := json.RawMessage(`"2026-09-15"`)
		task, err := NewTask("Ship release", "", deadline)
		require.NoError(t, err)
		assert.Equal(t, deadline, task.Deadline)
	})
}

func TestTaskTouch(t *testing.T) {
	task, err := NewTask("Buy milk", "", nil)
	require.NoError(t, err)
	require.Nil(t, task.UpdatedAt)

	task.Touch()
	require.NotNil(t, task.UpdatedAt)
	assert.False(t, task.UpdatedAt.Before(task.CreatedAt))
}

func TestTaskJSONShape(t *testing.T) {
	task, err := NewTask("Buy milk", "", nil)
	require.NoError(t, err)
	task.ID = 1

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	// updated_at is absent until the first successful update,
	// deadline is always present (null when unset).
	assert.NotContains(t, m, "updated_at")
	assert.Contains(t, m, "deadline")
	assert.Nil(t, m["deadline"])
	assert.Equal(t, "pending", m["status"])
	assert.Equal(t, "medium", m["priority"])
}

func TestNewFeedback(t *testing.T) {
	t.Run("defaults rating when absent", func(t *testing.T) {
		fb := NewFeedback("", nil)
		assert.Equal(t, DefaultFeedbackRating, fb.Rating)
		assert.Equal(t, "", fb.FeedbackText)
		assert.False(t, fb.Timestamp.IsZero())
	})

	t.Run("keeps supplied rating", func(t *testing.T) {
		rating := 2
		fb := NewFeedback("great tool", &rating)
		assert.Equal(t, 2, fb.Rating)
		assert.Equal(t, "great tool", fb.FeedbackText)
	})

	t.Run("keeps an explicit zero rating", func(t *testing.T) {
		rating := 0
		fb := NewFeedback("unusable", &rating)
		assert.Equal(t, 0, fb.Rating)
	})
}
