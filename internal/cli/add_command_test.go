package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"day-planner/internal/domain"
)

func TestAddCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a task with explicit priority and assignee", func(t *testing.T) {
		app, mockAPI, out := setupTestAppWithMockAPI(t)
		cmd := NewAddCommand(app)

		err := cmd.Execute(ctx, []string{"9:00 AM - 10:00 AM", "Standup", "high", "Meera", "2024-06-02"})
		require.NoError(t, err)

		assert.Contains(t, out.String(), `Added task-1 to "9:00 AM - 10:00 AM" on 2024-06-02`)

		stored := mockAPI.tasks["2024-06-02"]["9:00 AM - 10:00 AM"]
		require.Len(t, stored, 1)
		assert.Equal(t, "Standup", stored[0].Title)
		assert.Equal(t, domain.PriorityHigh, stored[0].Priority)
		assert.Equal(t, "Meera", stored[0].Assignee)
	})

	t.Run("defaults priority to medium and assignee to unassigned", func(t *testing.T) {
		app, mockAPI, _ := setupTestAppWithMockAPI(t)
		cmd := NewAddCommand(app)

		err := cmd.Execute(ctx, []string{"8:00 AM - 9:00 AM", "Email triage"})
		require.NoError(t, err)

		stored := mockAPI.tasks["2024-06-01"]["8:00 AM - 9:00 AM"]
		require.Len(t, stored, 1)
		assert.Equal(t, domain.PriorityMedium, stored[0].Priority)
		assert.Equal(t, domain.Unassigned, stored[0].Assignee)
	})

	t.Run("rejects missing arguments", func(t *testing.T) {
		app, _, _ := setupTestAppWithMockAPI(t)
		cmd := NewAddCommand(app)

		err := cmd.Execute(ctx, []string{"8:00 AM - 9:00 AM"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: add")
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		app, mockAPI, _ := setupTestAppWithMockAPI(t)
		cmd := NewAddCommand(app)

		err := cmd.Execute(ctx, []string{"8:00 AM - 9:00 AM", "   "})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add task")
		assert.Empty(t, mockAPI.tasks["2024-06-01"]["8:00 AM - 9:00 AM"])
	})

	t.Run("rejects an unregistered slot", func(t *testing.T) {
		app, _, _ := setupTestAppWithMockAPI(t)
		cmd := NewAddCommand(app)

		err := cmd.Execute(ctx, []string{"3:00 PM - 4:00 PM", "Late meeting"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add task")
	})
}
