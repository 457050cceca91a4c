package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"day-planner/internal/domain"
)

func TestListCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("empty day shows every slot", func(t *testing.T) {
		app, _, out := setupTestAppWithMockAPI(t)
		cmd := NewListCommand(app)

		err := cmd.Execute(ctx, []string{"2024-06-01"})
		require.NoError(t, err)

		assert.Contains(t, out.String(), "2024-06-01: 0% complete")
		assert.Contains(t, out.String(), "8:00 AM - 9:00 AM (0/0)")
		assert.Contains(t, out.String(), "2:00 PM - 3:00 PM (0/0)")
		assert.Contains(t, out.String(), "(no tasks)")
	})

	t.Run("tasks appear under their slot with checkbox and metadata", func(t *testing.T) {
		app, mockAPI, out := setupTestAppWithMockAPI(t)
		cmd := NewListCommand(app)

		open, err := mockAPI.AddTask(ctx, "8:00 AM - 9:00 AM", "Email triage", domain.PriorityHigh, "Divya", "2024-06-01")
		require.NoError(t, err)
		done, err := mockAPI.AddTask(ctx, "9:00 AM - 10:00 AM", "Standup", domain.PriorityMedium, domain.Unassigned, "2024-06-01")
		require.NoError(t, err)

		mockAPI.selected = "2024-06-01"
		_, err = mockAPI.ToggleCompletion(ctx, "9:00 AM - 10:00 AM", done.ID)
		require.NoError(t, err)

		err = cmd.Execute(ctx, []string{"2024-06-01"})
		require.NoError(t, err)

		listing := out.String()
		assert.Contains(t, listing, "2024-06-01: 50% complete")
		assert.Contains(t, listing, "8:00 AM - 9:00 AM (0/1)")
		assert.Contains(t, listing, "[ ] "+open.ID+"  Email triage (high, Divya)")
		assert.Contains(t, listing, "9:00 AM - 10:00 AM (1/1)")
		assert.Contains(t, listing, "[x] "+done.ID+"  Standup (medium)")
	})

	t.Run("no date argument uses the configured default", func(t *testing.T) {
		app, mockAPI, out := setupTestAppWithMockAPI(t)
		cmd := NewListCommand(app)

		err := cmd.Execute(ctx, []string{})
		require.NoError(t, err)

		assert.Equal(t, "2024-06-01", mockAPI.SelectedDate())
		assert.Contains(t, out.String(), "2024-06-01")
	})

	t.Run("invalid date returns a friendly error", func(t *testing.T) {
		app, _, _ := setupTestAppWithMockAPI(t)
		cmd := NewListCommand(app)

		err := cmd.Execute(ctx, []string{"June 1st"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list tasks")
	})
}
