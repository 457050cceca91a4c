package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"day-planner/internal/domain"
)

func TestAssignCommand_Execute(t *testing.T) {
	ctx := context.Background()
	slot := "9:00 AM - 10:00 AM"

	t.Run("assigns a task to a roster member", func(t *testing.T) {
		app, mockAPI, out := setupTestAppWithMockAPI(t)
		cmd := NewAssignCommand(app)

		task, err := mockAPI.AddTask(ctx, slot, "Standup", domain.PriorityMedium, domain.Unassigned, "2024-06-01")
		require.NoError(t, err)

		err = cmd.Execute(ctx, []string{slot, task.ID, "Kavya"})
		require.NoError(t, err)

		assert.Contains(t, out.String(), "Task "+task.ID+" assigned to Kavya")
		assert.Equal(t, "Kavya", mockAPI.tasks["2024-06-01"][slot][0].Assignee)
	})

	t.Run("missing task returns an error", func(t *testing.T) {
		app, _, _ := setupTestAppWithMockAPI(t)
		cmd := NewAssignCommand(app)

		err := cmd.Execute(ctx, []string{slot, "task-99", "Kavya"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to assign task")
	})

	t.Run("missing arguments return usage", func(t *testing.T) {
		app, _, _ := setupTestAppWithMockAPI(t)
		cmd := NewAssignCommand(app)

		err := cmd.Execute(ctx, []string{slot, "task-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: assign")
	})
}
