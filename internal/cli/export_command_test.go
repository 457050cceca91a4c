package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the calendar payload to the output", func(t *testing.T) {
		app, mockAPI, out := setupTestAppWithMockAPI(t)
		cmd := NewExportCommand(app)

		err := cmd.Execute(ctx, []string{"2024-06-01"})
		require.NoError(t, err)

		assert.Equal(t, "2024-06-01", mockAPI.SelectedDate())
		assert.Contains(t, out.String(), "BEGIN:VCALENDAR")
		assert.Contains(t, out.String(), "END:VCALENDAR")
	})

	t.Run("invalid date returns an error", func(t *testing.T) {
		app, _, _ := setupTestAppWithMockAPI(t)
		cmd := NewExportCommand(app)

		err := cmd.Execute(ctx, []string{"06/01/2024"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to export calendar")
	})
}
