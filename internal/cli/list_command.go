package cli

import (
	"context"
	"strings"

	"day-planner/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app     *App
	handler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, handler: NewErrorHandler()}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	date := ""
	if len(args) > 0 {
		date = args[0]
	}
	date = c.app.resolveDate(date)

	view, err := c.app.api.Day(ctx, date)
	if err != nil {
		return c.handler.Handle("list tasks", err)
	}

	c.app.printf("%s: %d%% complete\n", view.Date, view.Progress)
	for _, section := range view.Sections {
		c.app.printf("\n%s (%d/%d)\n", section.Slot, section.Completed, section.Total)
		if len(section.Tasks) == 0 {
			c.app.printf("  (no tasks)\n")
			continue
		}
		for _, task := range section.Tasks {
			c.app.printf("  %s %s  %s%s\n", checkbox(task.Task), task.ID, task.Title, taskMeta(task.Task))
		}
	}
	return nil
}

func checkbox(task domain.Task) string {
	if task.Completed {
		return "[x]"
	}
	return "[ ]"
}

func taskMeta(task domain.Task) string {
	parts := []string{string(task.Priority)}
	if task.Assignee != domain.Unassigned {
		parts = append(parts, task.Assignee)
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
