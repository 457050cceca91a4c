package cli

import (
	"context"

	"day-planner/internal/domain"
	"day-planner/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app     *App
	handler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, handler: NewErrorHandler()}
}

// Execute runs the add command: add <slot> <title> [priority] [assignee] [date]
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("args", args, "usage: add <slot> <title> [priority] [assignee] [date]")
	}

	slot := args[0]
	title := args[1]
	priority := domain.PriorityMedium
	assignee := domain.Unassigned
	date := ""

	if len(args) > 2 && args[2] != "" {
		priority = domain.Priority(args[2])
	}
	if len(args) > 3 && args[3] != "" {
		assignee = args[3]
	}
	if len(args) > 4 {
		date = args[4]
	}
	date = c.app.resolveDate(date)

	// Selecting the date first keeps the new task visible in memory.
	if _, err := c.app.api.Day(ctx, date); err != nil {
		return c.handler.Handle("add task", err)
	}

	task, err := c.app.api.AddTask(ctx, slot, title, priority, assignee, date)
	if err != nil {
		return c.handler.Handle("add task", err)
	}

	c.app.printf("Added %s to %q on %s\n", task.ID, task.TimeSlot, task.Date)
	return nil
}
