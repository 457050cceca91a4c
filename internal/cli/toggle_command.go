package cli

import (
	"context"

	"day-planner/internal/errors"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app     *App
	handler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app, handler: NewErrorHandler()}
}

// Execute runs the toggle command: toggle <slot> <task-id> [date]
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("args", args, "usage: toggle <slot> <task-id> [date]")
	}

	date := ""
	if len(args) > 2 {
		date = args[2]
	}
	if _, err := c.app.api.Day(ctx, c.app.resolveDate(date)); err != nil {
		return c.handler.Handle("toggle task", err)
	}

	task, err := c.app.api.ToggleCompletion(ctx, args[0], args[1])
	if err != nil {
		return c.handler.Handle("toggle task", err)
	}

	state := "open"
	if task.Completed {
		state = "done"
	}
	c.app.printf("Task %s is now %s\n", task.ID, state)
	return nil
}
