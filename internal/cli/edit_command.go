package cli

import (
	"context"
	"strings"

	"day-planner/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app     *App
	handler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app, handler: NewErrorHandler()}
}

// Execute runs the edit command: edit <slot> <task-id> <new title...>
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("args", args, "usage: edit <slot> <task-id> <new title>")
	}

	if _, err := c.app.api.Day(ctx, c.app.resolveDate("")); err != nil {
		return c.handler.Handle("edit task", err)
	}

	title := strings.Join(args[2:], " ")
	task, err := c.app.api.EditTitle(ctx, args[0], args[1], title)
	if err != nil {
		return c.handler.Handle("edit task", err)
	}

	c.app.printf("Task %s renamed to %q\n", task.ID, task.Title)
	return nil
}
