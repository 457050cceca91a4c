package cli

import (
	"context"

	"day-planner/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app     *App
	handler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, handler: NewErrorHandler()}
}

// Execute runs the delete command: delete <slot> <task-id> [date]
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("args", args, "usage: delete <slot> <task-id> [date]")
	}

	date := ""
	if len(args) > 2 {
		date = args[2]
	}
	if _, err := c.app.api.Day(ctx, c.app.resolveDate(date)); err != nil {
		return c.handler.Handle("delete task", err)
	}

	if err := c.app.api.DeleteTask(ctx, args[0], args[1]); err != nil {
		return c.handler.Handle("delete task", err)
	}

	c.app.printf("Deleted task %s\n", args[1])
	return nil
}
