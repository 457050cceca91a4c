package cli

import (
	"context"

	"day-planner/internal/errors"
)

// AssignCommand handles the assign command
type AssignCommand struct {
	app     *App
	handler *ErrorHandler
}

// NewAssignCommand creates a new assign command handler
func NewAssignCommand(app *App) *AssignCommand {
	return &AssignCommand{app: app, handler: NewErrorHandler()}
}

// Execute runs the assign command: assign <slot> <task-id> <assignee>
func (c *AssignCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("args", args, "usage: assign <slot> <task-id> <assignee>")
	}

	if _, err := c.app.api.Day(ctx, c.app.resolveDate("")); err != nil {
		return c.handler.Handle("assign task", err)
	}

	task, err := c.app.api.Reassign(ctx, args[0], args[1], args[2])
	if err != nil {
		return c.handler.Handle("assign task", err)
	}

	c.app.printf("Task %s assigned to %s\n", task.ID, task.Assignee)
	return nil
}
