package cli

import (
	"context"
)

// ProgressCommand handles the progress command
type ProgressCommand struct {
	app     *App
	handler *ErrorHandler
}

// NewProgressCommand creates a new progress command handler
func NewProgressCommand(app *App) *ProgressCommand {
	return &ProgressCommand{app: app, handler: NewErrorHandler()}
}

// Execute runs the progress command: progress [date]
func (c *ProgressCommand) Execute(ctx context.Context, args []string) error {
	date := ""
	if len(args) > 0 {
		date = args[0]
	}

	view, err := c.app.api.Day(ctx, c.app.resolveDate(date))
	if err != nil {
		return c.handler.Handle("show progress", err)
	}

	total := 0
	completed := 0
	for _, section := range view.Sections {
		total += section.Total
		completed += section.Completed
	}

	c.app.printf("%s: %d%% (%d of %d tasks complete)\n", view.Date, view.Progress, completed, total)
	return nil
}
