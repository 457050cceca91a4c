package cli

import (
	"context"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app     *App
	handler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app, handler: NewErrorHandler()}
}

// Execute runs the export command: export [date]. The iCalendar payload is
// written to stdout so it can be piped into a file.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	date := ""
	if len(args) > 0 {
		date = args[0]
	}

	payload, err := c.app.api.ExportICS(ctx, c.app.resolveDate(date))
	if err != nil {
		return c.handler.Handle("export calendar", err)
	}

	c.app.printf("%s", payload)
	return nil
}
