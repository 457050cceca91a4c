package cli

import (
	"context"
)

// SlotsCommand handles the slots command
type SlotsCommand struct {
	app *App
}

// NewSlotsCommand creates a new slots command handler
func NewSlotsCommand(app *App) *SlotsCommand {
	return &SlotsCommand{app: app}
}

// Execute runs the slots command, printing the registered time slots in
// chronological order.
func (c *SlotsCommand) Execute(ctx context.Context, args []string) error {
	for _, slot := range c.app.api.Slots() {
		c.app.printf("%s\n", slot)
	}
	return nil
}
