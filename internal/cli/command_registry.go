package cli

import (
	"context"

	"day-planner/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("list", NewListCommand(app))
	registry.Register("add", NewAddCommand(app))
	registry.Register("toggle", NewToggleCommand(app))
	registry.Register("edit", NewEditCommand(app))
	registry.Register("assign", NewAssignCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("progress", NewProgressCommand(app))
	registry.Register("slots", NewSlotsCommand(app))
	registry.Register("export", NewExportCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return "usage: planner list [date] | add <slot> <title> [priority] [assignee] [date] | toggle <slot> <task-id> | edit <slot> <task-id> <title> | assign <slot> <task-id> <assignee> | delete <slot> <task-id> | progress [date] | slots | export [date]"
}
