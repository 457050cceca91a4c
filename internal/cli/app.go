package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"day-planner/internal/api"
	"day-planner/internal/auth"
	"day-planner/internal/config"
	"day-planner/internal/domain"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api      api.API
	auth     auth.Provider
	config   *config.Config
	out      io.Writer
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, authProvider auth.Provider, cfg *config.Config) *App {
	app := &App{
		api:    apiInstance,
		auth:   authProvider,
		config: cfg,
		out:    os.Stdout,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the CLI application with the given arguments
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	ctx, cancel := a.commandContext()
	defer cancel()

	return a.registry.Execute(ctx, commandName, commandArgs)
}

func (a *App) commandContext() (context.Context, context.CancelFunc) {
	timeout := 60 * time.Second
	if a.config != nil {
		timeout = a.config.Application.Timeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// resolveDate returns the date to operate on: an explicit argument wins,
// then the configured default date, then today in the configured timezone.
func (a *App) resolveDate(arg string) string {
	if arg != "" {
		return arg
	}
	if a.config != nil && a.config.Planner.DefaultDate != "" {
		return a.config.Planner.DefaultDate
	}

	loc := time.Local
	if a.config != nil {
		if l, err := a.config.GetLocation(); err == nil {
			loc = l
		}
	}
	return timeNow().In(loc).Format(domain.DateLayout)
}
