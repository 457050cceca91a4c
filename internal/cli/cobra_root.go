package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"day-planner/internal/api"
	"day-planner/internal/auth"
	"day-planner/internal/config"
	"day-planner/internal/domain"
	"day-planner/internal/planner"
	"day-planner/internal/repository/sqlite"
	"day-planner/internal/timeslot"
	"day-planner/internal/web"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	config  *config.Config
	gateway sqlite.Gateway
}

// NewRootCommand creates the root cobra command with global flags. The
// persistence gateway and planner are built after flag parsing so that
// database overrides take effect.
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "planner",
		Short: "A command-line day planner with hourly time slots",
		Long: `Planner is a day planning application that organizes tasks into fixed
hourly time slots and persists them across sessions.

EXAMPLES:
  planner list                                  # Show today's slots and tasks
  planner list 2024-06-01                       # Show a specific date
  planner add "8:00 AM - 9:00 AM" "Email triage"
  planner add "9:00 AM - 10:00 AM" "Standup" high Divya
  planner toggle "9:00 AM - 10:00 AM" <task-id> # Flip completion
  planner edit "9:00 AM - 10:00 AM" <task-id> "New title"
  planner assign "9:00 AM - 10:00 AM" <task-id> Meera
  planner delete "9:00 AM - 10:00 AM" <task-id>
  planner progress                              # Completion percentage
  planner slots                                 # List the time slots
  planner export > today.ics                    # iCalendar export
  planner serve                                 # Start the web server

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults
  The config file is read from PLANNER_CONFIG or ~/.planner/config.yaml.

  PLANNER_DB_DIR                 Database directory (default: ~/.planner)
  PLANNER_DB_FILENAME            Database filename (default: planner.db)
  PLANNER_DB_QUERY_TIMEOUT       Query timeout (default: 10s)
  PLANNER_DB_WRITE_TIMEOUT       Write timeout (default: 5s)
  PLANNER_TIMEZONE               Calendar timezone (default: Local)
  PLANNER_DEFAULT_DATE           Date used when none is given (default: today)
  PLANNER_VALIDATION_TITLE_MIN   Min title length (default: 1)
  PLANNER_VALIDATION_TITLE_MAX   Max title length (default: 255)
  PLANNER_WEB_HOST               Web server host (default: 127.0.0.1)
  PLANNER_WEB_PORT               Web server port (default: 8080)
  PLANNER_APP_TIMEOUT            Application timeout (default: 60s)
  PLANNER_APP_VERBOSE            Enable verbose output (default: false)
  PLANNER_DEBUG                  Enable debug logging (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			return root.buildApp()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Close releases the persistence gateway, if one was built.
func (r *RootCommand) Close() error {
	if r.gateway == nil {
		return nil
	}
	return r.gateway.Close()
}

// buildApp assembles the planner behind the CLI from the final
// configuration: gateway, store, facade API, and auth provider.
func (r *RootCommand) buildApp() error {
	gateway, err := config.CreateGateway(r.config)
	if err != nil {
		return err
	}
	r.gateway = gateway

	location, err := r.config.GetLocation()
	if err != nil {
		return err
	}

	registry := timeslot.Default()
	roster := domain.DefaultRoster
	store := planner.NewStoreWithLimits(gateway, registry, roster,
		r.config.Validation.TitleMinLength, r.config.Validation.TitleMaxLength)
	apiInstance := api.New(store, gateway, roster, location)
	authProvider := auth.NewService(gateway, r.config.Auth.SessionTTL, r.config.Auth.PasswordMinLength)

	r.app = NewApp(apiInstance, authProvider, r.config)
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides PLANNER_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides PLANNER_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides PLANNER_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides PLANNER_DB_WRITE_TIMEOUT)")

	flags.String("timezone", "", "Calendar timezone (overrides PLANNER_TIMEZONE)")
	flags.String("date", "", "Date to operate on (overrides PLANNER_DEFAULT_DATE)")

	flags.Int("title-min-length", 0, "Minimum title length (overrides PLANNER_VALIDATION_TITLE_MIN)")
	flags.Int("title-max-length", 0, "Maximum title length (overrides PLANNER_VALIDATION_TITLE_MAX)")

	flags.String("host", "", "Web server host (overrides PLANNER_WEB_HOST)")
	flags.Int("port", 0, "Web server port (overrides PLANNER_WEB_PORT)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides PLANNER_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides PLANNER_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	registryCommands := []struct {
		use   string
		short string
		name  string
		args  cobra.PositionalArgs
	}{
		{use: "list [date]", short: "Show a day's slots and tasks", name: "list", args: cobra.MaximumNArgs(1)},
		{use: "add <slot> <title> [priority] [assignee] [date]", short: "Add a task to a time slot", name: "add", args: cobra.RangeArgs(2, 5)},
		{use: "toggle <slot> <task-id> [date]", short: "Flip a task's completion state", name: "toggle", args: cobra.RangeArgs(2, 3)},
		{use: "edit <slot> <task-id> <title>", short: "Change a task's title", name: "edit", args: cobra.MinimumNArgs(3)},
		{use: "assign <slot> <task-id> <assignee>", short: "Assign a task to a roster member", name: "assign", args: cobra.ExactArgs(3)},
		{use: "delete <slot> <task-id> [date]", short: "Delete a task", name: "delete", args: cobra.RangeArgs(2, 3)},
		{use: "progress [date]", short: "Show completion percentage for a day", name: "progress", args: cobra.MaximumNArgs(1)},
		{use: "slots", short: "List the registered time slots", name: "slots", args: cobra.NoArgs},
		{use: "export [date]", short: "Export a day as iCalendar to stdout", name: "export", args: cobra.MaximumNArgs(1)},
	}

	for _, rc := range registryCommands {
		name := rc.name
		r.cmd.AddCommand(&cobra.Command{
			Use:   rc.use,
			Short: rc.short,
			Args:  rc.args,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.app.commandContext()
				defer cancel()
				return r.app.registry.Execute(ctx, name, args)
			},
		})
	}

	r.cmd.AddCommand(r.newServeCommand())
	r.cmd.AddCommand(r.newUserCommand())
}

// newServeCommand builds the command that runs the web server.
func (r *RootCommand) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the planner web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := web.NewServer(r.app.api, r.app.auth, r.config.Application.Timeout)
			addr := r.config.GetListenAddr()
			fmt.Printf("Listening on %s\n", addr)
			return server.Run(addr)
		},
	}
}

// newUserCommand builds the user management command group.
func (r *RootCommand) newUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage planner accounts",
	}

	userCmd.AddCommand(&cobra.Command{
		Use:   "add <email> <password> [display name]",
		Short: "Register a new planner account",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.app.commandContext()
			defer cancel()

			displayName := ""
			if len(args) > 2 {
				displayName = args[2]
			}

			identity, err := r.app.auth.SignUp(ctx, args[0], args[1], displayName)
			if err != nil {
				return NewErrorHandler().Handle("register user", err)
			}
			r.app.printf("Registered %s (%s)\n", identity.Email, identity.UserID)
			return nil
		},
	})

	return userCmd
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	if timezone, _ := flags.GetString("timezone"); timezone != "" {
		r.config.Planner.Timezone = timezone
	}
	if date, _ := flags.GetString("date"); date != "" {
		r.config.Planner.DefaultDate = date
	}

	if titleMin, _ := flags.GetInt("title-min-length"); titleMin > 0 {
		r.config.Validation.TitleMinLength = titleMin
	}
	if titleMax, _ := flags.GetInt("title-max-length"); titleMax > 0 {
		r.config.Validation.TitleMaxLength = titleMax
	}

	if host, _ := flags.GetString("host"); host != "" {
		r.config.Web.Host = host
	}
	if port, _ := flags.GetInt("port"); port > 0 {
		r.config.Web.Port = port
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}
