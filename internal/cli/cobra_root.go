package cli

import (
	"context"
	"io"

	"task-planner/internal/config"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	newApp func(*config.Config) (*App, error)
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{newApp: NewAppWithDefaultRepository}

	root.cmd = &cobra.Command{
		Use:   "taskplanner",
		Short: "A personal task planner with a web interface",
		Long: `Task planner keeps tasks with a name, a deadline day, a comment and a done
flag in a SQLite database, and serves HTML forms and a small JSON API for them.

EXAMPLES:
  taskplanner serve                        # Run the web server
  taskplanner export --output tasks.csv    # Write every task as CSV
  taskplanner export --output ./exports    # Write tasks_YYYY_MM_DD.csv into a directory
  taskplanner purge-done                   # Delete completed tasks
  taskplanner calendar 2025 10             # Print October 2025 with its tasks
  taskplanner config                       # Show the effective configuration

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Environment variables use the TP_ prefix with dots replaced by underscores:
    TP_CONFIG_FILE                         YAML config file
    TP_DATABASE_PATH                       Database file (default: ~/.task-planner/tasks.db)
    TP_AUTH_LOGIN, TP_AUTH_PASSWORD        Basic auth account (required)
    TP_SERVER_HOST, TP_SERVER_PORT         Listen address (default: 0.0.0.0:8000)
    TP_LOGGING_LEVEL, TP_LOGGING_FILE      Log level and optional rotated log file
    TP_DISPLAY_LOCALE                      en or ru (default: en)
    TP_DEBUG                               Force debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx as the parent of every command
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs replaces os.Args for the next Execute
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOutput redirects command output
func (r *RootCommand) SetOutput(out, errOut io.Writer) {
	r.cmd.SetOut(out)
	r.cmd.SetErr(errOut)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "YAML config file (overrides TP_CONFIG_FILE)")

	// Database configuration
	flags.String("db-path", "", "Database file (overrides TP_DATABASE_PATH)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TP_DATABASE_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TP_DATABASE_WRITE_TIMEOUT)")

	// Server configuration
	flags.String("host", "", "Listen host (overrides TP_SERVER_HOST)")
	flags.Int("port", 0, "Listen port (overrides TP_SERVER_PORT)")

	// Logging configuration
	flags.String("log-level", "", "Log level: debug, info, warn or error (overrides TP_LOGGING_LEVEL)")
	flags.Bool("debug", false, "Force debug logging (overrides TP_LOGGING_DEBUG)")

	// Display configuration
	flags.String("locale", "", "Language of pages and exports: en or ru (overrides TP_DISPLAY_LOCALE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Long:  "Serve the HTML pages and the JSON API until interrupted with SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(app *App) Command { return NewServeCommand(app) })
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export every task as CSV",
		Long: `Write a header and one row per task: id, name, deadline, comment, done.

Without --output the CSV goes to stdout. When --output names a directory the
file is called tasks_YYYY_MM_DD.csv after today's date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			return r.run(cmd, args, func(app *App) Command { return NewExportCommand(app, output) })
		},
	}
	exportCmd.Flags().StringP("output", "o", "", "File or directory to write to")

	purgeCmd := &cobra.Command{
		Use:   "purge-done",
		Short: "Delete all completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(app *App) Command { return NewPurgeDoneCommand(app) })
		},
	}

	calendarCmd := &cobra.Command{
		Use:   "calendar YEAR MONTH",
		Short: "Print a month with the tasks due on each day",
		Example: `  taskplanner calendar 2025 10
  taskplanner calendar 2024 2 --locale ru`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(app *App) Command { return NewCalendarCommand(app) })
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long:  "Print the configuration after defaults, the config file, TP_* variables and flags are merged. The password is masked.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(app *App) Command { return NewConfigCommand(app) })
		},
	}

	r.cmd.AddCommand(
		serveCmd,
		exportCmd,
		purgeCmd,
		calendarCmd,
		configCmd,
	)
}

// run loads configuration, opens the application and executes the command
// built by build
func (r *RootCommand) run(cmd *cobra.Command, args []string, build func(*App) Command) error {
	cfg, err := config.NewLoader().LoadWithOverrides(r.getConfigFromFlags())
	if err != nil {
		return err
	}

	app, err := r.newApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	app.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	return build(app).Execute(cmd.Context(), args)
}

// getConfigFromFlags collects the global flags the user actually set
func (r *RootCommand) getConfigFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("config") {
		v, _ := flags.GetString("config")
		overrides.ConfigFile = &v
	}
	if flags.Changed("db-path") {
		v, _ := flags.GetString("db-path")
		overrides.DBPath = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}
	if flags.Changed("host") {
		v, _ := flags.GetString("host")
		overrides.Host = &v
	}
	if flags.Changed("port") {
		v, _ := flags.GetInt("port")
		overrides.Port = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		overrides.Debug = &v
	}
	if flags.Changed("locale") {
		v, _ := flags.GetString("locale")
		overrides.Locale = &v
	}

	return overrides
}
