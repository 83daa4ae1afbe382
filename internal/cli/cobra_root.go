package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gookit/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"todo-list/internal/config"
	"todo-list/internal/logging"
)

const serveCommandName = "serve"

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	newApp AppFactory
	config *config.Config
	app    *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(newApp AppFactory) *RootCommand {
	root := &RootCommand{
		newApp: newApp,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A small to-do list served over HTTP",
		Long: `todo keeps a list of short to-do items in SQLite and serves it as a web page.

EXAMPLES:
  todo serve                               # Serve the list on http://127.0.0.1:5000
  todo add "Buy milk"                      # Add an item
  todo list                                # List items, newest first
  todo toggle 3                            # Mark item 3 done (or open again)
  todo delete 3                            # Delete item 3
  todo migrate                             # Create or upgrade the database schema

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

  Database Configuration:
    TODO_DB_DIR                            Database directory (default: ~/.todo)
    TODO_DB_FILENAME                       Database filename, ":memory:" for a throwaway store (default: todos.db)
    TODO_DB_QUERY_TIMEOUT                  Query timeout (default: 10s)
    TODO_DB_WRITE_TIMEOUT                  Write timeout (default: 5s)

  Server Configuration:
    TODO_HOST                              Listen host (default: 127.0.0.1)
    TODO_PORT                              Listen port (default: 5000)
    TODO_SERVER_READ_TIMEOUT               HTTP read timeout (default: 15s)
    TODO_SERVER_WRITE_TIMEOUT              HTTP write timeout (default: 15s)
    TODO_SERVER_SHUTDOWN_TIMEOUT           Graceful shutdown timeout (default: 10s)
    TODO_DEBUG                             Debug mode with verbose logging (default: false)

  Display Configuration:
    TODO_TIME_DISPLAY_FORMAT               Go time layout for created_at (default: 2006-01-02 15:04)

  Logging Configuration:
    TODO_LOG_LEVEL                         DEBUG, INFO, WARN or ERROR (default: INFO)

  Application Configuration:
    TODO_APP_TIMEOUT                       Timeout for one CLI command (default: 30s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and releases the store afterwards
func (r *RootCommand) Execute(ctx context.Context) error {
	defer r.close()
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("env-file", config.DefaultEnvFile, "dotenv file to read before the environment")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TODO_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TODO_DB_WRITE_TIMEOUT)")

	// Server configuration
	flags.String("host", "", "Listen host (overrides TODO_HOST)")
	flags.Int("port", 0, "Listen port (overrides TODO_PORT)")
	flags.Bool("debug", false, "Debug mode (overrides TODO_DEBUG)")

	// Display configuration
	flags.String("time-format", "", "Time display format (overrides TODO_TIME_DISPLAY_FORMAT)")
	flags.Bool("no-color", false, "Disable coloured output")

	// Logging configuration
	flags.String("log-level", "", "Log level (overrides TODO_LOG_LEVEL)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TODO_APP_TIMEOUT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   serveCommandName,
		Short: "Serve the to-do list over HTTP",
		Long:  "Start the web server. It shuts down gracefully on SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.loadApp(cmd)
			if err != nil {
				return err
			}
			return NewServeCommand(app).Execute(cmd.Context(), args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List items, newest first",
		Args:  cobra.NoArgs,
		RunE: r.runWithTimeout(func(app *App, cmd *cobra.Command) Command {
			return NewListCommand(app, cmd.OutOrStdout())
		}),
	}

	addCmd := &cobra.Command{
		Use:   "add [title...]",
		Short: "Add an item",
		Long:  "Add an open item. The arguments are joined with spaces; an empty title adds nothing.",
		Args:  cobra.ArbitraryArgs,
		RunE: r.runWithTimeout(func(app *App, cmd *cobra.Command) Command {
			return NewAddCommand(app, cmd.OutOrStdout())
		}),
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip an item between done and open",
		Args:  cobra.ExactArgs(1),
		RunE: r.runWithTimeout(func(app *App, cmd *cobra.Command) Command {
			return NewToggleCommand(app, cmd.OutOrStdout())
		}),
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Long:  "Delete an item permanently. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: r.runWithTimeout(func(app *App, cmd *cobra.Command) Command {
			return NewDeleteCommand(app, cmd.OutOrStdout())
		}),
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: r.runWithTimeout(func(app *App, cmd *cobra.Command) Command {
			return NewMigrateCommand(app, cmd.OutOrStdout())
		}),
	}

	r.cmd.AddCommand(
		serveCmd,
		listCmd,
		addCmd,
		toggleCmd,
		deleteCmd,
		migrateCmd,
	)
}

// runWithTimeout builds the command lazily and runs it under the application timeout
func (r *RootCommand) runWithTimeout(build func(app *App, cmd *cobra.Command) Command) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := r.loadApp(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), r.config.Application.Timeout)
		defer cancel()

		return build(app, cmd).Execute(ctx, args)
	}
}

// loadConfig resolves configuration from defaults, the dotenv file, the
// environment and the command-line flags
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if noColor, _ := flags.GetBool("no-color"); noColor {
		color.Disable()
	}

	envFile, _ := flags.GetString("env-file")
	cfg, err := config.NewLoader().WithEnvFile(envFile).LoadWithOverrides(overridesFromFlags(flags))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	r.config = cfg
	return nil
}

// loadApp opens the store on first use so help and completion never touch it
func (r *RootCommand) loadApp(cmd *cobra.Command) (*App, error) {
	if r.app != nil {
		return r.app, nil
	}
	if r.config == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}

	app, err := r.newApp(r.config, r.loggerFor(cmd))
	if err != nil {
		return nil, err
	}

	r.app = app
	return app, nil
}

// loggerFor keeps one-shot commands quiet unless debugging
func (r *RootCommand) loggerFor(cmd *cobra.Command) *slog.Logger {
	level := r.config.LogLevel()
	if cmd.Name() != serveCommandName && level != "DEBUG" {
		level = "ERROR"
	}
	return logging.New(level)
}

func (r *RootCommand) close() {
	if r.app == nil {
		return
	}
	if err := r.app.Close(); err != nil {
		r.app.log.Error("Failed to close application", "error", err)
	}
	r.app = nil
}

// overridesFromFlags collects the flags the user actually set
func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = lo.ToPtr(v)
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = lo.ToPtr(v)
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = lo.ToPtr(v)
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = lo.ToPtr(v)
	}

	if flags.Changed("host") {
		v, _ := flags.GetString("host")
		overrides.Host = lo.ToPtr(v)
	}
	if flags.Changed("port") {
		v, _ := flags.GetInt("port")
		overrides.Port = lo.ToPtr(v)
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		overrides.Debug = lo.ToPtr(v)
	}

	if flags.Changed("time-format") {
		v, _ := flags.GetString("time-format")
		overrides.TimeFormat = lo.ToPtr(v)
	}

	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = lo.ToPtr(v)
	}

	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = lo.ToPtr(v)
	}

	return overrides
}
