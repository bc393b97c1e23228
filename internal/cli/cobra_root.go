package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tasklist/internal/config"
	"tasklist/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd       *cobra.Command
	app       *App
	config    *config.Config
	logCloser io.Closer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}
	root.app = NewApp(nil, nil)

	root.cmd = &cobra.Command{
		Use:   "tl",
		Short: "A terminal task list with live due-date countdowns",
		Long: `Task List (tl) keeps a list of tasks for the current session.

FEATURES:
  • Add, edit and delete tasks through a validated form
  • Filter by category and sort by due date
  • Live countdown to each due date, refreshed every minute
  • Overdue tasks are highlighted

EXAMPLES:
  tl                                       # Start the interactive list
  tl ui --seed tasks.yaml                  # Start with tasks imported from a file
  tl list --seed tasks.toml --sort asc     # Print the list once
  tl check --name "Pay rent" --category Home --due 2026-11-01T09:00
  tl countdown 2026-11-01T09:00            # Time left until a date

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > .env file > tasklist.toml > defaults

    TL_DUE_LAYOUT                          Due date layout (default: 2006-01-02T15:04)
    TL_REFRESH_INTERVAL                    Countdown refresh interval (default: 60s)
    TL_DEFAULT_SORT                        none, asc or desc (default: none)
    TL_STORE_DRIVER                        memory or sqlite (default: memory)
    TL_LOG_LEVEL                           debug, info, warn or error (default: info)
    TL_LOG_FORMAT                          text, json or logfmt (default: text)
    TL_LOG_FILE                            Log file, "-" for stderr (default: none)
    TL_APP_TIMEOUT                         Timeout for non-interactive commands (default: 30s)
    TL_DEBUG                               Force debug logging to stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration and open the store before any command runs
			return root.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runInteractive(cmd, args)
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx as the parent context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if err != nil {
		// PersistentPostRunE is skipped when RunE fails
		_ = r.teardown()
	}
	return err
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Configuration sources
	flags.String("config", "", "TOML configuration file (default: ./"+config.DefaultFile+" if present)")
	flags.String("env-file", config.DefaultEnvFile, "dotenv file loaded into the environment")

	// Display configuration
	flags.String("due-layout", "", "Due date layout (overrides TL_DUE_LAYOUT)")
	flags.Duration("refresh-interval", 0, "Countdown refresh interval (overrides TL_REFRESH_INTERVAL)")
	flags.String("default-sort", "", "Default sort order: none, asc or desc (overrides TL_DEFAULT_SORT)")

	// Store configuration
	flags.String("store", "", "Task store: memory or sqlite (overrides TL_STORE_DRIVER)")

	// Logging configuration
	flags.String("log-level", "", "Log level (overrides TL_LOG_LEVEL)")
	flags.String("log-format", "", "Log format (overrides TL_LOG_FORMAT)")
	flags.String("log-file", "", "Log file, - for stderr (overrides TL_LOG_FILE)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Timeout for non-interactive commands (overrides TL_APP_TIMEOUT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	uiHandler := r.uiHandler()

	// UI command
	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the interactive task list",
		Long: `Start the interactive task list.

Keys:
  a add • e edit • d delete • f cycle category filter
  s cycle view sort • S sort stored tasks by due date • q quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runInteractive(cmd, args)
		},
	}
	uiCmd.Flags().StringVar(&uiHandler.seedPath, "seed", "", "YAML or TOML file of tasks to import at startup")
	r.cmd.Flags().StringVar(&uiHandler.seedPath, "seed", "", "YAML or TOML file of tasks to import at startup")

	// Check command
	checkHandler := r.checkHandler()
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a task without storing it",
		Long: `Validate a task and print the message for every failing field.

Example:
  tl check --name "Pay rent" --category Home --due 2026-11-01T09:00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "check", "check task", args)
		},
	}
	checkFlags := checkCmd.Flags()
	checkFlags.StringVar(&checkHandler.values.Name, "name", "", "Task name")
	checkFlags.StringVar(&checkHandler.values.Category, "category", "", "Category: Work, Home, Shopping or College")
	checkFlags.StringVar(&checkHandler.values.Priority, "priority", "", "Priority: High, Medium or Low")
	checkFlags.StringVar(&checkHandler.values.DueAt, "due", "", "Due date and time")
	checkFlags.StringVar(&checkHandler.values.Description, "description", "", "Description")

	// Countdown command
	countdownCmd := &cobra.Command{
		Use:   "countdown DUE",
		Short: "Print the time left until a due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "countdown", "compute countdown", args)
		},
	}

	// List command
	listHandler := r.listHandler()
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the task list once",
		Long: `Print the task list once, after importing an optional seed file.

Examples:
  tl list --seed tasks.yaml                   # All tasks in stored order
  tl list --seed tasks.yaml --category Work   # Only Work tasks
  tl list --seed tasks.toml --sort desc       # Latest due first`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "list", "list tasks", args)
		},
	}
	listFlags := listCmd.Flags()
	listFlags.StringVar(&listHandler.seedPath, "seed", "", "YAML or TOML file of tasks to import first")
	listFlags.StringVar(&listHandler.category, "category", "", "Only show this category (all for every category)")
	listFlags.StringVar(&listHandler.sort, "sort", "", "Sort by due date: none, asc or desc")

	// Add all subcommands to root
	r.cmd.AddCommand(
		uiCmd,
		checkCmd,
		countdownCmd,
		listCmd,
	)
}

// run executes a registered command with the application timeout
func (r *RootCommand) run(cmd *cobra.Command, name, operation string, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
	defer cancel()

	if err := r.app.registry.Execute(ctx, name, args); err != nil {
		return r.app.errorHandler.Handle(operation, err)
	}
	return nil
}

// runInteractive starts the ui without a timeout
func (r *RootCommand) runInteractive(cmd *cobra.Command, args []string) error {
	if err := r.app.registry.Execute(cmd.Context(), "ui", args); err != nil {
		return r.app.errorHandler.Handle("run task list", err)
	}
	return nil
}

func (r *RootCommand) uiHandler() *UICommand {
	command, _ := r.app.registry.Get("ui")
	return command.(*UICommand)
}

func (r *RootCommand) checkHandler() *CheckCommand {
	command, _ := r.app.registry.Get("check")
	return command.(*CheckCommand)
}

func (r *RootCommand) listHandler() *ListCommand {
	command, _ := r.app.registry.Get("list")
	return command.(*ListCommand)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 30 * time.Second // Default timeout
}

// setup loads configuration, configures logging and opens the task store
func (r *RootCommand) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config")
	envFile, _ := flags.GetString("env-file")

	cfg, err := config.NewLoader().
		WithConfigFile(configFile).
		WithEnvFile(envFile).
		LoadWithOverrides(overridesFromFlags(flags))
	if err != nil {
		return r.app.errorHandler.Handle("load configuration", err)
	}
	r.config = cfg

	closer, err := logging.Configure(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		return r.app.errorHandler.Handle("configure logging", err)
	}
	r.logCloser = closer

	repo, err := config.CreateRepository(cmd.Context(), cfg)
	if err != nil {
		return r.app.errorHandler.Handle("open task store", err)
	}

	r.app.bind(cfg, repo)
	r.app.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	logging.Logger().Debug("configuration loaded", "store", cfg.Store.Driver, "layout", cfg.Display.DueLayout)
	return nil
}

// teardown closes the task store and the log file
func (r *RootCommand) teardown() error {
	err := r.app.Close()
	r.app.bind(r.config, nil)
	if r.logCloser != nil {
		if cerr := r.logCloser.Close(); err == nil {
			err = cerr
		}
		r.logCloser = nil
	}
	return err
}

// overridesFromFlags collects the global flags that were set explicitly
func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	// Display configuration
	if flags.Changed("due-layout") {
		v, _ := flags.GetString("due-layout")
		overrides.DueLayout = &v
	}
	if flags.Changed("refresh-interval") {
		v, _ := flags.GetDuration("refresh-interval")
		overrides.RefreshInterval = &v
	}
	if flags.Changed("default-sort") {
		v, _ := flags.GetString("default-sort")
		overrides.DefaultSort = &v
	}

	// Store configuration
	if flags.Changed("store") {
		v, _ := flags.GetString("store")
		overrides.Driver = &v
	}

	// Logging configuration
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("log-format") {
		v, _ := flags.GetString("log-format")
		overrides.LogFormat = &v
	}
	if flags.Changed("log-file") {
		v, _ := flags.GetString("log-file")
		overrides.LogFile = &v
	}

	// Application configuration
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}

	return overrides
}
