package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotshare/internal/applog"
	"github.com/javiermolinar/slotshare/internal/config"
	"github.com/javiermolinar/slotshare/internal/session"
	"github.com/javiermolinar/slotshare/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// DebugLogPath is where --debug writes logs when no log file is configured.
const DebugLogPath = "slotshare-debug.log"

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	root       *cobra.Command
	debug      bool   // Enable debug logging
	noColor    bool   // Disable colored output
	tz         string // Timezone override
	now        func() time.Time
	runTUI     func(*session.Session, *config.Config, ...tui.ModelOption) error
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		now:        time.Now,
		runTUI:     tui.Run,
	}

	var source scheduleSource
	a.root = &cobra.Command{
		Use:   "slotshare",
		Short: "Pick free time slots and share them as text or a link",
		Long: `Slotshare turns a set of selected calendar slots into a day-by-day
plain-text summary and a compact shareable link.

Without a subcommand it opens an interactive week calendar. Pass a link
with --link (or just its events value with --events) to start from a
shared schedule.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := a.newSession()
			if err != nil {
				return err
			}

			var opts []tui.ModelOption
			opts = append(opts, tui.WithLogger(applog.New("tui")))
			if value := source.value(); value != "" {
				if err := sess.Restore(value); err != nil {
					opts = append(opts, tui.WithStatus(fmt.Sprintf("Could not read link: %v", err), true))
				}
			}
			return a.runTUI(sess, a.config, opts...)
		},
	}
	source.register(a.root)

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+DebugLogPath+" unless log.file is set)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.PersistentFlags().StringVar(&a.tz, "tz", "", "Timezone for display and input (IANA name, overrides config)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.textCmd())
	a.root.AddCommand(a.linkCmd())
	a.root.AddCommand(a.decodeCmd())

	return a
}

// setup applies global flags and starts logging.
func (a *App) setup(_ *cobra.Command, _ []string) error {
	if a.noColor {
		DisableColor()
	}
	if a.tz != "" {
		a.config.Display.Timezone = a.tz
		if _, err := a.config.Location(); err != nil {
			return err
		}
	}

	opts := a.config.LogOptions()
	if a.debug {
		opts.Level = "debug"
		if opts.File == "" {
			opts.File = DebugLogPath
		}
	}
	if err := applog.Setup(opts); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	return nil
}

// newSession creates a session in the configured timezone.
func (a *App) newSession() (*session.Session, error) {
	loc, err := a.config.Location()
	if err != nil {
		return nil, err
	}
	return session.New(session.Options{
		Location: loc,
		BaseURL:  a.config.Share.BaseURL,
		Logger:   applog.New("session"),
	}), nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slotshare %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// SetArgs overrides the command line arguments.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects command output and errors.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

// SetConfigPath changes the file the config command reads and writes.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// SetInput sets the reader interactive commands prompt from.
func (a *App) SetInput(in io.Reader) {
	a.root.SetIn(in)
}

// Close flushes and closes the log sink.
func (a *App) Close() error {
	applog.Close()
	return nil
}
