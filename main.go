package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/meditrack/meditrack/internal/api"
	"github.com/meditrack/meditrack/internal/commands"
	"github.com/meditrack/meditrack/internal/core/config"
	"github.com/meditrack/meditrack/internal/core/session"
	"github.com/meditrack/meditrack/internal/core/toast"
	"github.com/meditrack/meditrack/internal/printer"
	"github.com/meditrack/meditrack/internal/store/jsonfile"
	"github.com/meditrack/meditrack/pkg/utils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("info", "", nil); err != nil {
		panic(err)
	}

	var (
		p     = printer.New(os.Stderr)
		ctx   = printer.NewContext(context.Background(), p)
		flags = &commands.Flags{}
	)

	var deferredLogs *utils.DeferredWriter

	app := &cli.Command{
		Name:      "meditrack",
		Usage:     "Track your family's health from the terminal",
		UsageText: "meditrack [global options] command [command options]",
		Description: `MediTrack is a client for the MediTrack health tracking backend. It manages
family member profiles, health records, medications, and dose reminders.

Run 'meditrack' with no arguments to open the interactive dashboard.
Run 'meditrack login' first to sign in from the command line.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("MEDITRACK_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("MEDITRACK_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("MEDITRACK_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("MEDITRACK_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Detect TUI mode: no subcommand means TUI (default action)
			isTUI := len(c.Args().Slice()) == 0

			// In TUI mode, buffer logs to display after exit
			var deferred io.Writer
			if isTUI {
				deferredLogs = &utils.DeferredWriter{}
				deferred = deferredLogs
			}

			if err := setupLogger(flags.LogLevel, flags.LogFile, deferred); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return ctx, fmt.Errorf("create data directory: %w", err)
			}

			logger := log.With().Str("component", "meditrack").Logger()

			store := jsonfile.NewAuthStore(cfg.AuthFile(), logger)
			sessions := session.NewContainer(store, logger)
			toasts := toast.NewChannel(cfg.ToastDuration())

			flags.Sessions = sessions
			flags.Toasts = toasts
			flags.API = api.New(api.Config{
				BaseURL:     cfg.BaseURL,
				Timeout:     cfg.Timeout(),
				Credentials: []api.Credentials{sessions, store},
				Notifier:    toasts,
				ClearAuth:   store.ClearAuth,
				Logout:      sessions.OnAuthExpired,
				Logger:      logger,
			})

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// In CLI mode the toast channel has no renderer; print whatever
			// the client emitted during the command.
			if len(c.Args().Slice()) == 0 {
				return nil
			}
			drainNotices(printer.Ctx(ctx), flags.Toasts)
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = commands.NewRegisterCmd(flags).Register(app)
	app = commands.NewLoginCmd(flags).Register(app)
	app = commands.NewLogoutCmd(flags).Register(app)
	app = commands.NewProfileCmd(flags).Register(app)
	app = commands.NewFamilyCmd(flags).Register(app)
	app = commands.NewRecordsCmd(flags).Register(app)
	app = commands.NewMedsCmd(flags).Register(app)
	app = commands.NewDashboardCmd(flags).Register(app)
	app = commands.NewSuggestCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)
	app = tuiCmd.Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'meditrack --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		printer.Ctx(ctx).FatalError(err)
		exitCode = 1
	}

	// Flush deferred logs to console after TUI exits
	if deferredLogs != nil {
		if err := deferredLogs.Flush(zerolog.ConsoleWriter{Out: os.Stderr}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to flush logs: %v\n", err)
		}
	}

	os.Exit(exitCode)
}

// drainNotices prints collected notices through the printer and clears them.
func drainNotices(p *printer.Printer, toasts *toast.Channel) {
	if toasts == nil {
		return
	}

	for _, n := range toasts.Notices() {
		switch n.Level {
		case toast.LevelSuccess:
			p.Successf("%s", n.Message)
		case toast.LevelError:
			p.Errorf("%s", n.Message)
		case toast.LevelWarning:
			p.Warnf("%s", n.Message)
		default:
			p.Infof("%s", n.Message)
		}
	}
	toasts.Clear()
}

func setupLogger(level string, logFile string, deferred io.Writer) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		// Create log directory if it doesn't exist
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		// Open log file
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		if deferred != nil {
			// TUI mode with explicit log file - write to both file and deferred buffer
			output = io.MultiWriter(file, deferred)
		} else {
			// Write to both console and file
			output = io.MultiWriter(
				zerolog.ConsoleWriter{Out: os.Stderr},
				file,
			)
		}
	} else if deferred != nil {
		// TUI mode without log file - buffer for display after exit
		output = deferred
	}

	log.Logger = log.Output(output).Level(parsedLevel)

	return nil
}
