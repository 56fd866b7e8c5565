package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/commands"
	"github.com/colonyops/pal/internal/core/config"
	"github.com/colonyops/pal/internal/core/styles"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/internal/data/stores"
	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

// openDatabase opens the SQLite database, recovering once from a corrupted
// file by backing it up and starting fresh.
func openDatabase(dataDir string) (*db.DB, error) {
	database, err := db.Open(dataDir, db.DefaultOpenOptions())
	if err == nil {
		return database, nil
	}
	if !stores.IsCorruptionError(err) {
		return nil, err
	}

	log.Warn().Err(err).Msg("database corrupted, backing up and recreating")
	if recErr := stores.RecoverFromCorruption(dataDir); recErr != nil {
		return nil, fmt.Errorf("recover from corruption: %w", recErr)
	}

	return db.Open(dataDir, db.DefaultOpenOptions())
}

func main() {
	ctx := context.Background()

	var (
		logCloser   func()
		palApp      = &pal.App{}
		database    *db.DB
		sweepCancel context.CancelFunc
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "pal",
		Usage:     "Personal assistant for tasks, notes, money, and health",
		UsageText: "pal [global options] command [command options]",
		Description: `Pal is a local-first personal assistant. Ask it things in plain
language and it manages your tasks, notes, subscriptions, finances,
health log, and calendar, all stored in a single SQLite file.

Run 'pal' with no arguments to open the interactive chat.
Run 'pal ask "..."' for a one-shot answer.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("PAL_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/logs/pal.log)",
				Sources:     cli.EnvVars("PAL_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("PAL_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("PAL_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := os.MkdirAll(flags.DataDir, 0o755); err != nil {
				return ctx, fmt.Errorf("create data directory: %w", err)
			}

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Always log to a file so stdout stays clean for the chat view.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = cfg.LogFile()
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			// Apply configured theme (validation ensures the name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			database, err = openDatabase(cfg.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*palApp = *pal.NewApp(cfg, database, log.Logger)

			// Start background settings sweep goroutine
			sweepCtx, cancel := context.WithCancel(context.Background())
			sweepCancel = cancel
			go pal.SweepSettings(sweepCtx, stores.NewKVStore(database), 5*time.Minute)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Stop background sweep
			if sweepCancel != nil {
				sweepCancel()
			}

			// Close database connection
			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	chatCmd := commands.NewChatCmd(flags, palApp)

	app = chatCmd.Register(app)
	app = commands.NewAskCmd(flags, palApp).Register(app)
	app = commands.NewTaskCmd(flags, palApp).Register(app)
	app = commands.NewNoteCmd(flags, palApp).Register(app)
	app = commands.NewHealthCmd(flags, palApp).Register(app)
	app = commands.NewSubCmd(flags, palApp).Register(app)
	app = commands.NewCalCmd(flags, palApp).Register(app)
	app = commands.NewFinanceCmd(flags, palApp).Register(app)
	app = commands.NewStockCmd(flags, palApp).Register(app)
	app = commands.NewHouseCmd(flags, palApp).Register(app)
	app = commands.NewHistoryCmd(flags, palApp).Register(app)
	app = commands.NewExportCmd(flags, palApp).Register(app)
	app = commands.NewImportCmd(flags, palApp).Register(app)
	app = commands.NewInitCmd(flags, palApp).Register(app)

	// Open the chat view when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'pal --help' for usage", c.Args().First())
		}
		return chatCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
