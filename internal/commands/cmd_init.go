package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/pal/internal/core/config"
	"github.com/colonyops/pal/internal/core/kv"
	"github.com/colonyops/pal/internal/core/styles"
	"github.com/colonyops/pal/internal/pal"
)

// InitCmd sets up pal for first-time use.
type InitCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	yes   bool
	force bool
}

// NewInitCmd creates a new init command
func NewInitCmd(flags *Flags, app *pal.App) *InitCmd {
	return &InitCmd{flags: flags, app: app}
}

// Register adds the init command to the application
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize pal configuration with an interactive wizard",
		UsageText: "pal init [options]",
		Description: `Sets up pal for first-time use.

The wizard picks a color theme and decides whether the local calendar
is enabled, then writes the config file. Use --yes to accept defaults
without prompts and --force to overwrite an existing config.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	configPath := cmd.flags.ConfigPath
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	if _, err := os.Stat(configPath); err == nil && !cmd.force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", configPath)
	}

	cfg := config.DefaultConfig()
	calendarEnabled := cfg.Calendar.Enabled

	if !cmd.yes {
		themeOptions := make([]huh.Option[string], 0, len(styles.ThemeNames()))
		for _, name := range styles.ThemeNames() {
			themeOptions = append(themeOptions, huh.NewOption(name, name))
		}

		err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Color theme").
					Options(themeOptions...).
					Value(&cfg.Theme),
				huh.NewConfirm().
					Title("Enable the local calendar?").
					Description("The assistant answers schedule questions from locally stored events").
					Value(&calendarEnabled),
			),
		).Run()
		if err != nil {
			return err
		}
	}
	cfg.Calendar.Enabled = calendarEnabled

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if err := cmd.app.Settings.Set(ctx, kv.KeyOnboardedAt, time.Now()); err != nil {
		return fmt.Errorf("record onboarding: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Wrote %s\nRun 'pal' to start chatting.\n", configPath)
	return nil
}
