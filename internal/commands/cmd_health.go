package commands

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/core/health"
	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// HealthCmd logs and lists health metric entries.
type HealthCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	unit       string
	since      string
	jsonOutput bool
}

// NewHealthCmd creates a new health command
func NewHealthCmd(flags *Flags, app *pal.App) *HealthCmd {
	return &HealthCmd{flags: flags, app: app}
}

// Register adds the health command to the application
func (cmd *HealthCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "health",
		Usage:     "Track health metrics",
		UsageText: "pal health <command>",
		Commands: []*cli.Command{
			{
				Name:      "log",
				Usage:     "Log a metric value",
				UsageText: "pal health log <metric> <value> [--unit <unit>]",
				Description: `Records one measurement. Known metrics: steps, sleep, water_intake,
calories, weight, heart_rate, mood, energy, blood_pressure.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "unit",
						Usage:       "unit override (defaults to the metric's unit)",
						Destination: &cmd.unit,
					},
				},
				Action: cmd.runLog,
			},
			{
				Name:      "ls",
				Usage:     "List logged entries",
				UsageText: "pal health ls [--since <duration>] [--json]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "since",
						Usage:       "only entries newer than this duration (e.g. 168h)",
						Destination: &cmd.since,
					},
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runLs,
			},
		},
	})

	return app
}

func (cmd *HealthCmd) runLog(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 2 {
		return fmt.Errorf("usage: pal health log <metric> <value>")
	}

	metric := health.Metric(c.Args().Get(0))
	if !metric.Valid() {
		return fmt.Errorf("%w: %q", health.ErrUnknownMetric, c.Args().Get(0))
	}

	value, err := strconv.ParseFloat(c.Args().Get(1), 64)
	if err != nil {
		return fmt.Errorf("invalid value %q", c.Args().Get(1))
	}

	unit := cmd.unit
	if unit == "" {
		unit = metric.DefaultUnit()
	}

	entry := health.Entry{Metric: metric, Value: value, Unit: unit}
	if err := cmd.app.Stores.Health.Create(ctx, &entry); err != nil {
		return fmt.Errorf("log entry: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Logged %s: %s %s\n", metric.Label(), c.Args().Get(1), unit)
	return nil
}

func (cmd *HealthCmd) runLs(ctx context.Context, c *cli.Command) error {
	var entries []health.Entry
	var err error

	if cmd.since != "" {
		d, parseErr := time.ParseDuration(cmd.since)
		if parseErr != nil {
			return fmt.Errorf("invalid --since duration %q", cmd.since)
		}
		entries, err = cmd.app.Stores.Health.ListSince(ctx, time.Now().Add(-d))
	} else {
		entries, err = cmd.app.Stores.Health.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, e := range entries {
			if err := iojson.WriteLine(out, e); err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
		}
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "METRIC\tVALUE\tUNIT\tLOGGED")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.Metric.Label(),
			strconv.FormatFloat(e.Value, 'f', -1, 64),
			e.Unit,
			humanize.Time(e.LoggedAt),
		)
	}
	return w.Flush()
}
