package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/core/calendar"
	"github.com/colonyops/pal/internal/core/finance"
	"github.com/colonyops/pal/internal/core/health"
	"github.com/colonyops/pal/internal/core/house"
	"github.com/colonyops/pal/internal/core/kv"
	"github.com/colonyops/pal/internal/core/note"
	"github.com/colonyops/pal/internal/core/portfolio"
	"github.com/colonyops/pal/internal/core/subscription"
	"github.com/colonyops/pal/internal/core/task"
	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// exportData is the full-database snapshot written by export and consumed by
// import. The transcript is deliberately excluded.
type exportData struct {
	ExportedAt    time.Time                   `json:"exported_at"`
	Tasks         []task.Task                 `json:"tasks,omitempty"`
	Notes         []note.Note                 `json:"notes,omitempty"`
	Transactions  []finance.Transaction       `json:"transactions,omitempty"`
	Budgets       []finance.Budget            `json:"budgets,omitempty"`
	Health        []health.Entry              `json:"health,omitempty"`
	Subscriptions []subscription.Subscription `json:"subscriptions,omitempty"`
	Holdings      []portfolio.Holding         `json:"holdings,omitempty"`
	Houses        []house.House               `json:"houses,omitempty"`
	Events        []calendar.Event            `json:"events,omitempty"`
}

// eventExportWindow bounds how far export reaches for calendar events.
const eventExportWindow = 365 * 24 * time.Hour

// ExportCmd dumps all stored data as one JSON document.
type ExportCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	outPath string
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags, app *pal.App) *ExportCmd {
	return &ExportCmd{flags: flags, app: app}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export all data as JSON",
		UsageText: "pal export [--out <file>]",
		Description: `Writes every store as a single JSON document, suitable for backup
or for 'pal import'. The chat transcript is not included.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "write to file instead of stdout",
				Destination: &cmd.outPath,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	now := time.Now()
	data := exportData{ExportedAt: now}

	var err error
	if data.Tasks, err = cmd.app.Stores.Tasks.List(ctx, task.ListFilter{}); err != nil {
		return fmt.Errorf("export tasks: %w", err)
	}
	if data.Notes, err = cmd.app.Stores.Notes.List(ctx); err != nil {
		return fmt.Errorf("export notes: %w", err)
	}
	if data.Transactions, err = cmd.app.Stores.Transactions.List(ctx); err != nil {
		return fmt.Errorf("export transactions: %w", err)
	}
	if data.Budgets, err = cmd.app.Stores.Budgets.ListActive(ctx); err != nil {
		return fmt.Errorf("export budgets: %w", err)
	}
	if data.Health, err = cmd.app.Stores.Health.List(ctx); err != nil {
		return fmt.Errorf("export health entries: %w", err)
	}
	if data.Subscriptions, err = cmd.app.Stores.Subscriptions.ListActive(ctx); err != nil {
		return fmt.Errorf("export subscriptions: %w", err)
	}
	if data.Holdings, err = cmd.app.Stores.Portfolio.List(ctx); err != nil {
		return fmt.Errorf("export holdings: %w", err)
	}
	if data.Houses, err = cmd.app.Stores.Houses.List(ctx); err != nil {
		return fmt.Errorf("export houses: %w", err)
	}
	if data.Events, err = cmd.app.Events.ListRange(ctx, now.Add(-eventExportWindow), now.Add(eventExportWindow)); err != nil {
		return fmt.Errorf("export events: %w", err)
	}

	if cmd.outPath != "" {
		f, err := os.Create(cmd.outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := iojson.WriteWith(f, c.Root().ErrWriter, data); err != nil {
			return err
		}
	} else {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, data); err != nil {
			return err
		}
	}

	if err := cmd.app.Settings.Set(ctx, kv.KeyLastExport, now); err != nil {
		return fmt.Errorf("record export time: %w", err)
	}

	return nil
}
