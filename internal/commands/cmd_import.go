package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// ImportCmd restores data from a 'pal export' snapshot.
type ImportCmd struct {
	flags *Flags
	app   *pal.App

	reader iojson.FileReader[exportData]
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags, app *pal.App) *ImportCmd {
	return &ImportCmd{flags: flags, app: app}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Import data from a JSON export",
		UsageText: "pal import [-f <file>]",
		Description: `Reads a 'pal export' snapshot from a file or stdin and inserts
every record. Records keep their exported IDs, so importing the same
snapshot twice fails on the duplicate keys rather than doubling data.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	data, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	var count int

	for i := range data.Tasks {
		if err := cmd.app.Stores.Tasks.Create(ctx, &data.Tasks[i]); err != nil {
			return fmt.Errorf("import task %q: %w", data.Tasks[i].Title, err)
		}
		count++
	}
	for i := range data.Notes {
		if err := cmd.app.Stores.Notes.Create(ctx, &data.Notes[i]); err != nil {
			return fmt.Errorf("import note %q: %w", data.Notes[i].DisplayTitle(), err)
		}
		count++
	}
	for i := range data.Transactions {
		if err := cmd.app.Stores.Transactions.Create(ctx, &data.Transactions[i]); err != nil {
			return fmt.Errorf("import transaction: %w", err)
		}
		count++
	}
	for i := range data.Budgets {
		if err := cmd.app.Stores.Budgets.Create(ctx, &data.Budgets[i]); err != nil {
			return fmt.Errorf("import budget %q: %w", data.Budgets[i].Category, err)
		}
		count++
	}
	for i := range data.Health {
		if err := cmd.app.Stores.Health.Create(ctx, &data.Health[i]); err != nil {
			return fmt.Errorf("import health entry: %w", err)
		}
		count++
	}
	for i := range data.Subscriptions {
		if err := cmd.app.Stores.Subscriptions.Create(ctx, &data.Subscriptions[i]); err != nil {
			return fmt.Errorf("import subscription %q: %w", data.Subscriptions[i].Name, err)
		}
		count++
	}
	for i := range data.Holdings {
		if err := cmd.app.Stores.Portfolio.Create(ctx, &data.Holdings[i]); err != nil {
			return fmt.Errorf("import holding %q: %w", data.Holdings[i].Symbol, err)
		}
		count++
	}
	for i := range data.Houses {
		if err := cmd.app.Stores.Houses.Create(ctx, &data.Houses[i]); err != nil {
			return fmt.Errorf("import house %q: %w", data.Houses[i].Address, err)
		}
		count++
	}
	for i := range data.Events {
		if err := cmd.app.Events.Create(ctx, &data.Events[i]); err != nil {
			return fmt.Errorf("import event %q: %w", data.Events[i].Title, err)
		}
		count++
	}

	fmt.Fprintf(c.Root().Writer, "Imported %d records\n", count)
	return nil
}
