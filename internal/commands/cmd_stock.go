package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/core/portfolio"
	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// StockCmd manages portfolio holdings.
type StockCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	jsonOutput bool
}

// NewStockCmd creates a new stock command
func NewStockCmd(flags *Flags, app *pal.App) *StockCmd {
	return &StockCmd{flags: flags, app: app}
}

// Register adds the stock command to the application
func (cmd *StockCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stock",
		Usage:     "Manage stock holdings",
		UsageText: "pal stock <command>",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a holding",
				UsageText: "pal stock add <symbol> <quantity> <avg-cost>",
				Action:    cmd.runAdd,
			},
			{
				Name:      "ls",
				Usage:     "List holdings",
				UsageText: "pal stock ls [--json]",
				Flags: []cli.Flag{
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

func (cmd *StockCmd) runAdd(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 3 {
		return fmt.Errorf("usage: pal stock add <symbol> <quantity> <avg-cost>")
	}

	quantity, err := strconv.ParseFloat(c.Args().Get(1), 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q", c.Args().Get(1))
	}

	avgCost, err := strconv.ParseFloat(strings.TrimPrefix(c.Args().Get(2), "$"), 64)
	if err != nil {
		return fmt.Errorf("invalid avg cost %q", c.Args().Get(2))
	}

	h := portfolio.Holding{
		Symbol:   strings.ToUpper(c.Args().Get(0)),
		Quantity: quantity,
		AvgCost:  avgCost,
	}

	if err := cmd.app.Stores.Portfolio.Create(ctx, &h); err != nil {
		return fmt.Errorf("create holding: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Added holding %s: %s shares at $%.2f\n", h.Symbol, c.Args().Get(1), h.AvgCost)
	return nil
}

func (cmd *StockCmd) runLs(ctx context.Context, c *cli.Command) error {
	holdings, err := cmd.app.Stores.Portfolio.List(ctx)
	if err != nil {
		return fmt.Errorf("list holdings: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, h := range holdings {
			if err := iojson.WriteLine(out, h); err != nil {
				return fmt.Errorf("encode holding: %w", err)
			}
		}
		return nil
	}

	if len(holdings) == 0 {
		fmt.Fprintln(out, "No holdings found")
		return nil
	}

	var total float64
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SYMBOL\tQUANTITY\tAVG COST\tCOST BASIS")
	for _, h := range holdings {
		total += h.CostBasis()
		_, _ = fmt.Fprintf(w, "%s\t%s\t$%.2f\t$%.2f\n",
			h.Symbol,
			strconv.FormatFloat(h.Quantity, 'f', -1, 64),
			h.AvgCost,
			h.CostBasis(),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTotal invested: $%.2f\n", total)
	return nil
}
