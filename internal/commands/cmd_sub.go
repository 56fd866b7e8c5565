package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/core/subscription"
	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// SubCmd manages recurring subscriptions.
type SubCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	cycle      string
	jsonOutput bool
}

// NewSubCmd creates a new sub command
func NewSubCmd(flags *Flags, app *pal.App) *SubCmd {
	return &SubCmd{flags: flags, app: app}
}

// Register adds the sub command to the application
func (cmd *SubCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "sub",
		Usage:     "Manage subscriptions",
		UsageText: "pal sub <command>",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a subscription",
				UsageText: "pal sub add [--cycle monthly|yearly|weekly] <name> <amount>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "cycle",
						Usage:       "billing cycle (monthly, yearly, weekly)",
						Value:       string(subscription.CycleMonthly),
						Destination: &cmd.cycle,
					},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "ls",
				Usage:     "List active subscriptions",
				UsageText: "pal sub ls [--json]",
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

func (cmd *SubCmd) runAdd(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 2 {
		return fmt.Errorf("usage: pal sub add <name> <amount>")
	}

	args := c.Args().Slice()
	amountArg := args[len(args)-1]
	name := strings.Join(args[:len(args)-1], " ")

	amount, err := strconv.ParseFloat(strings.TrimPrefix(amountArg, "$"), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", amountArg)
	}

	cycle := subscription.Cycle(cmd.cycle)
	switch cycle {
	case subscription.CycleMonthly, subscription.CycleYearly, subscription.CycleWeekly:
	default:
		return fmt.Errorf("invalid cycle %q (monthly, yearly, weekly)", cmd.cycle)
	}

	sub := subscription.Subscription{Name: name, Amount: amount, Cycle: cycle}
	if err := cmd.app.Stores.Subscriptions.Create(ctx, &sub); err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Added subscription %s: %s at $%.2f per %s\n", sub.ID, sub.Name, sub.Amount, cycle.Noun())
	return nil
}

func (cmd *SubCmd) runLs(ctx context.Context, c *cli.Command) error {
	subs, err := cmd.app.Stores.Subscriptions.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list subscriptions: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, s := range subs {
			if err := iojson.WriteLine(out, s); err != nil {
				return fmt.Errorf("encode subscription: %w", err)
			}
		}
		return nil
	}

	if len(subs) == 0 {
		fmt.Fprintln(out, "No active subscriptions")
		return nil
	}

	var monthly float64
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tAMOUNT\tCYCLE")
	for _, s := range subs {
		monthly += s.MonthlyCost()
		_, _ = fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\n", s.ID, s.Name, s.Amount, s.Cycle)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d active, about $%.2f/month total\n", len(subs), monthly)
	return nil
}
