package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/core/finance"
	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// FinanceCmd records transactions and budgets.
type FinanceCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	income     bool
	note       string
	period     string
	jsonOutput bool
}

// NewFinanceCmd creates a new finance command
func NewFinanceCmd(flags *Flags, app *pal.App) *FinanceCmd {
	return &FinanceCmd{flags: flags, app: app}
}

// Register adds the finance command to the application
func (cmd *FinanceCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "finance",
		Usage:     "Track transactions and budgets",
		UsageText: "pal finance <command>",
		Commands: []*cli.Command{
			{
				Name:      "tx",
				Usage:     "Manage transactions",
				UsageText: "pal finance tx <command>",
				Commands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Record a transaction",
						UsageText: "pal finance tx add [--income] [--note <text>] <category> <amount>",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:        "income",
								Usage:       "record as income instead of expense",
								Destination: &cmd.income,
							},
							&cli.StringFlag{
								Name:        "note",
								Usage:       "free-form note",
								Destination: &cmd.note,
							},
						},
						Action: cmd.runTxAdd,
					},
					{
						Name:      "ls",
						Usage:     "List transactions",
						UsageText: "pal finance tx ls [--json]",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:        "json",
								Usage:       "output as JSON lines",
								Destination: &cmd.jsonOutput,
							},
						},
						Action: cmd.runTxLs,
					},
				},
			},
			{
				Name:      "budget",
				Usage:     "Manage budgets",
				UsageText: "pal finance budget <command>",
				Commands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Create a budget",
						UsageText: "pal finance budget add [--period monthly|weekly] <category> <limit>",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:        "period",
								Usage:       "budget period (monthly, weekly)",
								Value:       string(finance.PeriodMonthly),
								Destination: &cmd.period,
							},
						},
						Action: cmd.runBudgetAdd,
					},
					{
						Name:      "ls",
						Usage:     "List active budgets",
						UsageText: "pal finance budget ls [--json]",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:        "json",
								Usage:       "output as JSON lines",
								Destination: &cmd.jsonOutput,
							},
						},
						Action: cmd.runBudgetLs,
					},
				},
			},
		},
	})

	return app
}

func (cmd *FinanceCmd) runTxAdd(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 2 {
		return fmt.Errorf("usage: pal finance tx add <category> <amount>")
	}

	category := c.Args().Get(0)
	amount, err := strconv.ParseFloat(strings.TrimPrefix(c.Args().Get(1), "$"), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", c.Args().Get(1))
	}

	kind := finance.KindExpense
	if cmd.income {
		kind = finance.KindIncome
	}

	tx := finance.Transaction{
		Kind:     kind,
		Amount:   amount,
		Category: category,
		Note:     cmd.note,
	}

	if err := cmd.app.Stores.Transactions.Create(ctx, &tx); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Recorded %s %s: $%.2f\n", tx.Kind, tx.Category, tx.Amount)
	return nil
}

func (cmd *FinanceCmd) runTxLs(ctx context.Context, c *cli.Command) error {
	txs, err := cmd.app.Stores.Transactions.List(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, tx := range txs {
			if err := iojson.WriteLine(out, tx); err != nil {
				return fmt.Errorf("encode transaction: %w", err)
			}
		}
		return nil
	}

	if len(txs) == 0 {
		fmt.Fprintln(out, "No transactions found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KIND\tCATEGORY\tAMOUNT\tNOTE\tWHEN")
	for _, tx := range txs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\t%s\n", tx.Kind, tx.Category, tx.Amount, tx.Note, humanize.Time(tx.OccurredAt))
	}
	return w.Flush()
}

func (cmd *FinanceCmd) runBudgetAdd(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 2 {
		return fmt.Errorf("usage: pal finance budget add <category> <limit>")
	}

	category := c.Args().Get(0)
	limit, err := strconv.ParseFloat(strings.TrimPrefix(c.Args().Get(1), "$"), 64)
	if err != nil {
		return fmt.Errorf("invalid limit %q", c.Args().Get(1))
	}

	period := finance.BudgetPeriod(cmd.period)
	switch period {
	case finance.PeriodMonthly, finance.PeriodWeekly:
	default:
		return fmt.Errorf("invalid period %q (monthly, weekly)", cmd.period)
	}

	budget := finance.Budget{Category: category, Limit: limit, Period: period}
	if err := cmd.app.Stores.Budgets.Create(ctx, &budget); err != nil {
		return fmt.Errorf("create budget: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Created %s budget for %s: $%.2f\n", period, category, limit)
	return nil
}

func (cmd *FinanceCmd) runBudgetLs(ctx context.Context, c *cli.Command) error {
	budgets, err := cmd.app.Stores.Budgets.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list budgets: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, b := range budgets {
			if err := iojson.WriteLine(out, b); err != nil {
				return fmt.Errorf("encode budget: %w", err)
			}
		}
		return nil
	}

	if len(budgets) == 0 {
		fmt.Fprintln(out, "No active budgets")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tLIMIT\tPERIOD")
	for _, b := range budgets {
		_, _ = fmt.Fprintf(w, "%s\t$%.2f\t%s\n", b.Category, b.Limit, b.Period)
	}
	return w.Flush()
}
