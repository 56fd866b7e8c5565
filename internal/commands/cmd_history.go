package commands

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// HistoryCmd inspects and clears the conversation transcript.
type HistoryCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	limit      int
	jsonOutput bool
}

// NewHistoryCmd creates a new history command
func NewHistoryCmd(flags *Flags, app *pal.App) *HistoryCmd {
	return &HistoryCmd{flags: flags, app: app}
}

// Register adds the history command to the application
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "Show the conversation transcript",
		UsageText: "pal history [--limit <n>] [--json]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Usage:       "most recent messages to show (0 = all)",
				Value:       20,
				Destination: &cmd.limit,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
		Commands: []*cli.Command{
			{
				Name:      "clear",
				Usage:     "Delete the entire transcript",
				UsageText: "pal history clear",
				Action:    cmd.runClear,
			},
		},
	})

	return app
}

func (cmd *HistoryCmd) run(ctx context.Context, c *cli.Command) error {
	messages, err := cmd.app.Stores.Transcript.List(ctx, cmd.limit)
	if err != nil {
		return fmt.Errorf("list transcript: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, m := range messages {
			if err := iojson.WriteLine(out, m); err != nil {
				return fmt.Errorf("encode message: %w", err)
			}
		}
		return nil
	}

	if len(messages) == 0 {
		fmt.Fprintln(out, "No messages yet")
		return nil
	}

	for _, m := range messages {
		fmt.Fprintf(out, "[%s] %s (%s)\n%s\n\n", m.Role, humanize.Time(m.CreatedAt), m.CreatedAt.Format("2006-01-02 15:04"), m.Content)
	}
	return nil
}

func (cmd *HistoryCmd) runClear(ctx context.Context, c *cli.Command) error {
	if err := cmd.app.Stores.Transcript.Clear(ctx); err != nil {
		return fmt.Errorf("clear transcript: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, "Transcript cleared")
	return nil
}
