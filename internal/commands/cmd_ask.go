package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// AskCmd answers a single question without opening the chat view.
type AskCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	jsonOutput bool
}

// NewAskCmd creates a new ask command
func NewAskCmd(flags *Flags, app *pal.App) *AskCmd {
	return &AskCmd{flags: flags, app: app}
}

// Register adds the ask command to the application
func (cmd *AskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ask",
		Usage:     "Ask the assistant a single question",
		UsageText: "pal ask [--json] <question>",
		Description: `Runs one utterance through the assistant and prints the reply.

The question is classified exactly like chat input, so mutations work too:
'pal ask "add task buy groceries tomorrow"' creates a task.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the reply as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AskCmd) run(ctx context.Context, c *cli.Command) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("nothing to ask. Usage: pal ask <question>")
	}

	reply := cmd.app.Assistant.HandleUtterance(ctx, question)

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, replyInfo{
			Kind: string(reply.Kind),
			Text: reply.Text,
		})
	}

	_, err := fmt.Fprintln(c.Root().Writer, reply.Text)
	return err
}

// replyInfo is the JSON output format for pal ask --json.
type replyInfo struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}
