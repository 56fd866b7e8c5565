package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/internal/tui"
)

// ChatCmd runs the interactive chat view. It is also the default action when
// pal is invoked without a subcommand.
type ChatCmd struct {
	flags *Flags
	app   *pal.App
}

// NewChatCmd creates a new chat command
func NewChatCmd(flags *Flags, app *pal.App) *ChatCmd {
	return &ChatCmd{flags: flags, app: app}
}

// Register adds the chat command to the application
func (cmd *ChatCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "chat",
		Usage:     "Open the interactive chat view",
		UsageText: "pal chat",
		Action:    cmd.Run,
	})

	return app
}

// Run executes the chat view. Exported for use as the default command.
func (cmd *ChatCmd) Run(ctx context.Context, _ *cli.Command) error {
	m := tui.New(tui.Deps{
		Engine:     cmd.app.Assistant,
		Transcript: cmd.app.Stores.Transcript,
		Config:     cmd.app.Config,
		Log:        log.Logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run chat: %w", err)
	}

	return nil
}
