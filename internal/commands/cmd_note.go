package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/assistant"
	"github.com/colonyops/pal/internal/core/note"
	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// NoteCmd manages notes from the command line.
type NoteCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	pinned     bool
	jsonOutput bool
}

// NewNoteCmd creates a new note command
func NewNoteCmd(flags *Flags, app *pal.App) *NoteCmd {
	return &NoteCmd{flags: flags, app: app}
}

// Register adds the note command to the application
func (cmd *NoteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "note",
		Usage:     "Manage notes",
		UsageText: "pal note <command>",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a note",
				UsageText: "pal note add [--pinned] [content...]",
				Description: `Creates a note. The first sentence (or the text before a colon)
becomes the title and the rest the body. Without content an
interactive form opens.`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "pinned",
						Usage:       "pin the note",
						Destination: &cmd.pinned,
					},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "ls",
				Usage:     "List notes",
				UsageText: "pal note ls [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runLs,
			},
			{
				Name:      "rm",
				Usage:     "Delete a note by ID",
				UsageText: "pal note rm <id>",
				Action:    cmd.runRm,
			},
		},
	})

	return app
}

func (cmd *NoteCmd) runAdd(ctx context.Context, c *cli.Command) error {
	content := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))

	if content == "" {
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title("Note").
					Description("First sentence becomes the title").
					Value(&content),
			),
		).Run()
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("note content is required")
	}

	title, body := assistant.SplitNote(content)
	n := note.Note{Title: title, Body: body, Pinned: cmd.pinned}

	if err := cmd.app.Stores.Notes.Create(ctx, &n); err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Created note %s: %s\n", n.ID, n.DisplayTitle())
	return nil
}

func (cmd *NoteCmd) runLs(ctx context.Context, c *cli.Command) error {
	notes, err := cmd.app.Stores.Notes.List(ctx)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, n := range notes {
			if err := iojson.WriteLine(out, n); err != nil {
				return fmt.Errorf("encode note: %w", err)
			}
		}
		return nil
	}

	if len(notes) == 0 {
		fmt.Fprintln(out, "No notes found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tPINNED\tCREATED")
	for _, n := range notes {
		pinned := ""
		if n.Pinned {
			pinned = "📌"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ID, n.DisplayTitle(), pinned, humanize.Time(n.CreatedAt))
	}
	return w.Flush()
}

func (cmd *NoteCmd) runRm(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("usage: pal note rm <id>")
	}

	if err := cmd.app.Stores.Notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Deleted note %s\n", id)
	return nil
}
