package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/core/calendar"
	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// CalCmd manages local calendar events.
type CalCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	at         string
	end        string
	allDay     bool
	location   string
	days       int
	jsonOutput bool
}

// NewCalCmd creates a new cal command
func NewCalCmd(flags *Flags, app *pal.App) *CalCmd {
	return &CalCmd{flags: flags, app: app}
}

// Register adds the cal command to the application
func (cmd *CalCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "cal",
		Usage:     "Manage calendar events",
		UsageText: "pal cal <command>",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add an event",
				UsageText: "pal cal add --at <when> [--end <when>] [--all-day] [--location <loc>] <title...>",
				Description: `Creates a local calendar event. The --at flag accepts
"2006-01-02 15:04" or a relative phrase like "tomorrow".`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "at",
						Usage:       "event start",
						Required:    true,
						Destination: &cmd.at,
					},
					&cli.StringFlag{
						Name:        "end",
						Usage:       "event end (defaults to one hour after start)",
						Destination: &cmd.end,
					},
					&cli.BoolFlag{
						Name:        "all-day",
						Usage:       "mark the event as all-day",
						Destination: &cmd.allDay,
					},
					&cli.StringFlag{
						Name:        "location",
						Usage:       "event location",
						Destination: &cmd.location,
					},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "ls",
				Usage:     "List upcoming events",
				UsageText: "pal cal ls [--days <n>] [--json]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "days",
						Usage:       "days ahead to list",
						Value:       7,
						Destination: &cmd.days,
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

func (cmd *CalCmd) runAdd(ctx context.Context, c *cli.Command) error {
	title := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if title == "" {
		return fmt.Errorf("event title is required")
	}

	start, err := parseEventTime(cmd.at, time.Now())
	if err != nil {
		return err
	}

	end := start.Add(time.Hour)
	if cmd.end != "" {
		end, err = parseEventTime(cmd.end, time.Now())
		if err != nil {
			return err
		}
	}
	if cmd.allDay {
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		end = start.AddDate(0, 0, 1)
	}

	event := calendar.Event{
		Title:    title,
		Start:    start,
		End:      end,
		AllDay:   cmd.allDay,
		Location: cmd.location,
	}

	if err := cmd.app.Events.Create(ctx, &event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Created event %s: %s at %s\n", event.ID, event.Title, start.Format("Mon, Jan 2 15:04"))
	return nil
}

func (cmd *CalCmd) runLs(ctx context.Context, c *cli.Command) error {
	events, err := cmd.app.Calendar.Upcoming(ctx, cmd.days)
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, e := range events {
			if err := iojson.WriteLine(out, e); err != nil {
				return fmt.Errorf("encode event: %w", err)
			}
		}
		return nil
	}

	if len(events) == 0 {
		fmt.Fprintf(out, "No events in the next %d days\n", cmd.days)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tSTART\tLOCATION")
	for _, e := range events {
		start := e.Start.Format("Mon, Jan 2 15:04")
		if e.AllDay {
			start = e.Start.Format("Mon, Jan 2") + " (all day)"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Title, start, e.Location)
	}
	return w.Flush()
}

// parseEventTime resolves an event time: absolute formats first, then the
// assistant's relative phrases.
func parseEventTime(s string, now time.Time) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	if t, err := parseDue(s, now); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized event time %q", s)
}
