package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/assistant"
	"github.com/colonyops/pal/internal/core/task"
	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// TaskCmd manages the task list from the command line.
type TaskCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	due        string
	priority   string
	all        bool
	doneOnly   bool
	jsonOutput bool
}

// NewTaskCmd creates a new task command
func NewTaskCmd(flags *Flags, app *pal.App) *TaskCmd {
	return &TaskCmd{flags: flags, app: app}
}

// Register adds the task command to the application
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "task",
		Usage:     "Manage tasks",
		UsageText: "pal task <command>",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a task",
				UsageText: "pal task add [--due <when>] [--priority <level>] [title...]",
				Description: `Creates a task. Without a title an interactive form opens.

The --due flag accepts the same relative phrases the assistant understands
("tomorrow", "friday", "next week") as well as YYYY-MM-DD dates.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "due",
						Usage:       "due date (relative phrase or YYYY-MM-DD)",
						Destination: &cmd.due,
					},
					&cli.StringFlag{
						Name:        "priority",
						Usage:       "priority (urgent, high, medium, low)",
						Value:       string(task.PriorityMedium),
						Destination: &cmd.priority,
					},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "ls",
				Usage:     "List tasks",
				UsageText: "pal task ls [--all|--done] [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "all",
						Usage:       "include completed tasks",
						Destination: &cmd.all,
					},
					&cli.BoolFlag{
						Name:        "done",
						Usage:       "show only completed tasks",
						Destination: &cmd.doneOnly,
					},
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runLs,
			},
			{
				Name:      "done",
				Usage:     "Complete a task by title match",
				UsageText: "pal task done <query>",
				Action:    cmd.runDone,
			},
			{
				Name:      "rm",
				Usage:     "Delete a task by ID",
				UsageText: "pal task rm <id>",
				Action:    cmd.runRm,
			},
		},
	})

	return app
}

func (cmd *TaskCmd) runAdd(ctx context.Context, c *cli.Command) error {
	title := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))

	if title == "" {
		if err := cmd.promptAdd(&title); err != nil {
			return err
		}
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("task title is required")
	}

	priority := task.Priority(cmd.priority)
	if !priority.Valid() {
		return fmt.Errorf("invalid priority %q (urgent, high, medium, low)", cmd.priority)
	}

	t := task.Task{Title: title, Priority: priority}
	if cmd.due != "" {
		due, err := parseDue(cmd.due, time.Now())
		if err != nil {
			return err
		}
		t.Due = &due
	}

	if err := cmd.app.Stores.Tasks.Create(ctx, &t); err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Created task %s: %s\n", t.ID, t.Title)
	return nil
}

func (cmd *TaskCmd) promptAdd(title *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task title").
				Value(title),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Urgent", string(task.PriorityUrgent)),
					huh.NewOption("High", string(task.PriorityHigh)),
					huh.NewOption("Medium", string(task.PriorityMedium)),
					huh.NewOption("Low", string(task.PriorityLow)),
				).
				Value(&cmd.priority),
			huh.NewInput().
				Title("Due").
				Description("Relative phrase or YYYY-MM-DD; leave empty for none").
				Value(&cmd.due),
		),
	).Run()
}

func (cmd *TaskCmd) runLs(ctx context.Context, c *cli.Command) error {
	filter := task.ListFilter{}
	switch {
	case cmd.doneOnly:
		done := true
		filter.Done = &done
	case !cmd.all:
		done := false
		filter.Done = &done
	}

	tasks, err := cmd.app.Stores.Tasks.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, t := range tasks {
			if err := iojson.WriteLine(out, t); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	}

	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tDUE\tDONE")
	for _, t := range tasks {
		due := ""
		if t.Due != nil {
			due = t.Due.Format("2006-01-02 15:04")
		}
		done := ""
		if t.Done {
			done = "✓"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Priority, due, done)
	}
	return w.Flush()
}

func (cmd *TaskCmd) runDone(ctx context.Context, c *cli.Command) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("usage: pal task done <query>")
	}

	reply := cmd.app.Assistant.HandleUtterance(ctx, "complete task "+query)
	_, err := fmt.Fprintln(c.Root().Writer, reply.Text)
	return err
}

func (cmd *TaskCmd) runRm(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("usage: pal task rm <id>")
	}

	if err := cmd.app.Stores.Tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Deleted task %s\n", id)
	return nil
}

// parseDue resolves a due string: relative assistant phrases first, then an
// absolute YYYY-MM-DD date.
func parseDue(s string, now time.Time) (time.Time, error) {
	if due, ok := assistant.ResolveDueDate(s, now); ok {
		return due, nil
	}
	if due, err := time.ParseInLocation("2006-01-02", s, now.Location()); err == nil {
		return due, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized due date %q", s)
}
