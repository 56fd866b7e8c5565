package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/colonyops/pal/internal/core/task"
)

const taskListCap = 5

func (e *Engine) tasksReply(ctx context.Context, input string) *Reply {
	tasks, err := e.stores.Tasks.List(ctx, task.ListFilter{})
	if err != nil {
		e.log.Error().Err(err).Msg("failed to list tasks")
		return textReply("I couldn't look up your tasks. Please try again.")
	}
	if len(tasks) == 0 {
		return textReply("You don't have any tasks yet. Try \"add task buy groceries tomorrow\" to create one.")
	}

	now := e.now()

	switch {
	case strings.Contains(input, "today"):
		var due []task.Task
		for _, t := range tasks {
			if !t.Done && t.DueToday(now) {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			return textReply("Nothing due today. Enjoy the breathing room! 🎉")
		}
		return taskListReply("📋 Due today", due)

	case containsAny(input, "overdue", "late"):
		var late []task.Task
		for _, t := range tasks {
			if t.Overdue(now) {
				late = append(late, t)
			}
		}
		if len(late) == 0 {
			return textReply("Nothing overdue. You're all caught up! ✨")
		}
		return taskListReply("⏰ Overdue", late)
	}

	return e.taskOverview(tasks, now)
}

func taskListReply(header string, tasks []task.Task) *Reply {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d):", header, len(tasks))

	shown := tasks
	if len(shown) > taskListCap {
		shown = shown[:taskListCap]
	}
	for _, t := range shown {
		fmt.Fprintf(&b, "\n• %s", t.Title)
	}
	if rest := len(tasks) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "\n…and %d more", rest)
	}

	return &Reply{Kind: KindTaskList, Text: b.String(), Count: len(tasks)}
}

// taskOverview summarizes the whole list with a completion-rate badge.
func (e *Engine) taskOverview(tasks []task.Task, now time.Time) *Reply {
	var done, dueToday, overdue int
	for _, t := range tasks {
		if t.Done {
			done++
			continue
		}
		if t.DueToday(now) {
			dueToday++
		}
		if t.Overdue(now) {
			overdue++
		}
	}

	pending := len(tasks) - done
	rate := pct(done, len(tasks))

	badge := "💪"
	switch {
	case rate >= 70:
		badge = "🌟"
	case rate >= 50:
		badge = "👍"
	}

	var b strings.Builder
	b.WriteString("📋 Task overview:")
	fmt.Fprintf(&b, "\n• %s pending", plural(pending, "task"))
	if dueToday > 0 {
		fmt.Fprintf(&b, " (%d due today)", dueToday)
	}
	if overdue > 0 {
		fmt.Fprintf(&b, "\n• %d overdue", overdue)
	}
	fmt.Fprintf(&b, "\n• %d completed", done)
	fmt.Fprintf(&b, "\n%s %d%% completion rate", badge, rate)

	return &Reply{Kind: KindStats, Text: b.String(), Count: pending}
}
