package assistant

import (
	"context"
	"fmt"

	"github.com/colonyops/pal/internal/core/task"
)

var createTaskTriggers = []string{
	"create task", "add task", "new task", "make task",
	"remind me to", "reminder to", "todo:",
}

func (e *Engine) createTaskIntent(ctx context.Context, input string) *Reply {
	trigger, ok := hasAnyTrigger(input, createTaskTriggers)
	if !ok {
		return nil
	}

	content := ExtractContent(input, trigger)
	if content == "" {
		// Trigger with no extractable title is not a match.
		return nil
	}

	now := e.now()
	t := task.Task{
		Title:    ParseTaskTitle(content),
		Priority: ParsePriority(content),
	}
	if t.Title == "" {
		t.Title = content
	}
	if due, ok := ResolveDueDate(content, now); ok {
		t.Due = &due
	}

	if err := e.stores.Tasks.Create(ctx, &t); err != nil {
		e.log.Error().Err(err).Msg("failed to create task")
		return textReply("I couldn't save that task. Please try again.")
	}

	text := fmt.Sprintf("✅ Task created: \"%s\"", t.Title)
	if t.Due != nil {
		text += fmt.Sprintf("\n📅 Due %s", t.Due.Format("Mon, Jan 2 at 3:04 PM"))
	}
	if t.Priority != task.PriorityMedium {
		text += fmt.Sprintf("\n🚩 Priority: %s", t.Priority)
	}

	return &Reply{Kind: KindTaskCreated, Text: text, Title: t.Title}
}

var completeTaskTriggers = []string{
	"complete task", "finish task", "done with", "mark done", "mark complete", "completed",
}

// completeTaskIntent resolves "complete task X" against pending tasks: an
// exact substring match wins, word-overlap similarity suggests up to three
// alternatives, and a count-only fallback covers everything else.
func (e *Engine) completeTaskIntent(ctx context.Context, input string) *Reply {
	trigger, ok := hasAnyTrigger(input, completeTaskTriggers)
	if !ok {
		return nil
	}

	term := ExtractContent(input, trigger)
	if term == "" {
		return nil
	}

	pending := false
	tasks, err := e.stores.Tasks.List(ctx, task.ListFilter{Done: &pending})
	if err != nil {
		e.log.Error().Err(err).Msg("failed to list tasks")
		return textReply("I couldn't look up your tasks. Please try again.")
	}

	if match, ok := findTask(tasks, term); ok {
		if err := e.stores.Tasks.Complete(ctx, match.ID); err != nil {
			e.log.Error().Err(err).Msg("failed to complete task")
			return textReply("I couldn't update that task. Please try again.")
		}
		return &Reply{
			Kind:  KindTaskCompleted,
			Text:  fmt.Sprintf("🎉 Completed \"%s\". Nice work!", match.Title),
			Title: match.Title,
		}
	}

	if similar := similarTasks(tasks, term, 3); len(similar) > 0 {
		text := fmt.Sprintf("I couldn't find a task matching \"%s\". Did you mean:", term)
		for _, t := range similar {
			text += fmt.Sprintf("\n• %s", t.Title)
		}
		return textReply(text)
	}

	return textReply(fmt.Sprintf(
		"I couldn't find a task matching \"%s\". You have %s pending.",
		term, plural(len(tasks), "task")))
}
