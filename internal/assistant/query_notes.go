package assistant

import (
	"context"
	"fmt"
	"strings"
)

func (e *Engine) notesReply(ctx context.Context) *Reply {
	notes, err := e.stores.Notes.List(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("failed to list notes")
		return textReply("I couldn't look up your notes. Please try again.")
	}
	if len(notes) == 0 {
		return textReply("You don't have any notes yet. Try \"add note meeting ideas: follow up with sam\".")
	}

	now := e.now()
	weekAgo := now.AddDate(0, 0, -7)

	var recent, pinned int
	for _, n := range notes {
		if n.CreatedAt.After(weekAgo) {
			recent++
		}
		if n.Pinned {
			pinned++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📝 You have %s", plural(len(notes), "note"))
	if recent > 0 {
		fmt.Fprintf(&b, ", %d from the last week", recent)
	}
	if pinned > 0 {
		fmt.Fprintf(&b, " (%d pinned)", pinned)
	}
	b.WriteString(".")

	shown := notes
	if len(shown) > 5 {
		shown = shown[:5]
	}
	b.WriteString("\nMost recent:")
	for _, n := range shown {
		fmt.Fprintf(&b, "\n• %s", n.DisplayTitle())
	}

	return &Reply{Kind: KindNotesSummary, Text: b.String(), Count: len(notes)}
}
