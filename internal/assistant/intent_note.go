package assistant

import (
	"context"
	"fmt"

	"github.com/colonyops/pal/internal/core/note"
)

var createNoteTriggers = []string{
	"create note", "add note", "new note", "make note", "write note", "note:",
}

func (e *Engine) createNoteIntent(ctx context.Context, input string) *Reply {
	trigger, ok := hasAnyTrigger(input, createNoteTriggers)
	if !ok {
		return nil
	}

	content := ExtractContent(input, trigger)
	if content == "" {
		return nil
	}

	title, body := SplitNote(content)
	n := note.Note{Title: title, Body: body}

	if err := e.stores.Notes.Create(ctx, &n); err != nil {
		e.log.Error().Err(err).Msg("failed to create note")
		return textReply("I couldn't save that note. Please try again.")
	}

	return &Reply{
		Kind:  KindNoteCreated,
		Text:  fmt.Sprintf("📝 Note created: \"%s\"", n.Title),
		Title: n.Title,
	}
}
