// Package assistant implements the intent-parsing and response-generation
// engine behind the pal chat. An utterance is classified against an ordered
// list of intents; the first match produces a Reply and, for mutation
// intents, exactly one write against the user's data.
package assistant

import "github.com/colonyops/pal/internal/core/health"

// Kind tags a reply for the presentation layer. The set is closed: the chat
// view switches exhaustively on it.
type Kind string

const (
	KindText           Kind = "text"
	KindStats          Kind = "stats"
	KindTaskList       Kind = "task_list"
	KindNotesSummary   Kind = "notes_summary"
	KindFinanceSummary Kind = "finance_summary"
	KindHealthSummary  Kind = "health_summary"
	KindCapabilities   Kind = "capabilities"
	KindAction         Kind = "action"
	KindTaskCreated    Kind = "task_created"
	KindNoteCreated    Kind = "note_created"
	KindTaskCompleted  Kind = "task_completed"
	KindHealthLogged   Kind = "health_logged"
)

// Destination names a screen the open/navigate intent can send the user to.
type Destination string

const (
	DestCalendar      Destination = "calendar"
	DestTasks         Destination = "tasks"
	DestFinance       Destination = "finance"
	DestSubscriptions Destination = "subscriptions"
	DestStocks        Destination = "stocks"
	DestHealth        Destination = "health"
	DestHome          Destination = "home"
	DestNotes         Destination = "notes"
	DestSettings      Destination = "settings"
	DestHouse         Destination = "house"
)

// Navigator is the sink for navigation side effects. Navigate is
// fire-and-forget; the assistant surface is dismissed afterwards.
type Navigator interface {
	Navigate(dest Destination)
}

// Reply is the single result of classifying an utterance. Kind-specific
// fields are only set for the matching kind; handlers return nil (not a
// Reply) to signal "no match, try the next intent".
type Reply struct {
	Kind Kind
	Text string

	Count   int           // task_list, notes_summary
	Title   string        // task_created, note_created, task_completed
	Balance float64       // finance_summary
	Icon    string        // action
	Label   string        // action
	Metric  health.Metric // health_logged
	Value   float64       // health_logged

	// Navigate requests a screen change after the reply is shown.
	Navigate *Destination
}

func textReply(text string) *Reply {
	return &Reply{Kind: KindText, Text: text}
}
