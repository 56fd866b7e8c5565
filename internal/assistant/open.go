package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/colonyops/pal/internal/core/calendar"
)

var openTriggers = []string{
	"open ", "go to ", "show me ", "take me to ", "navigate to ", "switch to ", "view ",
}

// destinations maps keyword tables to screens, in match priority order.
var destinations = []struct {
	keywords []string
	dest     Destination
	icon     string
	label    string
}{
	{[]string{"calendar", "schedule", "events"}, DestCalendar, "📅", "Calendar"},
	{[]string{"task", "todo"}, DestTasks, "✅", "Tasks"},
	{[]string{"finance", "money", "budget", "expense", "transaction"}, DestFinance, "💰", "Finance"},
	{[]string{"subscription"}, DestSubscriptions, "💳", "Subscriptions"},
	{[]string{"stock", "portfolio", "investment"}, DestStocks, "📈", "Stocks"},
	{[]string{"health", "wellness", "fitness"}, DestHealth, "❤️", "Health"},
	{[]string{"home", "dashboard"}, DestHome, "🏠", "Home"},
	{[]string{"note"}, DestNotes, "📝", "Notes"},
	{[]string{"setting"}, DestSettings, "⚙️", "Settings"},
	{[]string{"house", "property", "utility"}, DestHouse, "🏡", "House"},
}

var ordinalRe = regexp.MustCompile(`\b(\d+)\b`)

// openIntent handles "open ..." utterances. References to previously listed
// calendar events take priority over destination keywords: ordinal first,
// then title-word match, then contextual ("that"/"it"/"first"/"last").
func (e *Engine) openIntent(_ context.Context, input string) *Reply {
	if _, ok := hasAnyTrigger(input, openTriggers); !ok {
		return nil
	}

	// (a) ordinal reference: "open 1", "open event 2"
	if m := ordinalRe.FindStringSubmatch(input); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n < 1 || n > len(e.lastEvents) {
			return textReply(fmt.Sprintf(
				"I only have %s listed. Ask about your calendar first, then try \"open 1\".",
				plural(len(e.lastEvents), "event")))
		}
		return e.openEventReply(e.lastEvents[n-1])
	}

	// (b) title-word reference: any tracked event title word longer than
	// 3 characters appearing in the utterance.
	for _, ev := range e.lastEvents {
		for _, word := range strings.Fields(strings.ToLower(ev.Title)) {
			if len(word) > 3 && strings.Contains(input, word) {
				return e.openEventReply(ev)
			}
		}
	}

	// (c) contextual reference to the first or last listed event.
	if len(e.lastEvents) > 0 {
		switch {
		case strings.Contains(input, "last"):
			return e.openEventReply(e.lastEvents[len(e.lastEvents)-1])
		case strings.Contains(input, "that"),
			strings.Contains(input, " it"),
			strings.Contains(input, "first"):
			return e.openEventReply(e.lastEvents[0])
		}
	}

	// (d) destination keyword table.
	for _, d := range destinations {
		if containsAny(input, d.keywords...) {
			dest := d.dest
			return &Reply{
				Kind:     KindAction,
				Text:     fmt.Sprintf("%s Taking you to %s", d.icon, d.label),
				Icon:     d.icon,
				Label:    d.label,
				Navigate: &dest,
			}
		}
	}

	return nil
}

func (e *Engine) openEventReply(ev calendar.Event) *Reply {
	dest := DestCalendar
	return &Reply{
		Kind:     KindAction,
		Text:     fmt.Sprintf("📅 Opening \"%s\"", ev.Title),
		Icon:     "📅",
		Label:    ev.Title,
		Navigate: &dest,
	}
}
