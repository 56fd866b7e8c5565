package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/colonyops/pal/internal/core/calendar"
)

const (
	dayEventCap  = 8
	weekEventCap = 3 // per day
)

// calendarReply answers today/tomorrow/week calendar questions. Every path,
// including the empty and unauthorized ones, replaces the event reference
// tracker so "open 1" always refers to the listing the user just saw.
func (e *Engine) calendarReply(ctx context.Context, input string) *Reply {
	if e.cal == nil || !e.cal.Authorized() {
		e.lastEvents = nil
		return textReply("📅 Calendar access isn't set up. Enable it in settings and I'll keep you posted on your schedule.")
	}

	now := e.now()

	switch {
	case strings.Contains(input, "tomorrow"):
		start := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		events, err := e.cal.Events(ctx, start, start.AddDate(0, 0, 1))
		if err != nil {
			return e.calendarError(err)
		}
		return e.dayEventsReply("tomorrow", events)

	case strings.Contains(input, "week"):
		events, err := e.cal.Upcoming(ctx, 7)
		if err != nil {
			return e.calendarError(err)
		}
		return e.weekEventsReply(events)
	}

	events, err := e.cal.TodayEvents(ctx)
	if err != nil {
		return e.calendarError(err)
	}
	return e.dayEventsReply("today", events)
}

func (e *Engine) calendarError(err error) *Reply {
	e.log.Error().Err(err).Msg("calendar fetch failed")
	e.lastEvents = nil
	return textReply("I couldn't reach your calendar. Please try again.")
}

// dayEventsReply lists a single day with all-day events grouped ahead of
// timed ones. The tracker mirrors the display order so ordinals stay valid.
func (e *Engine) dayEventsReply(day string, events []calendar.Event) *Reply {
	if len(events) == 0 {
		e.lastEvents = nil
		return textReply(fmt.Sprintf("📅 Nothing on your calendar %s. Free as a bird!", day))
	}

	var allDay, timed []calendar.Event
	for _, ev := range events {
		if ev.AllDay {
			allDay = append(allDay, ev)
		} else {
			timed = append(timed, ev)
		}
	}

	shown := append(allDay, timed...)
	if len(shown) > dayEventCap {
		shown = shown[:dayEventCap]
	}
	e.lastEvents = shown

	var b strings.Builder
	fmt.Fprintf(&b, "📅 You have %s %s:", plural(len(events), "event"), day)
	n := 0
	for _, ev := range shown {
		if n == 0 && ev.AllDay {
			b.WriteString("\nAll day:")
		}
		if !ev.AllDay && n == len(allDay) && len(allDay) > 0 {
			b.WriteString("\nScheduled:")
		}
		n++
		if ev.AllDay {
			fmt.Fprintf(&b, "\n%d. %s", n, ev.Title)
		} else {
			fmt.Fprintf(&b, "\n%d. %s — %s", n, ev.Title, ev.Start.Format("3:04 PM"))
		}
	}
	if rest := len(events) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "\n…and %d more", rest)
	}
	b.WriteString("\nSay \"open 1\" to jump to an event.")

	return textReplyWithCount(b.String(), len(events))
}

// weekEventsReply groups the next seven days of events by day, showing at
// most three per day. Only the shown events become openable references.
func (e *Engine) weekEventsReply(events []calendar.Event) *Reply {
	if len(events) == 0 {
		e.lastEvents = nil
		return textReply("📅 Nothing scheduled this week. Free as a bird!")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 This week you have %s:", plural(len(events), "event"))

	var shown []calendar.Event
	i := 0
	for i < len(events) {
		day := events[i].Start
		fmt.Fprintf(&b, "\n%s:", day.Format("Monday"))

		perDay := 0
		j := i
		for ; j < len(events) && events[j].OnDay(day); j++ {
			if perDay >= weekEventCap {
				continue
			}
			ev := events[j]
			shown = append(shown, ev)
			fmt.Fprintf(&b, "\n%d. %s — %s", len(shown), ev.Title, eventTime(ev))
			perDay++
		}
		if extra := j - i - perDay; extra > 0 {
			fmt.Fprintf(&b, "\n…and %d more", extra)
		}
		i = j
	}
	b.WriteString("\nSay \"open 1\" to jump to an event.")

	e.lastEvents = shown
	return textReplyWithCount(b.String(), len(events))
}

func eventTime(ev calendar.Event) string {
	if ev.AllDay {
		return "all day"
	}
	return ev.Start.Format("3:04 PM")
}
