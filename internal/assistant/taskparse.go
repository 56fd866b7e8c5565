package assistant

import (
	"strings"

	"github.com/colonyops/pal/internal/core/task"
)

// ParsePriority derives a priority level from free text. Medium is the
// default when no keyword matches.
func ParsePriority(text string) task.Priority {
	lower := strings.ToLower(text)

	switch {
	// "not urgent" must win over the bare "urgent" substring.
	case strings.Contains(lower, "low priority"),
		strings.Contains(lower, "whenever"),
		strings.Contains(lower, "not urgent"):
		return task.PriorityLow

	case strings.Contains(lower, "urgent"),
		strings.Contains(lower, "asap"),
		strings.Contains(lower, "immediately"):
		return task.PriorityUrgent

	case strings.Contains(lower, "high priority"),
		strings.Contains(lower, "important"):
		return task.PriorityHigh
	}

	return task.PriorityMedium
}

// titleStopPhrases is the vocabulary stripped from the tail of a raw task
// title: the date resolver's phrases, the priority keywords, and weekday
// names. Longer phrases come before their substrings ("not urgent" before
// "urgent") so suffix stripping removes the whole phrase.
var titleStopPhrases = []string{
	"today", "tonight", "tomorrow", "next week", "this weekend",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"not urgent", "urgent", "asap", "immediately",
	"high priority", "important",
	"low priority", "whenever",
}

// ParseTaskTitle strips trailing date and priority phrases from the raw
// extracted title and trims whitespace.
func ParseTaskTitle(raw string) string {
	title := strings.TrimSpace(raw)

	for changed := true; changed; {
		changed = false
		lower := strings.ToLower(title)
		for _, phrase := range titleStopPhrases {
			if strings.HasSuffix(lower, phrase) {
				title = strings.TrimSpace(title[:len(title)-len(phrase)])
				title = strings.TrimSuffix(title, ",")
				title = strings.TrimSpace(strings.TrimSuffix(title, " on"))
				title = strings.TrimSpace(strings.TrimSuffix(title, " by"))
				changed = true
				break
			}
		}
	}

	return strings.TrimSpace(title)
}
