package assistant

import (
	"strings"
	"time"
)

// weekdayNames is ordered so that multiple names in one utterance resolve
// deterministically (first listed wins).
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// ResolveDueDate maps relative date phrases in text to a concrete time.
// Rules are checked in order; the first match wins. Returns false when no
// phrase matches so callers leave the due date unset.
func ResolveDueDate(text string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "today"), strings.Contains(lower, "tonight"):
		return at(now, 18, 0), true

	case strings.Contains(lower, "tomorrow"):
		return at(now.AddDate(0, 0, 1), 12, 0), true

	case strings.Contains(lower, "next week"):
		return now.AddDate(0, 0, 7), true

	case strings.Contains(lower, "this weekend"):
		// Saturday of the current week.
		offset := int(time.Saturday - now.Weekday())
		return now.AddDate(0, 0, offset), true
	}

	for _, wd := range weekdayNames {
		if !strings.Contains(lower, wd.name) {
			continue
		}
		ahead := (int(wd.day) - int(now.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return now.AddDate(0, 0, ahead), true
	}

	return time.Time{}, false
}

func at(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}
