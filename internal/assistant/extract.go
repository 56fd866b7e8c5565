package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	dollarRe = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)
)

// Unit conversion factors applied by callers based on keyword presence.
const (
	mlPerLiter = 1000.0
	mlPerCup   = 250.0
	kgPerPound = 0.453592
)

// ExtractNumber returns the first contiguous decimal numeral in text.
func ExtractNumber(text string) (float64, bool) {
	match := numberRe.FindString(text)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ExtractDollarAmount returns the first "$"-marked amount in text. Callers
// prefer it over ExtractNumber so "subscribe to netflix $15.99" doesn't pick
// up a number embedded in the name.
func ExtractDollarAmount(text string) (float64, bool) {
	match := dollarRe.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// fillerWords are stripped once from the front of extracted content.
var fillerWords = []string{"to ", "a ", "an ", "the ", "called ", "named ", "titled "}

// ExtractContent returns everything after the first case-insensitive
// occurrence of trigger, with one leading filler word stripped. Returns ""
// when the trigger is absent; callers treat empty as "no match".
func ExtractContent(input, trigger string) string {
	lower := strings.ToLower(input)
	idx := strings.Index(lower, strings.ToLower(trigger))
	if idx < 0 {
		return ""
	}

	rest := strings.TrimSpace(input[idx+len(trigger):])
	lowerRest := strings.ToLower(rest)
	for _, filler := range fillerWords {
		if strings.HasPrefix(lowerRest, filler) {
			rest = strings.TrimSpace(rest[len(filler):])
			break
		}
	}

	return rest
}

// SplitNote derives a (title, body) pair from free text. A colon split wins,
// then a newline split, then a long-content heuristic: more than 5 words
// makes the first 4 the title with the full content as body.
func SplitNote(content string) (title, body string) {
	content = strings.TrimSpace(content)

	if idx := strings.Index(content, ":"); idx >= 0 {
		title = strings.TrimSpace(content[:idx])
		if title == "" {
			title = "New Note"
		}
		return title, strings.TrimSpace(content[idx+1:])
	}

	if idx := strings.Index(content, "\n"); idx >= 0 {
		title = strings.TrimSpace(content[:idx])
		if title == "" {
			title = "New Note"
		}
		return title, strings.TrimSpace(content[idx+1:])
	}

	words := strings.Fields(content)
	if len(words) > 5 {
		return strings.Join(words[:4], " "), content
	}

	return content, ""
}
