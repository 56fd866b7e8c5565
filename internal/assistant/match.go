package assistant

import (
	"strings"

	"github.com/colonyops/pal/internal/core/task"
)

// findTask returns the first task whose title contains the search term as a
// case-insensitive substring.
func findTask(tasks []task.Task, term string) (task.Task, bool) {
	term = strings.ToLower(term)
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), term) {
			return t, true
		}
	}
	return task.Task{}, false
}

// similarTasks returns up to limit tasks whose titles share at least one
// word with the search term. There is deliberately no minimum-overlap
// threshold or stop-word filtering: a single shared word qualifies.
func similarTasks(tasks []task.Task, term string, limit int) []task.Task {
	termWords := wordSet(term)

	var similar []task.Task
	for _, t := range tasks {
		if len(similar) >= limit {
			break
		}
		for word := range wordSet(t.Title) {
			if termWords[word] {
				similar = append(similar, t)
				break
			}
		}
	}

	return similar
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}
