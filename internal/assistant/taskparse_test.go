package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/pal/internal/core/task"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input string
		want  task.Priority
	}{
		{"fix the boiler urgent", task.PriorityUrgent},
		{"send invoice asap", task.PriorityUrgent},
		{"review contract, important", task.PriorityHigh},
		{"high priority: call the bank", task.PriorityHigh},
		{"clean garage whenever", task.PriorityLow},
		{"low priority backlog grooming", task.PriorityLow},
		{"not urgent but do it", task.PriorityLow},
		{"buy groceries", task.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePriority(tt.input))
		})
	}
}

func TestParseTaskTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"buy groceries tomorrow", "buy groceries"},
		{"call mom tonight", "call mom"},
		{"submit taxes by friday", "submit taxes"},
		{"book flights, urgent", "book flights"},
		{"mow the lawn this weekend", "mow the lawn"},
		{"finish report tomorrow urgent", "finish report"},
		{"water the plants", "water the plants"},
		{"tomorrow", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTaskTitle(tt.input))
		})
	}
}
