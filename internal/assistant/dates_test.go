package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDueDate(t *testing.T) {
	// Monday, March 10 2025, 09:00 UTC.
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"today is 6pm", "finish report today", time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC), true},
		{"tonight is 6pm", "call mom tonight", time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC), true},
		{"tomorrow is noon", "buy groceries tomorrow", time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC), true},
		{"next week keeps time of day", "review budget next week", time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC), true},
		{"weekend is saturday of this week", "mow the lawn this weekend", time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), true},
		{"future weekday", "dentist on friday", time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), true},
		{"same weekday jumps a full week", "standup on monday", time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC), true},
		{"no phrase", "buy groceries", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDueDate(tt.input, now)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDueDateOrder(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	// "tomorrow" outranks a weekday name later in the phrase.
	got, ok := ResolveDueDate("prep tomorrow for friday's demo", now)
	require.True(t, ok)
	assert.Equal(t, 11, got.Day())
}
