package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pal/internal/core/calendar"
	"github.com/colonyops/pal/internal/data/db"
)

func TestCalendarStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults end to an hour after start", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewCalendarStore(database)

		start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
		event := calendar.Event{Title: "Dentist", Start: start, Location: "Main St"}
		require.NoError(t, store.Create(ctx, &event))

		assert.NotEmpty(t, event.ID)
		assert.Equal(t, start.Add(time.Hour), event.End)
	})

	t.Run("list range ordered by start", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewCalendarStore(database)

		day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		require.NoError(t, store.Create(ctx, &calendar.Event{Title: "Late", Start: day.Add(16 * time.Hour)}))
		require.NoError(t, store.Create(ctx, &calendar.Event{Title: "Early", Start: day.Add(9 * time.Hour)}))
		require.NoError(t, store.Create(ctx, &calendar.Event{Title: "Next day", Start: day.AddDate(0, 0, 1)}))

		events, err := store.ListRange(ctx, day, day.AddDate(0, 0, 1))
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "Early", events[0].Title)
		assert.Equal(t, "Late", events[1].Title)
	})
}
