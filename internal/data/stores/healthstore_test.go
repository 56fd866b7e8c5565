package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pal/internal/core/health"
	"github.com/colonyops/pal/internal/data/db"
)

func TestHealthStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and list desc", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewHealthStore(database)

		base := time.Now()
		require.NoError(t, store.Create(ctx, &health.Entry{
			Metric: health.MetricSleep, Value: 7.5, Unit: "hours", LoggedAt: base,
		}))
		require.NoError(t, store.Create(ctx, &health.Entry{
			Metric: health.MetricSteps, Value: 8200, Unit: "steps", LoggedAt: base.Add(time.Second),
		}))

		entries, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, health.MetricSteps, entries[0].Metric)
		assert.Equal(t, health.MetricSleep, entries[1].Metric)
		assert.InDelta(t, 7.5, entries[1].Value, 0.001)
		assert.NotEmpty(t, entries[0].ID)
	})

	t.Run("list since cuts off older entries", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewHealthStore(database)

		now := time.Now()
		require.NoError(t, store.Create(ctx, &health.Entry{
			Metric: health.MetricWaterIntake, Value: 2000, Unit: "ml",
			LoggedAt: now.Add(-10 * 24 * time.Hour),
		}))
		require.NoError(t, store.Create(ctx, &health.Entry{
			Metric: health.MetricWaterIntake, Value: 1500, Unit: "ml",
			LoggedAt: now.Add(-2 * 24 * time.Hour),
		}))

		entries, err := store.ListSince(ctx, now.Add(-7*24*time.Hour))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.InDelta(t, 1500, entries[0].Value, 0.001)
	})
}
