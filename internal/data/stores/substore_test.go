package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pal/internal/core/subscription"
	"github.com/colonyops/pal/internal/data/db"
)

func TestSubscriptionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults cycle and marks active", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewSubscriptionStore(database)

		sub := subscription.Subscription{Name: "netflix", Amount: 15.99}
		require.NoError(t, store.Create(ctx, &sub))

		assert.NotEmpty(t, sub.ID)
		assert.Equal(t, subscription.CycleMonthly, sub.Cycle)
		assert.True(t, sub.Active)
	})

	t.Run("list active orders by name", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewSubscriptionStore(database)

		require.NoError(t, store.Create(ctx, &subscription.Subscription{Name: "spotify", Amount: 10.99}))
		require.NoError(t, store.Create(ctx, &subscription.Subscription{Name: "amazon prime", Amount: 139, Cycle: subscription.CycleYearly}))

		subs, err := store.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, subs, 2)
		assert.Equal(t, "amazon prime", subs[0].Name)
		assert.Equal(t, subscription.CycleYearly, subs[0].Cycle)
		assert.Equal(t, "spotify", subs[1].Name)
	})
}
