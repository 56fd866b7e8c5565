package stores

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pal/internal/data/db"
)

func TestKVStore(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewKVStore(database)

		require.NoError(t, store.Set(ctx, "greeting", "hello"))

		var got string
		require.NoError(t, store.Get(ctx, "greeting", &got))
		assert.Equal(t, "hello", got)
	})

	t.Run("get missing key", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewKVStore(database)

		var got string
		err = store.Get(ctx, "missing", &got)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("set overwrites", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewKVStore(database)

		require.NoError(t, store.Set(ctx, "count", 1))
		require.NoError(t, store.Set(ctx, "count", 2))

		var got int
		require.NoError(t, store.Get(ctx, "count", &got))
		assert.Equal(t, 2, got)
	})

	t.Run("expired entry is treated as missing", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewKVStore(database)

		require.NoError(t, store.SetTTL(ctx, "ephemeral", "value", -time.Second))

		var got string
		err = store.Get(ctx, "ephemeral", &got)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		ok, err := store.Has(ctx, "ephemeral")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("has", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewKVStore(database)

		ok, err := store.Has(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, store.Set(ctx, "present", true))
		ok, err = store.Has(ctx, "present")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewKVStore(database)

		require.NoError(t, store.Set(ctx, "key", "value"))
		require.NoError(t, store.Delete(ctx, "key"))

		ok, err := store.Has(ctx, "key")
		require.NoError(t, err)
		assert.False(t, ok)

		// Deleting a missing key is not an error.
		require.NoError(t, store.Delete(ctx, "key"))
	})

	t.Run("list keys excludes expired", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewKVStore(database)

		require.NoError(t, store.Set(ctx, "b", 1))
		require.NoError(t, store.Set(ctx, "a", 2))
		require.NoError(t, store.SetTTL(ctx, "gone", 3, -time.Second))

		keys, err := store.ListKeys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, keys)
	})

	t.Run("sweep expired", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewKVStore(database)

		require.NoError(t, store.Set(ctx, "keep", 1))
		require.NoError(t, store.SetTTL(ctx, "drop", 2, -time.Second))

		require.NoError(t, store.SweepExpired(ctx))

		keys, err := store.ListKeys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"keep"}, keys)
	})
}
