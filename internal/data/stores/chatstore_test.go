package stores

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pal/internal/core/chat"
	"github.com/colonyops/pal/internal/data/db"
)

func TestChatStore(t *testing.T) {
	ctx := context.Background()

	t.Run("append and list chronological", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewChatStore(database, 0)

		base := time.Now()
		require.NoError(t, store.Append(ctx, &chat.Message{
			Role: chat.RoleUser, Content: "hello", CreatedAt: base,
		}))
		require.NoError(t, store.Append(ctx, &chat.Message{
			Role: chat.RoleAssistant, Content: "hi there", Kind: "text", CreatedAt: base.Add(time.Second),
		}))

		msgs, err := store.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, chat.RoleUser, msgs[0].Role)
		assert.Equal(t, "hello", msgs[0].Content)
		assert.Equal(t, chat.RoleAssistant, msgs[1].Role)
		assert.Equal(t, "text", msgs[1].Kind)
	})

	t.Run("list limit keeps most recent", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewChatStore(database, 0)

		base := time.Now()
		for i := 0; i < 5; i++ {
			require.NoError(t, store.Append(ctx, &chat.Message{
				Role:      chat.RoleUser,
				Content:   fmt.Sprintf("message %d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Second),
			}))
		}

		msgs, err := store.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "message 3", msgs[0].Content)
		assert.Equal(t, "message 4", msgs[1].Content)
	})

	t.Run("retention cap drops oldest", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewChatStore(database, 3)

		base := time.Now()
		for i := 0; i < 5; i++ {
			require.NoError(t, store.Append(ctx, &chat.Message{
				Role:      chat.RoleUser,
				Content:   fmt.Sprintf("message %d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Second),
			}))
		}

		msgs, err := store.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, "message 2", msgs[0].Content)
		assert.Equal(t, "message 4", msgs[2].Content)
	})

	t.Run("clear", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewChatStore(database, 0)

		require.NoError(t, store.Append(ctx, &chat.Message{Role: chat.RoleUser, Content: "hello"}))
		require.NoError(t, store.Clear(ctx))

		msgs, err := store.List(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})
}
