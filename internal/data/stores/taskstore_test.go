package stores

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pal/internal/core/task"
	"github.com/colonyops/pal/internal/data/db"
)

func TestTaskStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewTaskStore(database)

		due := time.Now().Add(24 * time.Hour)
		item := task.Task{
			ID:       "task-1",
			Title:    "Buy groceries",
			Priority: task.PriorityHigh,
			Due:      &due,
		}

		require.NoError(t, store.Create(ctx, &item))

		got, err := store.Get(ctx, "task-1")
		require.NoError(t, err)
		assert.Equal(t, "Buy groceries", got.Title)
		assert.Equal(t, task.PriorityHigh, got.Priority)
		require.NotNil(t, got.Due)
		assert.Equal(t, due.UnixNano(), got.Due.UnixNano())
		assert.False(t, got.Done)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("create generates ID and defaults priority", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewTaskStore(database)

		item := task.Task{Title: "Untagged"}
		require.NoError(t, store.Create(ctx, &item))

		assert.NotEmpty(t, item.ID)
		assert.Equal(t, task.PriorityMedium, item.Priority)
	})

	t.Run("get not found", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewTaskStore(database)

		_, err = store.Get(ctx, "nonexistent")
		assert.ErrorIs(t, err, task.ErrNotFound)
	})

	t.Run("list filters by done", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewTaskStore(database)

		base := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, store.Create(ctx, &task.Task{
				ID:        fmt.Sprintf("task-%d", i),
				Title:     fmt.Sprintf("Task %d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Second),
				UpdatedAt: base.Add(time.Duration(i) * time.Second),
			}))
		}
		require.NoError(t, store.Complete(ctx, "task-1"))

		done := true
		completed, err := store.List(ctx, task.ListFilter{Done: &done})
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, "task-1", completed[0].ID)

		notDone := false
		pending, err := store.List(ctx, task.ListFilter{Done: &notDone})
		require.NoError(t, err)
		assert.Len(t, pending, 2)

		all, err := store.List(ctx, task.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("list orders by created_at desc", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewTaskStore(database)

		base := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, store.Create(ctx, &task.Task{
				ID:        fmt.Sprintf("task-%d", i),
				Title:     fmt.Sprintf("Task %d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Second),
				UpdatedAt: base.Add(time.Duration(i) * time.Second),
			}))
		}

		tasks, err := store.List(ctx, task.ListFilter{})
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "task-2", tasks[0].ID)
		assert.Equal(t, "task-0", tasks[2].ID)
	})

	t.Run("complete sets done and completed_at", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewTaskStore(database)

		require.NoError(t, store.Create(ctx, &task.Task{ID: "task-1", Title: "Finish me"}))
		require.NoError(t, store.Complete(ctx, "task-1"))

		got, err := store.Get(ctx, "task-1")
		require.NoError(t, err)
		assert.True(t, got.Done)
		require.NotNil(t, got.CompletedAt)
	})

	t.Run("complete not found", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewTaskStore(database)

		assert.ErrorIs(t, store.Complete(ctx, "nonexistent"), task.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err)
		defer func() { _ = database.Close() }()

		store := NewTaskStore(database)

		require.NoError(t, store.Create(ctx, &task.Task{ID: "task-1", Title: "Remove me"}))
		require.NoError(t, store.Delete(ctx, "task-1"))

		_, err = store.Get(ctx, "task-1")
		assert.ErrorIs(t, err, task.ErrNotFound)

		assert.ErrorIs(t, store.Delete(ctx, "task-1"), task.ErrNotFound)
	})
}
