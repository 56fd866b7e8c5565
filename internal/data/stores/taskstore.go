package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/colonyops/pal/internal/core/task"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/pkg/randid"
)

// TaskStore implements task.Store using SQLite.
type TaskStore struct {
	db *db.DB
}

var _ task.Store = (*TaskStore)(nil)

// NewTaskStore creates a new SQLite-backed task store.
func NewTaskStore(db *db.DB) *TaskStore {
	return &TaskStore{db: db}
}

// Create persists a new task.
func (s *TaskStore) Create(ctx context.Context, t *task.Task) error {
	if t.ID == "" {
		t.ID = randid.Generate(8)
	}
	if t.Priority == "" {
		t.Priority = task.PriorityMedium
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO tasks (id, title, priority, due, done, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, string(t.Priority), toNullTime(t.Due), t.Done, toNullTime(t.CompletedAt),
		t.CreatedAt.UnixNano(), t.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// Get returns a single task by ID.
func (s *TaskStore) Get(ctx context.Context, id string) (task.Task, error) {
	row := s.db.Conn().QueryRowContext(ctx, `
		SELECT id, title, priority, due, done, completed_at, created_at, updated_at
		FROM tasks WHERE id = ?`, id)

	t, err := scanTask(row)
	if IsNotFoundError(err) {
		return task.Task{}, task.ErrNotFound
	}
	if err != nil {
		return task.Task{}, fmt.Errorf("get task: %w", err)
	}

	return t, nil
}

// List returns tasks matching the filter, ordered by created_at DESC.
func (s *TaskStore) List(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	query := `
		SELECT id, title, priority, due, done, completed_at, created_at, updated_at
		FROM tasks`
	args := []any{}

	if filter.Done != nil {
		query += ` WHERE done = ?`
		args = append(args, *filter.Done)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Complete marks a task as done and records the completion time.
func (s *TaskStore) Complete(ctx context.Context, id string) error {
	now := time.Now().UnixNano()
	res, err := s.db.Conn().ExecContext(ctx, `
		UPDATE tasks SET done = 1, completed_at = ?, updated_at = ? WHERE id = ?`,
		now, now, id,
	)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	if affected == 0 {
		return task.ErrNotFound
	}

	return nil
}

// Delete removes a task by ID.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.Conn().ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return task.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (task.Task, error) {
	var (
		t                    task.Task
		priority             string
		due, completedAt     sql.NullInt64
		createdAt, updatedAt int64
	)

	if err := row.Scan(&t.ID, &t.Title, &priority, &due, &t.Done, &completedAt, &createdAt, &updatedAt); err != nil {
		return task.Task{}, err
	}

	t.Priority = task.Priority(priority)
	t.Due = fromNullTime(due)
	t.CompletedAt = fromNullTime(completedAt)
	t.CreatedAt = time.Unix(0, createdAt)
	t.UpdatedAt = time.Unix(0, updatedAt)

	return t, nil
}
