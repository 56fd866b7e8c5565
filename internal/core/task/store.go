package task

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a task does not exist.
var ErrNotFound = errors.New("task not found")

// ListFilter controls which tasks are returned by List.
type ListFilter struct {
	// Done filters by completion state when set.
	Done *bool
}

// Store defines the interface for task persistence.
type Store interface {
	// Create persists a new task. The store populates ID, Priority,
	// CreatedAt, and UpdatedAt if not already set.
	Create(ctx context.Context, t *Task) error

	// Get returns a single task by ID.
	// Returns ErrNotFound if the task does not exist.
	Get(ctx context.Context, id string) (Task, error)

	// List returns tasks matching the filter, ordered by created_at DESC.
	List(ctx context.Context, filter ListFilter) ([]Task, error)

	// Complete marks a task as done and records the completion time.
	// Returns ErrNotFound if the task does not exist.
	Complete(ctx context.Context, id string) error

	// Delete removes a task by ID.
	// Returns ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}
