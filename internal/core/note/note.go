// Package note defines the note domain model.
package note

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a note does not exist.
var ErrNotFound = errors.New("note not found")

// Note represents a single free-form note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayTitle returns the title, or a fallback label when it is empty.
func (n Note) DisplayTitle() string {
	if n.Title == "" {
		return "Untitled"
	}
	return n.Title
}

// Store defines the interface for note persistence.
type Store interface {
	// Create persists a new note. The store populates ID, CreatedAt, and
	// UpdatedAt if not already set.
	Create(ctx context.Context, n *Note) error

	// Get returns a single note by ID.
	// Returns ErrNotFound if the note does not exist.
	Get(ctx context.Context, id string) (Note, error)

	// List returns all notes ordered by created_at DESC.
	List(ctx context.Context) ([]Note, error)

	// Delete removes a note by ID.
	// Returns ErrNotFound if the note does not exist.
	Delete(ctx context.Context, id string) error
}
