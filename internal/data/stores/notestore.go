package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/pal/internal/core/note"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/pkg/randid"
)

// NoteStore implements note.Store using SQLite.
type NoteStore struct {
	db *db.DB
}

var _ note.Store = (*NoteStore)(nil)

// NewNoteStore creates a new SQLite-backed note store.
func NewNoteStore(db *db.DB) *NoteStore {
	return &NoteStore{db: db}
}

// Create persists a new note.
func (s *NoteStore) Create(ctx context.Context, n *note.Note) error {
	if n.ID == "" {
		n.ID = randid.Generate(8)
	}

	now := time.Now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = now
	}

	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO notes (id, title, body, pinned, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Body, n.Pinned, n.CreatedAt.UnixNano(), n.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	return nil
}

// Get returns a single note by ID.
func (s *NoteStore) Get(ctx context.Context, id string) (note.Note, error) {
	row := s.db.Conn().QueryRowContext(ctx, `
		SELECT id, title, body, pinned, created_at, updated_at
		FROM notes WHERE id = ?`, id)

	var (
		n                    note.Note
		createdAt, updatedAt int64
	)
	err := row.Scan(&n.ID, &n.Title, &n.Body, &n.Pinned, &createdAt, &updatedAt)
	if IsNotFoundError(err) {
		return note.Note{}, note.ErrNotFound
	}
	if err != nil {
		return note.Note{}, fmt.Errorf("get note: %w", err)
	}

	n.CreatedAt = time.Unix(0, createdAt)
	n.UpdatedAt = time.Unix(0, updatedAt)

	return n, nil
}

// List returns all notes ordered by created_at DESC.
func (s *NoteStore) List(ctx context.Context) ([]note.Note, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, title, body, pinned, created_at, updated_at
		FROM notes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	notes := make([]note.Note, 0)
	for rows.Next() {
		var (
			n                    note.Note
			createdAt, updatedAt int64
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.Pinned, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		n.CreatedAt = time.Unix(0, createdAt)
		n.UpdatedAt = time.Unix(0, updatedAt)
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

// Delete removes a note by ID.
func (s *NoteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.Conn().ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected == 0 {
		return note.ErrNotFound
	}

	return nil
}
