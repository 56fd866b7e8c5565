package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/colonyops/pal/internal/core/chat"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/pkg/randid"
)

// ChatStore implements chat.Store using SQLite.
type ChatStore struct {
	db          *db.DB
	maxMessages int
}

var _ chat.Store = (*ChatStore)(nil)

// NewChatStore creates a new SQLite-backed transcript store.
// maxMessages controls retention (0 = unlimited).
func NewChatStore(db *db.DB, maxMessages int) *ChatStore {
	return &ChatStore{db: db, maxMessages: maxMessages}
}

// Append persists a message and enforces the retention cap.
func (s *ChatStore) Append(ctx context.Context, m *chat.Message) error {
	if m.ID == "" {
		m.ID = randid.Generate(8)
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	// Transaction keeps insert + retention atomic.
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chat_messages (id, role, content, kind, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			m.ID, string(m.Role), m.Content, m.Kind, m.CreatedAt.UnixNano(),
		)
		if err != nil {
			return fmt.Errorf("append chat message: %w", err)
		}

		if s.maxMessages > 0 {
			var count int64
			if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_messages`).Scan(&count); err != nil {
				return fmt.Errorf("count chat messages: %w", err)
			}

			if count > int64(s.maxMessages) {
				_, err := tx.ExecContext(ctx, `
					DELETE FROM chat_messages WHERE id IN (
						SELECT id FROM chat_messages ORDER BY created_at ASC LIMIT ?
					)`, count-int64(s.maxMessages))
				if err != nil {
					return fmt.Errorf("enforce chat retention: %w", err)
				}
			}
		}

		return nil
	})
}

// List returns the most recent messages in chronological order.
func (s *ChatStore) List(ctx context.Context, limit int) ([]chat.Message, error) {
	query := `
		SELECT id, role, content, kind, created_at
		FROM chat_messages ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	msgs := make([]chat.Message, 0)
	for rows.Next() {
		var (
			m         chat.Message
			role      string
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &role, &m.Content, &m.Kind, &createdAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		m.Role = chat.Role(role)
		m.CreatedAt = time.Unix(0, createdAt)
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse into chronological order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}

	return msgs, nil
}

// Clear removes the entire transcript.
func (s *ChatStore) Clear(ctx context.Context) error {
	if _, err := s.db.Conn().ExecContext(ctx, `DELETE FROM chat_messages`); err != nil {
		return fmt.Errorf("clear chat messages: %w", err)
	}
	return nil
}
