// Package chat defines the persisted conversation transcript between the
// user and the assistant.
package chat

import (
	"context"
	"time"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one persisted transcript entry. Kind carries the reply display
// tag for assistant messages so the presentation layer can switch on it; it
// is empty for user messages.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Kind      string    `json:"kind,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the interface for transcript persistence.
type Store interface {
	// Append persists a message. The store populates ID and CreatedAt if
	// not already set and enforces the configured retention cap.
	Append(ctx context.Context, m *Message) error

	// List returns the most recent messages in chronological order,
	// capped at limit (0 = all).
	List(ctx context.Context, limit int) ([]Message, error)

	// Clear removes the entire transcript.
	Clear(ctx context.Context) error
}
