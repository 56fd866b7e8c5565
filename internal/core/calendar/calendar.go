// Package calendar defines calendar events and the service boundary used by
// the assistant. Device-calendar integrations live behind the Service
// interface; the shipped implementation is a local event store.
package calendar

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when an event does not exist.
	ErrNotFound = errors.New("calendar event not found")
	// ErrUnauthorized is returned when calendar access is disabled.
	ErrUnauthorized = errors.New("calendar access not authorized")
)

// Event represents a single calendar event.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	AllDay   bool      `json:"all_day"`
	Location string    `json:"location,omitempty"`
}

// OnDay reports whether the event starts on the same calendar day as t.
func (e Event) OnDay(t time.Time) bool {
	y1, m1, d1 := e.Start.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Service is the read boundary the assistant depends on. Implementations may
// be backed by the local event store or an external device calendar; fetch
// calls may fail and callers must degrade gracefully.
type Service interface {
	// Authorized reports whether calendar access is available.
	Authorized() bool

	// TodayEvents returns events starting today, ordered by start time.
	TodayEvents(ctx context.Context) ([]Event, error)

	// Events returns events with start in [from, to), ordered by start time.
	Events(ctx context.Context, from, to time.Time) ([]Event, error)

	// Upcoming returns events starting within the next given number of
	// days, ordered by start time.
	Upcoming(ctx context.Context, days int) ([]Event, error)
}

// Store defines the interface for local event persistence.
type Store interface {
	// Create persists a new event. The store populates ID if not set.
	Create(ctx context.Context, e *Event) error

	// ListRange returns events with start in [from, to), ordered by start.
	ListRange(ctx context.Context, from, to time.Time) ([]Event, error)
}
