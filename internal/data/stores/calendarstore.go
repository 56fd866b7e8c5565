package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/pal/internal/core/calendar"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/pkg/randid"
)

// CalendarStore implements calendar.Store using SQLite.
type CalendarStore struct {
	db *db.DB
}

var _ calendar.Store = (*CalendarStore)(nil)

// NewCalendarStore creates a new SQLite-backed event store.
func NewCalendarStore(db *db.DB) *CalendarStore {
	return &CalendarStore{db: db}
}

// Create persists a new event.
func (s *CalendarStore) Create(ctx context.Context, e *calendar.Event) error {
	if e.ID == "" {
		e.ID = randid.Generate(8)
	}
	if e.End.IsZero() {
		e.End = e.Start.Add(time.Hour)
	}

	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO calendar_events (id, title, start_at, end_at, all_day, location)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Start.UnixNano(), e.End.UnixNano(), e.AllDay, e.Location,
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

// ListRange returns events with start in [from, to), ordered by start.
func (s *CalendarStore) ListRange(ctx context.Context, from, to time.Time) ([]calendar.Event, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, title, start_at, end_at, all_day, location
		FROM calendar_events
		WHERE start_at >= ? AND start_at < ?
		ORDER BY start_at`,
		from.UnixNano(), to.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := make([]calendar.Event, 0)
	for rows.Next() {
		var (
			e              calendar.Event
			startAt, endAt int64
		)
		if err := rows.Scan(&e.ID, &e.Title, &startAt, &endAt, &e.AllDay, &e.Location); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Start = time.Unix(0, startAt)
		e.End = time.Unix(0, endAt)
		events = append(events, e)
	}

	return events, rows.Err()
}
