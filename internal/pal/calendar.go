package pal

import (
	"context"
	"time"

	"github.com/colonyops/pal/internal/core/calendar"
)

// LocalCalendar serves calendar reads from the local event store. It stands
// in for a device-calendar integration; access is gated by the config flag
// so the assistant's unauthorized path stays honest.
type LocalCalendar struct {
	store   calendar.Store
	enabled bool
	now     func() time.Time
}

var _ calendar.Service = (*LocalCalendar)(nil)

// NewLocalCalendar creates a store-backed calendar service.
func NewLocalCalendar(store calendar.Store, enabled bool) *LocalCalendar {
	return &LocalCalendar{store: store, enabled: enabled, now: time.Now}
}

// Authorized reports whether calendar access is enabled.
func (c *LocalCalendar) Authorized() bool { return c.enabled }

// TodayEvents returns events starting today, ordered by start time.
func (c *LocalCalendar) TodayEvents(ctx context.Context) ([]calendar.Event, error) {
	if !c.enabled {
		return nil, calendar.ErrUnauthorized
	}
	now := c.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return c.store.ListRange(ctx, start, start.AddDate(0, 0, 1))
}

// Events returns events with start in [from, to).
func (c *LocalCalendar) Events(ctx context.Context, from, to time.Time) ([]calendar.Event, error) {
	if !c.enabled {
		return nil, calendar.ErrUnauthorized
	}
	return c.store.ListRange(ctx, from, to)
}

// Upcoming returns events starting within the next given number of days.
func (c *LocalCalendar) Upcoming(ctx context.Context, days int) ([]calendar.Event, error) {
	if !c.enabled {
		return nil, calendar.ErrUnauthorized
	}
	now := c.now()
	return c.store.ListRange(ctx, now, now.AddDate(0, 0, days))
}
