package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/pal/internal/core/health"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/pkg/randid"
)

// HealthStore implements health.Store using SQLite.
type HealthStore struct {
	db *db.DB
}

var _ health.Store = (*HealthStore)(nil)

// NewHealthStore creates a new SQLite-backed health entry store.
func NewHealthStore(db *db.DB) *HealthStore {
	return &HealthStore{db: db}
}

// Create persists a new entry.
func (s *HealthStore) Create(ctx context.Context, e *health.Entry) error {
	if e.ID == "" {
		e.ID = randid.Generate(8)
	}
	if e.LoggedAt.IsZero() {
		e.LoggedAt = time.Now()
	}

	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO health_entries (id, metric, value, unit, logged_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, string(e.Metric), e.Value, e.Unit, e.LoggedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("create health entry: %w", err)
	}

	return nil
}

// List returns all entries ordered by logged_at DESC.
func (s *HealthStore) List(ctx context.Context) ([]health.Entry, error) {
	return s.query(ctx, `
		SELECT id, metric, value, unit, logged_at
		FROM health_entries ORDER BY logged_at DESC`)
}

// ListSince returns entries logged at or after the given time.
func (s *HealthStore) ListSince(ctx context.Context, since time.Time) ([]health.Entry, error) {
	return s.query(ctx, `
		SELECT id, metric, value, unit, logged_at
		FROM health_entries WHERE logged_at >= ? ORDER BY logged_at DESC`,
		since.UnixNano())
}

func (s *HealthStore) query(ctx context.Context, query string, args ...any) ([]health.Entry, error) {
	rows, err := s.db.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list health entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]health.Entry, 0)
	for rows.Next() {
		var (
			e        health.Entry
			metric   string
			loggedAt int64
		)
		if err := rows.Scan(&e.ID, &metric, &e.Value, &e.Unit, &loggedAt); err != nil {
			return nil, fmt.Errorf("scan health entry: %w", err)
		}
		e.Metric = health.Metric(metric)
		e.LoggedAt = time.Unix(0, loggedAt)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
