package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/pal/internal/core/subscription"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/pkg/randid"
)

// SubscriptionStore implements subscription.Store using SQLite.
type SubscriptionStore struct {
	db *db.DB
}

var _ subscription.Store = (*SubscriptionStore)(nil)

// NewSubscriptionStore creates a new SQLite-backed subscription store.
func NewSubscriptionStore(db *db.DB) *SubscriptionStore {
	return &SubscriptionStore{db: db}
}

// Create persists a new subscription.
func (s *SubscriptionStore) Create(ctx context.Context, sub *subscription.Subscription) error {
	if sub.ID == "" {
		sub.ID = randid.Generate(8)
	}
	if sub.Cycle == "" {
		sub.Cycle = subscription.CycleMonthly
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	sub.Active = true

	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO subscriptions (id, name, amount, cycle, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Amount, string(sub.Cycle), sub.Active, sub.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}

	return nil
}

// ListActive returns active subscriptions ordered by name.
func (s *SubscriptionStore) ListActive(ctx context.Context) ([]subscription.Subscription, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, name, amount, cycle, active, created_at
		FROM subscriptions WHERE active = 1 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	subs := make([]subscription.Subscription, 0)
	for rows.Next() {
		var (
			sub       subscription.Subscription
			cycle     string
			createdAt int64
		)
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Amount, &cycle, &sub.Active, &createdAt); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		sub.Cycle = subscription.Cycle(cycle)
		sub.CreatedAt = time.Unix(0, createdAt)
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}
