// Package subscription defines recurring payment subscriptions.
package subscription

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a subscription does not exist.
var ErrNotFound = errors.New("subscription not found")

// Cycle is the billing interval of a subscription.
type Cycle string

const (
	CycleMonthly Cycle = "monthly"
	CycleYearly  Cycle = "yearly"
	CycleWeekly  Cycle = "weekly"
)

// Noun returns the billing interval as a noun ("month", "year", "week").
func (c Cycle) Noun() string {
	switch c {
	case CycleYearly:
		return "year"
	case CycleWeekly:
		return "week"
	default:
		return "month"
	}
}

// weeksPerMonth approximates the number of billing weeks in a month.
const weeksPerMonth = 4.33

// Subscription represents a recurring payment.
type Subscription struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Cycle     Cycle     `json:"cycle"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// MonthlyCost returns the subscription's monthly-equivalent cost.
func (s Subscription) MonthlyCost() float64 {
	switch s.Cycle {
	case CycleYearly:
		return s.Amount / 12
	case CycleWeekly:
		return s.Amount * weeksPerMonth
	default:
		return s.Amount
	}
}

// Store defines the interface for subscription persistence.
type Store interface {
	// Create persists a new subscription. The store populates ID and
	// CreatedAt if not already set, defaults Cycle to monthly, and marks
	// the subscription active.
	Create(ctx context.Context, s *Subscription) error

	// ListActive returns active subscriptions ordered by name.
	ListActive(ctx context.Context) ([]Subscription, error)
}
