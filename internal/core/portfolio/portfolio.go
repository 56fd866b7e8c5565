// Package portfolio defines stock holdings.
package portfolio

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a holding does not exist.
var ErrNotFound = errors.New("holding not found")

// Holding represents a position in a single stock.
type Holding struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Quantity  float64   `json:"quantity"`
	AvgCost   float64   `json:"avg_cost"`
	CreatedAt time.Time `json:"created_at"`
}

// CostBasis returns the total amount invested in this holding.
func (h Holding) CostBasis() float64 {
	return h.Quantity * h.AvgCost
}

// Store defines the interface for holding persistence.
type Store interface {
	// Create persists a new holding. The store populates ID and CreatedAt
	// if not already set.
	Create(ctx context.Context, h *Holding) error

	// List returns all holdings ordered by symbol.
	List(ctx context.Context) ([]Holding, error)
}
