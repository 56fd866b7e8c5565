// Package house defines properties and their utility providers.
package house

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a house does not exist.
var ErrNotFound = errors.New("house not found")

// Utility is a single service provider attached to a property.
type Utility struct {
	Provider string `json:"provider"`
	Service  string `json:"service"` // electric, gas, water, internet, ...
}

// House represents a property the user tracks.
type House struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Utilities []Utility `json:"utilities,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the interface for house persistence.
type Store interface {
	// Create persists a new house. The store populates ID and CreatedAt if
	// not already set.
	Create(ctx context.Context, h *House) error

	// List returns all houses ordered by created_at.
	List(ctx context.Context) ([]House, error)
}
