// Package kv defines a small JSON key-value store used for app settings and
// cached state.
package kv

import (
	"context"
	"time"
)

// Well-known keys.
const (
	KeyOnboardedAt = "app.onboarded_at"
	KeyLastExport  = "app.last_export_at"
)

// KV is the interface for a persistent key-value store.
// Keys are strings, values are JSON-serializable.
// Get on a missing key returns an error wrapping sql.ErrNoRows.
type KV interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	SetTTL(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
	ListKeys(ctx context.Context) ([]string, error)
}
