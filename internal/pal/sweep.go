package pal

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/pal/internal/data/stores"
)

// SweepSettings periodically deletes expired settings entries. It blocks
// until the context is cancelled.
func SweepSettings(ctx context.Context, kvStore *stores.KVStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := kvStore.SweepExpired(ctx); err != nil {
				log.Debug().Err(err).Msg("settings sweep failed")
			}
		}
	}
}
