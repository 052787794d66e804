package service

import (
	"context"
	"log/slog"

	"palette/internal/cache"
	"palette/internal/models"
	"palette/internal/observability"

	"github.com/redis/go-redis/v9"
)

// HitStore increments the persistent view counter on a listing row.
type HitStore interface {
	IncrementHits(ctx context.Context, id uint) error
}

// HitTracker records listing views. Redis deduplicates hits so a member
// contributes at most one per listing per cache.ViewedTTL window; without
// Redis, or for anonymous viewers, every view counts.
type HitTracker struct {
	rdb   *redis.Client
	kind  models.ListingKind
	store HitStore
}

// NewHitTracker creates a tracker for one listing variant. rdb may be nil.
func NewHitTracker(rdb *redis.Client, kind models.ListingKind, store HitStore) *HitTracker {
	return &HitTracker{rdb: rdb, kind: kind, store: store}
}

// Touch records one view of the listing by the member (0 for anonymous).
func (t *HitTracker) Touch(ctx context.Context, listingID, memberID uint) error {
	if t.rdb != nil && memberID != 0 {
		fresh, err := t.rdb.SetNX(ctx, cache.ViewedKey(t.kind, listingID, memberID), 1, cache.ViewedTTL).Result()
		if err != nil {
			// Redis being down must not lose views; count it and move on.
			observability.GlobalLogger.WarnContext(ctx, "hit dedup unavailable",
				slog.String("kind", string(t.kind)),
				slog.String("error", err.Error()),
			)
		} else if !fresh {
			return nil
		}
	}

	observability.HitsRecorded.WithLabelValues(string(t.kind)).Inc()
	return t.store.IncrementHits(ctx, listingID)
}
