package cache

import (
	"fmt"
	"time"

	"palette/internal/models"
)

const viewedKeyPrefix = "viewed:%s:%d:member:%d"

// ViewedTTL is the deduplication window for listing view hits: a member
// contributes at most one hit per listing per window.
const ViewedTTL = 24 * time.Hour

// ViewedKey returns the dedup key for one member's view of one listing.
func ViewedKey(kind models.ListingKind, listingID, memberID uint) string {
	return fmt.Sprintf(viewedKeyPrefix, kind, listingID, memberID)
}
