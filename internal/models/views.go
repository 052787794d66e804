package models

import "time"

// NoThumbnail is the sentinel thumbnail URL for a listing without media.
const NoThumbnail = "not_found"

// ListingDetail is the full externally visible view of a listing: its own
// fields merged with the ledger-derived aggregates. Counts are computed live
// on every build, never cached on the listing row, so they cannot drift from
// their backing rows.
type ListingDetail struct {
	ID            uint        `json:"id"`
	Kind          ListingKind `json:"kind"`
	MemberID      uint        `json:"member_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
	Price         int         `json:"price"`
	Thumbnail     string      `json:"thumbnail"`
	Images        []string    `json:"images"`
	BookmarkCount int         `json:"bookmark_count"`
	Hits          int         `json:"hits"`
	IsClosed      bool        `json:"is_closed"`
	CreatedAt     time.Time   `json:"created_at"`

	// Offer-only.
	ShopURL   string     `json:"shop_url,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	HeadCount int        `json:"head_count,omitempty"`
	Occupancy int        `json:"current_participant_count,omitempty"`

	// Product-only.
	IsFree               bool       `json:"is_free,omitempty"`
	TransactionStartTime *time.Time `json:"transaction_start_time,omitempty"`
	TransactionEndTime   *time.Time `json:"transaction_end_time,omitempty"`
}

// ListingSummary is the reduced feed projection. Its thumbnail and count
// semantics must match ListingDetail's so list and detail pages never skew.
type ListingSummary struct {
	ID            uint        `json:"id"`
	Kind          ListingKind `json:"kind"`
	Title         string      `json:"title"`
	Category      string      `json:"category"`
	Price         int         `json:"price"`
	Thumbnail     string      `json:"thumbnail"`
	BookmarkCount int         `json:"bookmark_count"`
	Hits          int         `json:"hits"`
}
