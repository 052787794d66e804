package models

import "time"

// Media is one image record attached to a listing. Insertion order is the
// display order; the earliest row is the listing's thumbnail. The bytes
// behind the URL live in external storage.
type Media struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	OwnerKind ListingKind `gorm:"not null;index:idx_media_owner" json:"owner_kind"`
	OwnerID   uint        `gorm:"not null;index:idx_media_owner" json:"owner_id"`
	URL       string      `gorm:"not null;uniqueIndex" json:"url"`
	CreatedAt time.Time   `json:"created_at"`
}

// TableName keeps gorm from mangling the already-plural noun.
func (Media) TableName() string { return "media" }

// Bookmark is a member's bookmark on a listing. The same member may bookmark
// the same listing more than once; count is plain row count.
type Bookmark struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	MemberID  uint        `gorm:"not null;index" json:"member_id"`
	OwnerKind ListingKind `gorm:"not null;index:idx_bookmark_owner" json:"owner_kind"`
	OwnerID   uint        `gorm:"not null;index:idx_bookmark_owner" json:"owner_id"`
	CreatedAt time.Time   `json:"created_at"`
}

// Participant is a member's participation in a group-purchase offer.
// Occupancy is the row count for the offer.
type Participant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MemberID  uint      `gorm:"not null;index" json:"member_id"`
	OfferID   uint      `gorm:"not null;index" json:"offer_id"`
	CreatedAt time.Time `json:"created_at"`
}
