package repository

import (
	"context"

	"palette/internal/models"

	"gorm.io/gorm"
)

// BookmarkRepository is the append-oriented bookmark ledger.
type BookmarkRepository interface {
	// Add appends a relation row unconditionally. Duplicate (member, listing)
	// pairs are allowed.
	Add(ctx context.Context, bookmark *models.Bookmark) error
	// CountForListing returns the live row count for the listing.
	CountForListing(ctx context.Context, kind models.ListingKind, listingID uint) (int, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new bookmark repository.
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Add(ctx context.Context, bookmark *models.Bookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *bookmarkRepository) CountForListing(ctx context.Context, kind models.ListingKind, listingID uint) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("owner_kind = ? AND owner_id = ?", kind, listingID).
		Count(&count).Error
	return int(count), err
}
