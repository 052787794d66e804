package repository

import (
	"context"
	"errors"

	"palette/internal/models"

	"gorm.io/gorm"
)

// MediaRepository is the shared media ledger for both listing variants.
type MediaRepository interface {
	// AddAll persists a batch in the caller's order. Primary key order is the
	// ledger's physical order, so the first record of the first batch becomes
	// the thumbnail.
	AddAll(ctx context.Context, media []*models.Media) error
	// DeleteByURL removes the unique record with the given URL and fails with
	// a NOT_FOUND AppError when no such record exists.
	DeleteByURL(ctx context.Context, url string) error
	// URLsForListing returns a listing's media URLs in insertion order.
	// An empty slice is valid.
	URLsForListing(ctx context.Context, kind models.ListingKind, listingID uint) ([]string, error)
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository.
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) AddAll(ctx context.Context, media []*models.Media) error {
	if len(media) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&media).Error
}

func (r *mediaRepository) DeleteByURL(ctx context.Context, url string) error {
	var rec models.Media
	err := r.db.WithContext(ctx).Where("url = ?", url).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("media", url)
		}
		return err
	}
	return r.db.WithContext(ctx).Delete(&rec).Error
}

func (r *mediaRepository) URLsForListing(ctx context.Context, kind models.ListingKind, listingID uint) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).
		Model(&models.Media{}).
		Where("owner_kind = ? AND owner_id = ?", kind, listingID).
		Order("id ASC").
		Pluck("url", &urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}
