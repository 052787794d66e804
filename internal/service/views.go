package service

import (
	"context"

	"palette/internal/models"
	"palette/internal/repository"
)

// ViewBuilder assembles the externally visible views of a listing from the
// listing row and the ledger lookups. It performs no writes. Detail and
// Summary share one thumbnail/count derivation so the two views never skew.
type ViewBuilder struct {
	media     repository.MediaRepository
	bookmarks repository.BookmarkRepository
}

// NewViewBuilder creates a view builder over the shared ledgers.
func NewViewBuilder(media repository.MediaRepository, bookmarks repository.BookmarkRepository) *ViewBuilder {
	return &ViewBuilder{media: media, bookmarks: bookmarks}
}

// Detail merges the listing's own fields with its media URLs, thumbnail, and
// live bookmark count. Variant-specific aggregates are added afterwards by
// the variant policy.
func (b *ViewBuilder) Detail(ctx context.Context, listing models.Listing) (*models.ListingDetail, error) {
	detail := listing.Detail()

	urls, err := b.media.URLsForListing(ctx, listing.ListingKind(), listing.ListingID())
	if err != nil {
		return nil, err
	}
	detail.Images = urls
	detail.Thumbnail = thumbnailOf(urls)

	count, err := b.bookmarks.CountForListing(ctx, listing.ListingKind(), listing.ListingID())
	if err != nil {
		return nil, err
	}
	detail.BookmarkCount = count

	return detail, nil
}

// Summary builds the reduced feed projection with the same thumbnail and
// count semantics as Detail.
func (b *ViewBuilder) Summary(ctx context.Context, listing models.Listing) (*models.ListingSummary, error) {
	summary := listing.Summary()

	urls, err := b.media.URLsForListing(ctx, listing.ListingKind(), listing.ListingID())
	if err != nil {
		return nil, err
	}
	summary.Thumbnail = thumbnailOf(urls)

	count, err := b.bookmarks.CountForListing(ctx, listing.ListingKind(), listing.ListingID())
	if err != nil {
		return nil, err
	}
	summary.BookmarkCount = count

	return summary, nil
}

// thumbnailOf picks the earliest-inserted URL, or the sentinel when the
// listing has no media yet.
func thumbnailOf(urls []string) string {
	if len(urls) == 0 {
		return models.NoThumbnail
	}
	return urls[0]
}
