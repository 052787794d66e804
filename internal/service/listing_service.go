// Package service implements the listing lifecycle: the single entry point
// external collaborators call for creating, reading, editing, closing, and
// deleting marketplace listings.
package service

import (
	"context"

	"palette/internal/models"
	"palette/internal/observability"
	"palette/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// ListingService orchestrates one listing variant's lifecycle across the
// listing store and the shared ledgers. It performs no authorization: callers
// compare AuthorID against the acting member before any mutation.
type ListingService[L models.Listing, E any] struct {
	repo      repository.ListingRepository[L]
	media     repository.MediaRepository
	bookmarks repository.BookmarkRepository
	policy    VariantPolicy[L, E]
	views     *ViewBuilder
}

// NewListingService wires a lifecycle service for one variant.
func NewListingService[L models.Listing, E any](
	repo repository.ListingRepository[L],
	media repository.MediaRepository,
	bookmarks repository.BookmarkRepository,
	policy VariantPolicy[L, E],
) *ListingService[L, E] {
	return &ListingService[L, E]{
		repo:      repo,
		media:     media,
		bookmarks: bookmarks,
		policy:    policy,
		views:     NewViewBuilder(media, bookmarks),
	}
}

// Create persists the listing, then its initial media batch, and returns the
// detail view. The two writes are not atomic: if the media batch fails, the
// listing stays persisted without media. Callers treat that as a visible,
// recoverable inconsistency rather than a fatal abort.
func (s *ListingService[L, E]) Create(ctx context.Context, listing L, imageURLs []string) (*models.ListingDetail, error) {
	span, ctx := observability.NewSpan(ctx, "ListingService.Create")
	defer span.End()

	if err := s.repo.Create(ctx, listing); err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(
		attribute.String("listing.kind", string(listing.ListingKind())),
		attribute.Int64("listing.id", int64(listing.ListingID())),
	)

	if err := s.attachImages(ctx, listing.ListingKind(), listing.ListingID(), imageURLs); err != nil {
		span.SetError(err)
		return nil, err
	}

	return s.buildDetail(ctx, listing)
}

// Get returns the detail view for one listing.
func (s *ListingService[L, E]) Get(ctx context.Context, id uint) (*models.ListingDetail, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, listing)
}

// GetAll returns summary views for every listing of the variant.
func (s *ListingService[L, E]) GetAll(ctx context.Context) ([]*models.ListingSummary, error) {
	listings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]*models.ListingSummary, 0, len(listings))
	for _, l := range listings {
		summary, err := s.views.Summary(ctx, l)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Edit applies the payload's field updates in place and returns the refreshed
// detail view. Fails with NOT_FOUND when the id is absent; nothing is
// mutated in that case. Editing stays permitted after Close.
func (s *ListingService[L, E]) Edit(ctx context.Context, id uint, in E) (*models.ListingDetail, error) {
	span, ctx := observability.NewSpan(ctx, "ListingService.Edit")
	defer span.End()
	span.AddAttributes(attribute.Int64("listing.id", int64(id)))

	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	s.policy.Apply(listing, in)

	if err := s.repo.Update(ctx, listing); err != nil {
		span.SetError(err)
		return nil, err
	}
	return s.buildDetail(ctx, listing)
}

// Close transitions the listing to its terminal closed state. The transition
// is one-way and idempotent: closing an already-closed listing re-affirms
// the state and does not error.
func (s *ListingService[L, E]) Close(ctx context.Context, id uint) (*models.ListingDetail, error) {
	span, ctx := observability.NewSpan(ctx, "ListingService.Close")
	defer span.End()
	span.AddAttributes(attribute.Int64("listing.id", int64(id)))

	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	listing.Close()

	if err := s.repo.Update(ctx, listing); err != nil {
		span.SetError(err)
		return nil, err
	}
	return s.buildDetail(ctx, listing)
}

// Delete removes the listing row only. Media, bookmark, and participant rows
// are left in place; deleting an absent id is not an error.
func (s *ListingService[L, E]) Delete(ctx context.Context, id uint) error {
	span, ctx := observability.NewSpan(ctx, "ListingService.Delete")
	defer span.End()
	span.AddAttributes(attribute.Int64("listing.id", int64(id)))

	if err := s.repo.Delete(ctx, id); err != nil {
		span.SetError(err)
		return err
	}
	return nil
}

// AuthorID returns the owning member's id, the only value the core exposes
// for the caller-side authorization comparison. Fails with NOT_FOUND when
// the id is absent.
func (s *ListingService[L, E]) AuthorID(ctx context.Context, id uint) (uint, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return listing.AuthorID(), nil
}

// SaveImages appends a media batch to an existing listing in the caller's
// order.
func (s *ListingService[L, E]) SaveImages(ctx context.Context, id uint, imageURLs []string) error {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.attachImages(ctx, listing.ListingKind(), listing.ListingID(), imageURLs)
}

// DeleteImages removes exactly the named media records. An unknown URL fails
// with NOT_FOUND; records already removed stay removed.
func (s *ListingService[L, E]) DeleteImages(ctx context.Context, urls []string) error {
	for _, url := range urls {
		if err := s.media.DeleteByURL(ctx, url); err != nil {
			return err
		}
	}
	return nil
}

// AddBookmark appends a bookmark relation for the member. The listing must
// exist; duplicates are allowed and closed listings stay bookmarkable.
func (s *ListingService[L, E]) AddBookmark(ctx context.Context, id, memberID uint) error {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.bookmarks.Add(ctx, &models.Bookmark{
		MemberID:  memberID,
		OwnerKind: listing.ListingKind(),
		OwnerID:   listing.ListingID(),
	})
}

func (s *ListingService[L, E]) attachImages(ctx context.Context, kind models.ListingKind, id uint, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	media := make([]*models.Media, 0, len(urls))
	for _, url := range urls {
		media = append(media, &models.Media{
			OwnerKind: kind,
			OwnerID:   id,
			URL:       url,
		})
	}
	return s.media.AddAll(ctx, media)
}

func (s *ListingService[L, E]) buildDetail(ctx context.Context, listing L) (*models.ListingDetail, error) {
	detail, err := s.views.Detail(ctx, listing)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Decorate(ctx, listing, detail); err != nil {
		return nil, err
	}
	return detail, nil
}
