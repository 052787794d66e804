// Package repository provides data access layer implementations for the
// marketplace core.
package repository

import (
	"context"
	"errors"

	"palette/internal/models"

	"gorm.io/gorm"
)

// ListingRepository is the keyed CRUD store for one listing variant.
type ListingRepository[L models.Listing] interface {
	Create(ctx context.Context, listing L) error
	// GetByID fails with a NOT_FOUND AppError when the id is absent.
	GetByID(ctx context.Context, id uint) (L, error)
	// List returns every listing of the variant. Full scan; feeds at this
	// scale do not paginate.
	List(ctx context.Context) ([]L, error)
	Update(ctx context.Context, listing L) error
	// Delete removes the listing row only. Ledger rows are not cascaded and
	// deleting an absent id is not an error.
	Delete(ctx context.Context, id uint) error
	// IncrementHits bumps the monotonic view counter on the listing row.
	IncrementHits(ctx context.Context, id uint) error
}

// listingPtr constrains L to a pointer to a listing struct so the repository
// can allocate records itself.
type listingPtr[T any] interface {
	*T
	models.Listing
}

// listingRepository implements ListingRepository for both variants.
type listingRepository[T any, L listingPtr[T]] struct {
	db   *gorm.DB
	kind models.ListingKind
}

// NewOfferRepository creates the offer listing store.
func NewOfferRepository(db *gorm.DB) ListingRepository[*models.Offer] {
	return &listingRepository[models.Offer, *models.Offer]{db: db, kind: models.KindOffer}
}

// NewProductRepository creates the product listing store.
func NewProductRepository(db *gorm.DB) ListingRepository[*models.Product] {
	return &listingRepository[models.Product, *models.Product]{db: db, kind: models.KindProduct}
}

func (r *listingRepository[T, L]) Create(ctx context.Context, listing L) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository[T, L]) GetByID(ctx context.Context, id uint) (L, error) {
	var rec T
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		var zero L
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, models.NewNotFoundError(string(r.kind), id)
		}
		return zero, err
	}
	return L(&rec), nil
}

func (r *listingRepository[T, L]) List(ctx context.Context) ([]L, error) {
	var recs []T
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error
	if err != nil {
		return nil, err
	}
	listings := make([]L, 0, len(recs))
	for i := range recs {
		listings = append(listings, L(&recs[i]))
	}
	return listings, nil
}

func (r *listingRepository[T, L]) Update(ctx context.Context, listing L) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

func (r *listingRepository[T, L]) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(new(T), id).Error
}

func (r *listingRepository[T, L]) IncrementHits(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Update("hits", gorm.Expr("hits + 1")).Error
}
