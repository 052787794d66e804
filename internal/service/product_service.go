package service

import (
	"palette/internal/models"
	"palette/internal/repository"
)

// ProductService is the lifecycle service for secondhand products.
type ProductService struct {
	*ListingService[*models.Product, EditProductInput]
}

// NewProductService wires the product lifecycle over the product store and
// the shared ledgers.
func NewProductService(
	repo repository.ListingRepository[*models.Product],
	media repository.MediaRepository,
	bookmarks repository.BookmarkRepository,
) *ProductService {
	return &ProductService{
		ListingService: NewListingService[*models.Product, EditProductInput](
			repo, media, bookmarks, productPolicy{},
		),
	}
}
