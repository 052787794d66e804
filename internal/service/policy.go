package service

import (
	"context"
	"time"

	"palette/internal/models"
	"palette/internal/repository"
)

// VariantPolicy is the capability interface that carries everything
// variant-specific for the shared lifecycle service: how an edit payload is
// applied to the listing, and which extra aggregates the detail view gets.
type VariantPolicy[L models.Listing, E any] interface {
	Apply(listing L, in E)
	Decorate(ctx context.Context, listing L, detail *models.ListingDetail) error
}

// EditOfferInput is the structurally validated edit payload for an offer.
// Payload shape validation belongs to the decoding collaborator; fields are
// applied as given.
type EditOfferInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int       `json:"price"`
	ShopURL     string    `json:"shop_url"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	HeadCount   int       `json:"head_count"`
}

// EditProductInput is the structurally validated edit payload for a product.
type EditProductInput struct {
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Category             string    `json:"category"`
	Price                int       `json:"price"`
	IsFree               bool      `json:"is_free"`
	TransactionStartTime time.Time `json:"transaction_start_time"`
	TransactionEndTime   time.Time `json:"transaction_end_time"`
}

// offerPolicy owns the participation ledger: offers are the only variant with
// occupancy.
type offerPolicy struct {
	participants repository.ParticipantRepository
}

func (p *offerPolicy) Apply(offer *models.Offer, in EditOfferInput) {
	offer.Title = in.Title
	offer.Description = in.Description
	offer.Category = in.Category
	offer.Price = in.Price
	offer.ShopURL = in.ShopURL
	offer.StartDate = in.StartDate
	offer.EndDate = in.EndDate
	offer.HeadCount = in.HeadCount
}

func (p *offerPolicy) Decorate(ctx context.Context, offer *models.Offer, detail *models.ListingDetail) error {
	occupancy, err := p.participants.CountForListing(ctx, offer.ID)
	if err != nil {
		return err
	}
	detail.Occupancy = occupancy
	return nil
}

type productPolicy struct{}

func (productPolicy) Apply(product *models.Product, in EditProductInput) {
	product.Title = in.Title
	product.Description = in.Description
	product.Category = in.Category
	product.Price = in.Price
	product.IsFree = in.IsFree
	product.TransactionStartTime = in.TransactionStartTime
	product.TransactionEndTime = in.TransactionEndTime
}

// Decorate is a no-op: the product's detail has no ledger-derived fields
// beyond the common ones.
func (productPolicy) Decorate(context.Context, *models.Product, *models.ListingDetail) error {
	return nil
}
