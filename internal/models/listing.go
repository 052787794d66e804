// Package models defines the persistent entities and derived views of the
// marketplace core.
package models

import (
	"time"

	"gorm.io/gorm"
)

// ListingKind discriminates the two listing variants sharing the media and
// bookmark ledgers.
type ListingKind string

const (
	KindOffer   ListingKind = "offer"
	KindProduct ListingKind = "product"
)

// Listing is the common surface of both listing variants. The lifecycle
// service and the view builder work exclusively through it; everything
// variant-specific goes through a service.VariantPolicy.
type Listing interface {
	ListingID() uint
	ListingKind() ListingKind
	// AuthorID returns the owning member. Authorization itself is the
	// caller's job; the core only exposes the comparison value.
	AuthorID() uint
	// Close transitions the listing to its terminal state. Calling it on an
	// already-closed listing re-affirms the state and must not toggle.
	Close()
	Closed() bool
	Detail() *ListingDetail
	Summary() *ListingSummary
}

// Offer is a group-purchase listing.
type Offer struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	MemberID    uint           `gorm:"not null;index" json:"member_id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Category    string         `gorm:"index" json:"category"`
	Price       int            `json:"price"`
	ShopURL     string         `json:"shop_url"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	HeadCount   int            `json:"head_count"`
	IsClosing   bool           `gorm:"default:false" json:"is_closing"`
	Hits        int            `gorm:"default:0" json:"hits"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Offer) ListingID() uint          { return o.ID }
func (o *Offer) ListingKind() ListingKind { return KindOffer }
func (o *Offer) AuthorID() uint           { return o.MemberID }
func (o *Offer) Close()                   { o.IsClosing = true }
func (o *Offer) Closed() bool             { return o.IsClosing }

// Detail fills the fields the offer owns itself. Ledger-derived fields
// (thumbnail, images, counts) are left zero for the view builder.
func (o *Offer) Detail() *ListingDetail {
	return &ListingDetail{
		ID:          o.ID,
		Kind:        KindOffer,
		MemberID:    o.MemberID,
		Title:       o.Title,
		Description: o.Description,
		Category:    o.Category,
		Price:       o.Price,
		Hits:        o.Hits,
		IsClosed:    o.IsClosing,
		CreatedAt:   o.CreatedAt,
		ShopURL:     o.ShopURL,
		StartDate:   &o.StartDate,
		EndDate:     &o.EndDate,
		HeadCount:   o.HeadCount,
	}
}

func (o *Offer) Summary() *ListingSummary {
	return &ListingSummary{
		ID:       o.ID,
		Kind:     KindOffer,
		Title:    o.Title,
		Category: o.Category,
		Price:    o.Price,
		Hits:     o.Hits,
	}
}

// Product is a peer-to-peer secondhand listing.
type Product struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	MemberID             uint           `gorm:"not null;index" json:"member_id"`
	Title                string         `gorm:"not null" json:"title"`
	Description          string         `json:"description"`
	Category             string         `gorm:"index" json:"category"`
	Price                int            `json:"price"`
	IsFree               bool           `gorm:"default:false" json:"is_free"`
	IsSoldOut            bool           `gorm:"default:false" json:"is_sold_out"`
	TransactionStartTime time.Time      `json:"transaction_start_time"`
	TransactionEndTime   time.Time      `json:"transaction_end_time"`
	Hits                 int            `gorm:"default:0" json:"hits"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) ListingID() uint          { return p.ID }
func (p *Product) ListingKind() ListingKind { return KindProduct }
func (p *Product) AuthorID() uint           { return p.MemberID }
func (p *Product) Close()                   { p.IsSoldOut = true }
func (p *Product) Closed() bool             { return p.IsSoldOut }

func (p *Product) Detail() *ListingDetail {
	return &ListingDetail{
		ID:                   p.ID,
		Kind:                 KindProduct,
		MemberID:             p.MemberID,
		Title:                p.Title,
		Description:          p.Description,
		Category:             p.Category,
		Price:                p.Price,
		Hits:                 p.Hits,
		IsClosed:             p.IsSoldOut,
		CreatedAt:            p.CreatedAt,
		IsFree:               p.IsFree,
		TransactionStartTime: &p.TransactionStartTime,
		TransactionEndTime:   &p.TransactionEndTime,
	}
}

func (p *Product) Summary() *ListingSummary {
	return &ListingSummary{
		ID:       p.ID,
		Kind:     KindProduct,
		Title:    p.Title,
		Category: p.Category,
		Price:    p.Price,
		Hits:     p.Hits,
	}
}
