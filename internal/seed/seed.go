// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"palette/internal/models"
	"palette/internal/repository"
	"palette/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumMembers  int
	NumOffers   int
	NumProducts int
	ShouldClean bool
}

var categories = []string{
	"Electronics", "Furniture", "Kitchen", "Books", "Clothing",
	"Sports", "Beauty", "Toys", "Stationery", "Plants",
}

// Run populates the database with fake offers, products, media, bookmarks,
// and participants, going through the lifecycle services so seeded data obeys
// the same write paths as real data.
func Run(db *gorm.DB, opts Options) error {
	ctx := context.Background()

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return err
		}
	}

	media := repository.NewMediaRepository(db)
	bookmarks := repository.NewBookmarkRepository(db)
	participants := repository.NewParticipantRepository(db)
	offers := service.NewOfferService(repository.NewOfferRepository(db), media, bookmarks, participants)
	products := service.NewProductService(repository.NewProductRepository(db), media, bookmarks)

	memberIDs := make([]uint, opts.NumMembers)
	for i := range memberIDs {
		memberIDs[i] = uint(i + 1)
	}
	randomMember := func() uint {
		return memberIDs[rand.Intn(len(memberIDs))]
	}

	for i := 0; i < opts.NumOffers; i++ {
		start := gofakeit.DateRange(gofakeit.Date(), gofakeit.FutureDate())
		offer := &models.Offer{
			MemberID:    randomMember(),
			Title:       gofakeit.ProductName(),
			Description: gofakeit.ProductDescription(),
			Category:    categories[rand.Intn(len(categories))],
			Price:       gofakeit.Number(1000, 200000),
			ShopURL:     gofakeit.URL(),
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, gofakeit.Number(3, 30)),
			HeadCount:   gofakeit.Number(2, 20),
		}
		detail, err := offers.Create(ctx, offer, imageURLs(gofakeit.Number(0, 4)))
		if err != nil {
			return fmt.Errorf("seed offer: %w", err)
		}
		for j := gofakeit.Number(0, 8); j > 0; j-- {
			if err := offers.AddBookmark(ctx, detail.ID, randomMember()); err != nil {
				return fmt.Errorf("seed offer bookmark: %w", err)
			}
		}
		for j := gofakeit.Number(0, offer.HeadCount); j > 0; j-- {
			if err := offers.Join(ctx, detail.ID, randomMember()); err != nil {
				return fmt.Errorf("seed offer participant: %w", err)
			}
		}
		if gofakeit.Bool() && gofakeit.Bool() {
			if _, err := offers.Close(ctx, detail.ID); err != nil {
				return fmt.Errorf("seed offer close: %w", err)
			}
		}
	}

	for i := 0; i < opts.NumProducts; i++ {
		start := gofakeit.DateRange(gofakeit.Date(), gofakeit.FutureDate())
		free := gofakeit.Number(0, 9) == 0
		price := gofakeit.Number(500, 100000)
		if free {
			price = 0
		}
		product := &models.Product{
			MemberID:             randomMember(),
			Title:                gofakeit.ProductName(),
			Description:          gofakeit.ProductDescription(),
			Category:             categories[rand.Intn(len(categories))],
			Price:                price,
			IsFree:               free,
			TransactionStartTime: start,
			TransactionEndTime:   start.AddDate(0, 0, gofakeit.Number(1, 14)),
		}
		detail, err := products.Create(ctx, product, imageURLs(gofakeit.Number(0, 4)))
		if err != nil {
			return fmt.Errorf("seed product: %w", err)
		}
		for j := gofakeit.Number(0, 8); j > 0; j-- {
			if err := products.AddBookmark(ctx, detail.ID, randomMember()); err != nil {
				return fmt.Errorf("seed product bookmark: %w", err)
			}
		}
		if gofakeit.Bool() && gofakeit.Bool() {
			if _, err := products.Close(ctx, detail.ID); err != nil {
				return fmt.Errorf("seed product close: %w", err)
			}
		}
	}

	return nil
}

func imageURLs(n int) []string {
	urls := make([]string, 0, n)
	for i := 0; i < n; i++ {
		urls = append(urls, fmt.Sprintf("https://media.example.com/%s.png", uuid.NewString()))
	}
	return urls
}

func clean(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE participants, bookmarks, media, products, offers RESTART IDENTITY CASCADE").Error
}
