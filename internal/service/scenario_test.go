package service

import (
	"context"
	"fmt"
	"testing"

	"palette/internal/database"
	"palette/internal/models"
	"palette/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens an isolated in-memory sqlite database with the full
// schema migrated. Shared cache plus a single connection keeps the memory
// database alive across gorm's pooled connections.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func TestOfferLifecycleAgainstDatabase(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	offers := repository.NewOfferRepository(db)
	media := repository.NewMediaRepository(db)
	bookmarks := repository.NewBookmarkRepository(db)
	participants := repository.NewParticipantRepository(db)
	svc := NewOfferService(offers, media, bookmarks, participants)

	created, err := svc.Create(ctx, &models.Offer{
		MemberID:  7,
		Title:     "Bulk roast beans",
		Category:  "food",
		Price:     18000,
		HeadCount: 10,
	}, []string{"https://img.test/a.png", "https://img.test/b.png"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "https://img.test/a.png", created.Thumbnail)

	require.NoError(t, svc.AddBookmark(ctx, created.ID, 11))
	require.NoError(t, svc.Join(ctx, created.ID, 11))
	require.NoError(t, svc.Join(ctx, created.ID, 12))

	tracker := NewHitTracker(nil, models.KindOffer, offers)
	require.NoError(t, tracker.Touch(ctx, created.ID, 11))
	require.NoError(t, tracker.Touch(ctx, created.ID, 0))

	detail, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.BookmarkCount)
	assert.Equal(t, 2, detail.Occupancy)
	assert.Equal(t, 2, detail.Hits)
	assert.False(t, detail.IsClosed)

	closed, err := svc.Close(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)

	// Closing is terminal; a second close keeps the state.
	closed, err = svc.Close(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)

	authorID, err := svc.AuthorID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), authorID)

	require.NoError(t, svc.DeleteImages(ctx, []string{"https://img.test/a.png"}))
	detail, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://img.test/b.png", detail.Thumbnail)
	assert.Equal(t, []string{"https://img.test/b.png"}, detail.Images)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assertNotFound(t, err)
}

func TestVariantsShareLedgersWithoutCrosstalk(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	media := repository.NewMediaRepository(db)
	bookmarks := repository.NewBookmarkRepository(db)
	offerSvc := NewOfferService(repository.NewOfferRepository(db), media, bookmarks, repository.NewParticipantRepository(db))
	productSvc := NewProductService(repository.NewProductRepository(db), media, bookmarks)

	offer, err := offerSvc.Create(ctx, &models.Offer{MemberID: 1, Title: "Offer one"}, []string{"offer.png"})
	require.NoError(t, err)
	product, err := productSvc.Create(ctx, &models.Product{MemberID: 2, Title: "Product one"}, []string{"product.png"})
	require.NoError(t, err)

	// Same numeric id in both variants; the ledgers must not bleed.
	require.Equal(t, offer.ID, product.ID)

	require.NoError(t, offerSvc.AddBookmark(ctx, offer.ID, 5))

	offerDetail, err := offerSvc.Get(ctx, offer.ID)
	require.NoError(t, err)
	productDetail, err := productSvc.Get(ctx, product.ID)
	require.NoError(t, err)

	assert.Equal(t, "offer.png", offerDetail.Thumbnail)
	assert.Equal(t, "product.png", productDetail.Thumbnail)
	assert.Equal(t, 1, offerDetail.BookmarkCount)
	assert.Equal(t, 0, productDetail.BookmarkCount)
}

func TestFeedOrderIsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	products := repository.NewProductRepository(db)
	svc := NewProductService(products, repository.NewMediaRepository(db), repository.NewBookmarkRepository(db))

	for i := 1; i <= 3; i++ {
		_, err := svc.Create(ctx, &models.Product{MemberID: 1, Title: fmt.Sprintf("Product %d", i)}, nil)
		require.NoError(t, err)
	}

	summaries, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, models.NoThumbnail, summaries[0].Thumbnail)
}
