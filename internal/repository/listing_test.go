package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"palette/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOfferRepository(db)
	ctx := context.Background()

	offer := &models.Offer{MemberID: 7, Title: "Bulk coffee beans", Price: 12000}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "offers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, offer)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), offer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOfferRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "offers" WHERE "offers"."id" = $1 AND "offers"."deleted_at" IS NULL ORDER BY "offers"."id" LIMIT $2`)).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "title", "hits"}).
			AddRow(1, 7, "Bulk coffee beans", 3))

	offer, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(7), offer.MemberID)
	assert.Equal(t, "Bulk coffee beans", offer.Title)
	assert.Equal(t, 3, offer.Hits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(ctx, 42)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_Delete_AbsentIsSilent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOfferRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "offers" SET "deleted_at"=`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(ctx, 99))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_IncrementHits(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOfferRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "offers" SET "hits"=hits + 1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.IncrementHits(ctx, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
