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

func TestMediaRepository_AddAll(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	batch := []*models.Media{
		{OwnerKind: models.KindOffer, OwnerID: 1, URL: "a.png"},
		{OwnerKind: models.KindOffer, OwnerID: 1, URL: "b.png"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "media"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	assert.NoError(t, repo.AddAll(ctx, batch))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaRepository_AddAll_EmptyBatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMediaRepository(db)

	// No SQL expected at all.
	assert.NoError(t, repo.AddAll(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaRepository_DeleteByURL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "media" WHERE url = $1 ORDER BY "media"."id" LIMIT $2`)).
		WithArgs("a.png", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_kind", "owner_id", "url"}).
			AddRow(3, "offer", 1, "a.png"))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "media"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.DeleteByURL(ctx, "a.png"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaRepository_DeleteByURL_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "media" WHERE url = $1`)).
		WithArgs("missing.png", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.DeleteByURL(ctx, "missing.png")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaRepository_URLsForListing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "url" FROM "media" WHERE owner_kind = $1 AND owner_id = $2 ORDER BY id ASC`)).
		WithArgs("product", 5).
		WillReturnRows(sqlmock.NewRows([]string{"url"}).AddRow("a.png").AddRow("b.png"))

	urls, err := repo.URLsForListing(ctx, models.KindProduct, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.png"}, urls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
