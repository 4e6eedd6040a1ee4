package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

var garmentCols = []string{
	"id", "owner_id", "name", "category", "main_color", "secondary_colors", "formality", "style_tags",
	"fit", "warmth", "pattern", "fabric", "season_tags", "notes", "image_url", "created_at", "updated_at",
}

func setupMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestGarmentRepository_Create(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewGarmentRepository(db)

	now := time.Now()
	g := &domain.Garment{
		OwnerID:   "owner-1",
		Name:      "White tee",
		Category:  domain.CategoryTop,
		MainColor: "white",
		Formality: 2,
		Warmth:    1,
		Pattern:   domain.PatternSolid,
		Fabric:    "cotton",
	}

	mock.ExpectQuery(`INSERT INTO garments`).
		WithArgs(
			sqlmock.AnyArg(), // id
			"owner-1",
			"White tee",
			"top",
			"white",
			sqlmock.AnyArg(), // secondary_colors
			int64(2),
			sqlmock.AnyArg(), // style_tags
			nil,              // fit
			int64(1),
			"solid",
			"cotton",
			sqlmock.AnyArg(), // season_tags
			nil,              // notes
			nil,              // image_url
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.Create(context.Background(), g))
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, now, g.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGarmentRepository_List(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewGarmentRepository(db)

	now := time.Now()
	mock.ExpectQuery(`FROM garments WHERE owner_id = \$1 ORDER BY created_at DESC`).
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows(garmentCols).
			AddRow("g1", "owner-1", "Tee", "top", "white", "{}", int64(2), "{minimal,casual}",
				"regular", int64(1), "solid", "cotton", "{summer}", nil, "https://img/g1.jpg", now, now).
			AddRow("g2", "owner-1", "Jeans", "bottom", "black", "{grey}", int64(2), "{}",
				nil, int64(2), "solid", "denim", "{}", "note", nil, now, now))

	got, err := repo.List(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, domain.CategoryTop, got[0].Category)
	assert.Equal(t, []string{"minimal", "casual"}, got[0].StyleTags)
	require.NotNil(t, got[0].Fit)
	assert.Equal(t, domain.FitRegular, *got[0].Fit)
	require.NotNil(t, got[0].ImageURL)
	assert.Nil(t, got[0].Notes)

	assert.Nil(t, got[1].Fit)
	assert.Equal(t, []string{"grey"}, got[1].SecondaryColors)
	require.NotNil(t, got[1].Notes)
	assert.Equal(t, "note", *got[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGarmentRepository_Get(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewGarmentRepository(db)

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM garments WHERE owner_id = \$1 AND id = \$2`).
			WithArgs("owner-1", "missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), "owner-1", "missing")
		assert.ErrorIs(t, err, domain.ErrGarmentNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGarmentRepository_Update(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewGarmentRepository(db)

	mock.ExpectQuery(`UPDATE garments`).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	err := repo.Update(context.Background(), &domain.Garment{ID: "g1", OwnerID: "owner-1"})
	assert.ErrorIs(t, err, domain.ErrGarmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGarmentRepository_Delete(t *testing.T) {
	t.Run("removes links and garment in one transaction", func(t *testing.T) {
		db, mock := setupMock(t)
		repo := NewGarmentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM links`).
			WithArgs("owner-1", "g1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM garments`).
			WithArgs("owner-1", "g1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), "owner-1", "g1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the garment does not exist", func(t *testing.T) {
		db, mock := setupMock(t)
		repo := NewGarmentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM links`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM garments`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), "owner-1", "missing")
		assert.ErrorIs(t, err, domain.ErrGarmentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
