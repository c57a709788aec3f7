package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var imageColumns = []string{
	"id", "title", "transformation_type", "public_id", "secure_url", "transformation_url",
	"width", "height", "aspect_ratio", "config", "color", "prompt", "author_id",
	"created_at", "updated_at",
}

func imageRow(rows *sqlmock.Rows, id, publicID, authorID string) *sqlmock.Rows {
	return rows.AddRow(id, "Title "+id, "recolor", publicID, "https://cdn/"+publicID, "",
		800, 600, "", []byte(`{"recolor":{"prompt":"car","to":"red"}}`), "red", "car", authorID,
		fixedTime, fixedTime)
}

func newImageRepo(t *testing.T) (*ImageRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewImageRepository(db, newTestLogger()), mock
}

func TestImageRepository_Create(t *testing.T) {
	ctx := context.Background()
	img := &entity.Image{
		ID:                 "img1",
		Title:              "Car",
		TransformationType: entity.TransformationRecolor,
		PublicID:           "imaginify/car",
		SecureURL:          "https://cdn/car",
		Config:             entity.TransformationConfig{"recolor": map[string]any{"prompt": "car"}},
		AuthorID:           "u1",
		CreatedAt:          fixedTime,
		UpdatedAt:          fixedTime,
	}

	t.Run("inserts without touching the author", func(t *testing.T) {
		repo, mock := newImageRepo(t)
		mock.ExpectExec(`INSERT INTO "images"`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Create(ctx, img))
	})

	t.Run("unknown author", func(t *testing.T) {
		repo, mock := newImageRepo(t)
		mock.ExpectExec(`INSERT INTO "images"`).
			WillReturnError(errors.New(`ERROR: insert or update on table "images" violates foreign key constraint "fk_images_author" (SQLSTATE 23503)`))

		assert.ErrorIs(t, repo.Create(ctx, img), errs.ErrConstraintViolation)
	})
}

func TestImageRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("populates author and config", func(t *testing.T) {
		repo, mock := newImageRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "images" WHERE id = \$1`).
			WillReturnRows(imageRow(sqlmock.NewRows(imageColumns), "img1", "imaginify/car", "u1"))
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id"`).
			WillReturnRows(userRow("u1", 5))

		img, err := repo.GetByID(ctx, "img1")
		require.NoError(t, err)
		assert.Equal(t, entity.TransformationRecolor, img.TransformationType)
		require.NotNil(t, img.Author)
		assert.Equal(t, "Ada", img.Author.FirstName)

		section, ok := img.Config.Section("recolor")
		require.True(t, ok)
		assert.Equal(t, "red", section["to"])
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newImageRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "images"`).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrImageNotFound)
	})
}

func TestImageRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	img := &entity.Image{ID: "img1", Title: "New", TransformationType: entity.TransformationRestore, UpdatedAt: fixedTime}

	t.Run("update", func(t *testing.T) {
		repo, mock := newImageRepo(t)
		mock.ExpectExec(`UPDATE "images" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(ctx, img))
	})

	t.Run("update missing", func(t *testing.T) {
		repo, mock := newImageRepo(t)
		mock.ExpectExec(`UPDATE "images" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, img), errs.ErrImageNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		repo, mock := newImageRepo(t)
		mock.ExpectExec(`DELETE FROM "images" WHERE id = \$1`).
			WithArgs("img1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, "img1"))
	})

	t.Run("delete missing", func(t *testing.T) {
		repo, mock := newImageRepo(t)
		mock.ExpectExec(`DELETE FROM "images"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "img1"), errs.ErrImageNotFound)
	})
}

func TestImageRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("restricted to empty id set short-circuits", func(t *testing.T) {
		repo, _ := newImageRepo(t)

		images, total, err := repo.List(ctx, persistence.ImageQuery{RestrictToPublicIDs: true, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, images)
		assert.Zero(t, total)
	})

	t.Run("author page with public id filter", func(t *testing.T) {
		repo, mock := newImageRepo(t)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "images" WHERE author_id = \$1 AND public_id IN \(\$2,\$3\)`).
			WithArgs("u1", "a", "b").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		rows := sqlmock.NewRows(imageColumns)
		imageRow(rows, "img2", "b", "u1")
		imageRow(rows, "img1", "a", "u1")
		mock.ExpectQuery(`SELECT \* FROM "images" WHERE author_id = \$1 AND public_id IN \(\$2,\$3\) ORDER BY updated_at DESC LIMIT`).
			WillReturnRows(rows)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id"`).
			WillReturnRows(userRow("u1", 5))

		images, total, err := repo.List(ctx, persistence.ImageQuery{
			RestrictToPublicIDs: true,
			PublicIDs:           []string{"a", "b"},
			AuthorID:            "u1",
			Limit:               10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, images, 2)
		assert.Equal(t, "img2", images[0].ID)
		assert.Equal(t, "u1", images[1].Author.ID)
	})

	t.Run("second page of the gallery", func(t *testing.T) {
		repo, mock := newImageRepo(t)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "images"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
		mock.ExpectQuery(`SELECT \* FROM "images" ORDER BY updated_at DESC LIMIT .+ OFFSET`).
			WillReturnRows(sqlmock.NewRows(imageColumns))

		images, total, err := repo.List(ctx, persistence.ImageQuery{Offset: 10, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(21), total)
		assert.Empty(t, images)
	})

	t.Run("count failure", func(t *testing.T) {
		repo, mock := newImageRepo(t)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "images"`).
			WillReturnError(errors.New("connection reset by peer"))

		_, _, err := repo.List(ctx, persistence.ImageQuery{Limit: 10})
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
