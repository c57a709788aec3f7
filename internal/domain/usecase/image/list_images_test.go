package image

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListImages(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty query skips media search", func(t *testing.T) {
		f := newImageFixture(t)
		images := []*entity.Image{{ID: "a"}, {ID: "b"}}
		f.images.EXPECT().List(mock.Anything, persistence.ImageQuery{Offset: 0, Limit: 10}).
			Return(images, int64(25), nil).Once()

		page, err := f.useCase().ListImages(ctx, usecase.ListImagesQuery{})

		require.NoError(t, err)
		assert.Equal(t, images, page.Images)
		assert.Equal(t, int64(25), page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.Limit)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("Second page of ten skips the first ten", func(t *testing.T) {
		f := newImageFixture(t)
		f.images.EXPECT().List(mock.Anything, persistence.ImageQuery{Offset: 10, Limit: 10}).
			Return([]*entity.Image{{ID: "k"}}, int64(21), nil).Once()

		page, err := f.useCase().ListImages(ctx, usecase.ListImagesQuery{Limit: 10, Page: 2, SearchQuery: ""})

		require.NoError(t, err)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 10, page.Limit)
		assert.Equal(t, 3, page.TotalPages)
		f.media.AssertNotCalled(t, "SearchPublicIDs", mock.Anything, mock.Anything)
	})

	t.Run("Search restricts to matching public ids", func(t *testing.T) {
		f := newImageFixture(t)
		f.media.EXPECT().Folder().Return("imaginify").Once()
		f.media.EXPECT().SearchPublicIDs(mock.Anything, "folder=imaginify AND cat").
			Return([]string{"imaginify/cat1"}, nil).Once()
		f.images.EXPECT().List(mock.Anything, persistence.ImageQuery{
			RestrictToPublicIDs: true,
			PublicIDs:           []string{"imaginify/cat1"},
			Offset:              5,
			Limit:               5,
		}).Return([]*entity.Image{{ID: "a"}}, int64(6), nil).Once()

		page, err := f.useCase().ListImages(ctx, usecase.ListImagesQuery{Limit: 5, Page: 2, SearchQuery: " cat "})

		require.NoError(t, err)
		assert.Len(t, page.Images, 1)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("Search with no matches returns empty page", func(t *testing.T) {
		f := newImageFixture(t)
		f.media.EXPECT().Folder().Return("imaginify").Once()
		f.media.EXPECT().SearchPublicIDs(mock.Anything, mock.Anything).Return(nil, nil).Once()

		page, err := f.useCase().ListImages(ctx, usecase.ListImagesQuery{SearchQuery: "dog"})

		require.NoError(t, err)
		assert.Empty(t, page.Images)
		assert.Zero(t, page.TotalPages)
	})

	t.Run("Media failure is surfaced", func(t *testing.T) {
		f := newImageFixture(t)
		mediaErr := errs.NewExternalServiceError("media", "search", assert.AnError)
		f.media.EXPECT().Folder().Return("imaginify").Once()
		f.media.EXPECT().SearchPublicIDs(mock.Anything, mock.Anything).Return(nil, mediaErr).Once()

		_, err := f.useCase().ListImages(ctx, usecase.ListImagesQuery{SearchQuery: "dog"})

		assert.ErrorIs(t, err, errs.ErrExternalService)
	})

	t.Run("Limit is capped", func(t *testing.T) {
		f := newImageFixture(t)
		f.images.EXPECT().List(mock.Anything, persistence.ImageQuery{Limit: MaxPageSize}).
			Return(nil, int64(0), nil).Once()

		page, err := f.useCase().ListImages(ctx, usecase.ListImagesQuery{Limit: 1000})

		require.NoError(t, err)
		assert.NotNil(t, page.Images)
		assert.Equal(t, MaxPageSize, page.Limit)
	})
}

func TestListUserImages(t *testing.T) {
	ctx := context.Background()

	t.Run("Scopes listing to author", func(t *testing.T) {
		f := newImageFixture(t)
		f.images.EXPECT().List(mock.Anything, persistence.ImageQuery{AuthorID: "u1", Limit: 10}).
			Return([]*entity.Image{{ID: "a", AuthorID: "u1"}}, int64(1), nil).Once()

		page, err := f.useCase().ListUserImages(ctx, "u1", usecase.ListImagesQuery{})

		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("Blank author", func(t *testing.T) {
		f := newImageFixture(t)

		_, err := f.useCase().ListUserImages(ctx, "", usecase.ListImagesQuery{})

		assert.Equal(t, errs.ErrInvalidRequest, err)
	})
}

func TestSearchExpression(t *testing.T) {
	assert.Equal(t, "folder=imaginify", SearchExpression("imaginify", ""))
	assert.Equal(t, "folder=imaginify AND sky", SearchExpression("imaginify", "sky"))
}
