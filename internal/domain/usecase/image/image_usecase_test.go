package image

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/transform-studio/mocks/port/core"
	externalmocks "github.com/amirhossein-jamali/transform-studio/mocks/port/external"
	persistencemocks "github.com/amirhossein-jamali/transform-studio/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type imageFixture struct {
	images      *persistencemocks.MockImageRepository
	users       *persistencemocks.MockUserRepository
	media       *externalmocks.MockMediaService
	invalidator *externalmocks.MockCacheInvalidator
	timeMock    *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
}

func newImageFixture(t *testing.T) *imageFixture {
	f := &imageFixture{
		images:      persistencemocks.NewMockImageRepository(t),
		users:       persistencemocks.NewMockUserRepository(t),
		media:       externalmocks.NewMockMediaService(t),
		invalidator: externalmocks.NewMockCacheInvalidator(t),
		timeMock:    coremocks.NewMockTimeProvider(t),
		logger:      coremocks.NewMockLogger(t),
	}
	f.timeMock.EXPECT().Now().Return(fixedTime).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return f
}

func (f *imageFixture) useCase() *ImageUseCase {
	return NewImageUseCase(f.images, f.users, f.media, f.invalidator, f.timeMock, f.logger).(*ImageUseCase)
}

func validInput() entity.ImageInput {
	return entity.ImageInput{
		Title:              "Sunset",
		TransformationType: entity.TransformationRestore,
		PublicID:           "imaginify/abc",
		SecureURL:          "https://res.example.com/abc.png",
		Width:              800,
		Height:             600,
		Config:             entity.TransformationConfig{"restore": true},
	}
}

func TestAddImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores image and invalidates path", func(t *testing.T) {
		f := newImageFixture(t)
		f.users.EXPECT().GetByID(mock.Anything, "u1").Return(&entity.User{ID: "u1"}, nil).Once()
		f.images.EXPECT().Create(mock.Anything, mock.MatchedBy(func(img *entity.Image) bool {
			return img.AuthorID == "u1" && img.PublicID == "imaginify/abc" && img.ID != ""
		})).Return(nil).Once()
		f.invalidator.EXPECT().Invalidate(mock.Anything, "/").Return(nil).Once()

		img, err := f.useCase().AddImage(ctx, validInput(), "u1", "/")

		require.NoError(t, err)
		assert.Equal(t, "Sunset", img.Title)
		assert.Equal(t, fixedTime, img.CreatedAt)
	})

	t.Run("Unknown author", func(t *testing.T) {
		f := newImageFixture(t)
		f.users.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		img, err := f.useCase().AddImage(ctx, validInput(), "ghost", "/")

		assert.Nil(t, img)
		assert.Equal(t, errs.ErrUserNotFound, err)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		f := newImageFixture(t)
		input := validInput()
		input.PublicID = ""

		_, err := f.useCase().AddImage(ctx, input, "u1", "/")

		assert.ErrorIs(t, err, errs.ErrValidationMissing)
	})

	t.Run("Invalidation failure is not fatal", func(t *testing.T) {
		f := newImageFixture(t)
		f.users.EXPECT().GetByID(mock.Anything, "u1").Return(&entity.User{ID: "u1"}, nil).Once()
		f.images.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.invalidator.EXPECT().Invalidate(mock.Anything, "/").Return(errors.New("redis down")).Once()
		// no Warn expectation: the invalidator already logged the failure
		f.logger = coremocks.NewMockLogger(t)
		f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		img, err := f.useCase().AddImage(ctx, validInput(), "u1", "/")

		require.NoError(t, err)
		assert.NotNil(t, img)
	})
}

func TestUpdateImage(t *testing.T) {
	ctx := context.Background()
	stored := func() *entity.Image {
		return &entity.Image{
			ID:                 "img1",
			Title:              "Old",
			TransformationType: entity.TransformationRestore,
			PublicID:           "imaginify/abc",
			SecureURL:          "https://res.example.com/abc.png",
			AuthorID:           "u1",
			UpdatedAt:          fixedTime.Add(-time.Hour),
		}
	}

	t.Run("Owner replaces fields", func(t *testing.T) {
		f := newImageFixture(t)
		f.images.EXPECT().GetByID(mock.Anything, "img1").Return(stored(), nil).Once()
		f.images.EXPECT().Update(mock.Anything, mock.MatchedBy(func(img *entity.Image) bool {
			return img.Title == "Sunset" && img.UpdatedAt.Equal(fixedTime)
		})).Return(nil).Once()
		f.invalidator.EXPECT().Invalidate(mock.Anything, "/transformations/img1").Return(nil).Once()

		img, err := f.useCase().UpdateImage(ctx, "img1", validInput(), "u1", DetailPath("img1"))

		require.NoError(t, err)
		assert.Equal(t, "Sunset", img.Title)
	})

	t.Run("Non-owner is rejected and nothing is written", func(t *testing.T) {
		f := newImageFixture(t)
		f.images.EXPECT().GetByID(mock.Anything, "img1").Return(stored(), nil).Once()

		img, err := f.useCase().UpdateImage(ctx, "img1", validInput(), "u2", DetailPath("img1"))

		assert.Nil(t, img)
		assert.True(t, errs.IsUnauthorizedError(err))
		var authErr *errs.AuthorizationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "u1", authErr.OwnerID)
	})

	t.Run("Missing image", func(t *testing.T) {
		f := newImageFixture(t)
		f.images.EXPECT().GetByID(mock.Anything, "img9").Return(nil, errs.ErrImageNotFound).Once()

		_, err := f.useCase().UpdateImage(ctx, "img9", validInput(), "u1", "")

		assert.Equal(t, errs.ErrImageNotFound, err)
	})
}

func TestDeleteImage(t *testing.T) {
	ctx := context.Background()
	owned := &entity.Image{ID: "img1", AuthorID: "u1"}

	t.Run("Owner delete redirects home", func(t *testing.T) {
		f := newImageFixture(t)
		f.images.EXPECT().GetByID(mock.Anything, "img1").Return(owned, nil).Once()
		f.images.EXPECT().Delete(mock.Anything, "img1").Return(nil).Once()

		result, err := f.useCase().DeleteImage(ctx, "img1", "u1")

		require.NoError(t, err)
		assert.Equal(t, "/", result.RedirectPath)
		assert.Same(t, owned, result.Image)
	})

	t.Run("Failed delete surfaces error and no redirect", func(t *testing.T) {
		f := newImageFixture(t)
		f.images.EXPECT().GetByID(mock.Anything, "img1").Return(owned, nil).Once()
		f.images.EXPECT().Delete(mock.Anything, "img1").Return(errs.ErrDatabaseConnection).Once()

		result, err := f.useCase().DeleteImage(ctx, "img1", "u1")

		assert.Nil(t, result)
		assert.Equal(t, errs.ErrDatabaseConnection, err)
	})

	t.Run("Non-owner cannot delete", func(t *testing.T) {
		f := newImageFixture(t)
		f.images.EXPECT().GetByID(mock.Anything, "img1").Return(owned, nil).Once()

		result, err := f.useCase().DeleteImage(ctx, "img1", "u2")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Missing image", func(t *testing.T) {
		f := newImageFixture(t)
		f.images.EXPECT().GetByID(mock.Anything, "img9").Return(nil, errs.ErrImageNotFound).Once()

		_, err := f.useCase().DeleteImage(ctx, "img9", "")

		assert.Equal(t, errs.ErrImageNotFound, err)
	})
}

func TestGetImageByID(t *testing.T) {
	f := newImageFixture(t)
	expected := &entity.Image{ID: "img1", Author: &entity.ImageAuthor{ID: "u1", FirstName: "Ada"}}
	f.images.EXPECT().GetByID(mock.Anything, "img1").Return(expected, nil).Once()

	img, err := f.useCase().GetImageByID(context.Background(), "img1")

	require.NoError(t, err)
	assert.Equal(t, "Ada", img.Author.FirstName)

	_, err = f.useCase().GetImageByID(context.Background(), "")
	assert.Equal(t, errs.ErrInvalidRequest, err)
}
