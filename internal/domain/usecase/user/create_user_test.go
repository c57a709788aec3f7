package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	coremocks "github.com/amirhossein-jamali/transform-studio/mocks/port/core"
	externalmocks "github.com/amirhossein-jamali/transform-studio/mocks/port/external"
	persistencemocks "github.com/amirhossein-jamali/transform-studio/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type userFixture struct {
	repo        *persistencemocks.MockUserRepository
	uow         *persistencemocks.MockUnitOfWork
	invalidator *externalmocks.MockCacheInvalidator
	timeMock    *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
}

func newUserFixture(t *testing.T) *userFixture {
	f := &userFixture{
		repo:        persistencemocks.NewMockUserRepository(t),
		uow:         persistencemocks.NewMockUnitOfWork(t),
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

func (f *userFixture) useCase() *UserUseCase {
	return NewUserUseCase(f.repo, f.uow, f.invalidator, f.timeMock, f.logger, 10).(*UserUseCase)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	params := entity.NewUserParams{
		IdentityID: "idp_1",
		Email:      "ada@example.com",
		FirstName:  "Ada",
		LastName:   "Lovelace",
	}

	t.Run("Successful user creation", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().FindOne(mock.Anything, persistence.UserFilter{IdentityID: "idp_1"}).
			Return(nil, errs.ErrUserNotFound).Once()
		f.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.IdentityID == "idp_1" && u.CreditBalance == 10 && u.ID != ""
		})).Return(nil).Once()

		user, err := f.useCase().CreateUser(ctx, params)

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, int64(10), user.CreditBalance)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		f := newUserFixture(t)

		user, err := f.useCase().CreateUser(ctx, entity.NewUserParams{FirstName: "Ada"})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrValidationMissing)
	})

	t.Run("Identity already registered", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().FindOne(mock.Anything, mock.Anything).Return(&entity.User{ID: "u1"}, nil).Once()

		user, err := f.useCase().CreateUser(ctx, params)

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrDuplicateUser, err)
	})

	t.Run("Lookup failure", func(t *testing.T) {
		f := newUserFixture(t)
		dbErr := errors.New("connection reset")
		f.repo.EXPECT().FindOne(mock.Anything, mock.Anything).Return(nil, dbErr).Once()

		user, err := f.useCase().CreateUser(ctx, params)

		assert.Nil(t, user)
		assert.Equal(t, dbErr, err)
	})

	t.Run("Repository create error", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().FindOne(mock.Anything, mock.Anything).Return(nil, errs.ErrUserNotFound).Once()
		f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser).Once()

		user, err := f.useCase().CreateUser(ctx, params)

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrDuplicateUser, err)
	})
}

func TestFindOneBy(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty filter", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.useCase().FindOneBy(ctx, persistence.UserFilter{})

		assert.Equal(t, errs.ErrInvalidRequest, err)
	})

	t.Run("Found by email", func(t *testing.T) {
		f := newUserFixture(t)
		expected := &entity.User{ID: "u1", Email: "ada@example.com"}
		f.repo.EXPECT().FindOne(mock.Anything, persistence.UserFilter{Email: "ada@example.com"}).Return(expected, nil).Once()

		user, err := f.useCase().FindOneBy(ctx, persistence.UserFilter{Email: "ada@example.com"})

		require.NoError(t, err)
		assert.Same(t, expected, user)
	})

	t.Run("Not found", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().FindOne(mock.Anything, mock.Anything).Return(nil, errs.ErrUserNotFound).Once()

		user, err := f.useCase().FindOneBy(ctx, persistence.UserFilter{Username: "ghost"})

		assert.Nil(t, user)
		assert.True(t, errs.IsNotFoundError(err))
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank id", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.useCase().GetByID(ctx, "  ")

		assert.Equal(t, errs.ErrInvalidRequest, err)
	})

	t.Run("Found", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByID(mock.Anything, "u1").Return(&entity.User{ID: "u1"}, nil).Once()

		user, err := f.useCase().GetByID(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})
}
