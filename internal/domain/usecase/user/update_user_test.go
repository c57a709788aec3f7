package user

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	coremocks "github.com/amirhossein-jamali/transform-studio/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	byIdentity := persistence.UserFilter{IdentityID: "idp_1"}

	t.Run("Applies patch", func(t *testing.T) {
		f := newUserFixture(t)
		existing := &entity.User{ID: "u1", IdentityID: "idp_1", Email: "old@example.com", FirstName: "Ada"}
		f.repo.EXPECT().FindOne(mock.Anything, byIdentity).Return(existing, nil).Once()
		f.repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "new@example.com" && u.FirstName == "Ada"
		})).Return(nil).Once()

		user, err := f.useCase().UpdateUser(ctx, "idp_1", entity.UserPatch{Email: strPtr("new@example.com")})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Empty patch returns user unchanged", func(t *testing.T) {
		f := newUserFixture(t)
		existing := &entity.User{ID: "u1", IdentityID: "idp_1"}
		f.repo.EXPECT().FindOne(mock.Anything, byIdentity).Return(existing, nil).Once()

		user, err := f.useCase().UpdateUser(ctx, "idp_1", entity.UserPatch{})

		require.NoError(t, err)
		assert.Same(t, existing, user)
	})

	t.Run("Blank email rejected", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().FindOne(mock.Anything, byIdentity).Return(&entity.User{ID: "u1"}, nil).Once()

		_, err := f.useCase().UpdateUser(ctx, "idp_1", entity.UserPatch{Email: strPtr(" ")})

		assert.ErrorIs(t, err, errs.ErrValidationMissing)
	})

	t.Run("Unknown identity", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().FindOne(mock.Anything, byIdentity).Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.useCase().UpdateUser(ctx, "idp_1", entity.UserPatch{FirstName: strPtr("A")})

		assert.Equal(t, errs.ErrUserNotFound, err)
	})

	t.Run("Blank identity", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.useCase().UpdateUser(ctx, "", entity.UserPatch{FirstName: strPtr("A")})

		assert.Equal(t, errs.ErrInvalidRequest, err)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes and invalidates home", func(t *testing.T) {
		f := newUserFixture(t)
		existing := &entity.User{ID: "u1", IdentityID: "idp_1"}
		f.repo.EXPECT().FindOne(mock.Anything, persistence.UserFilter{IdentityID: "idp_1"}).Return(existing, nil).Once()
		f.repo.EXPECT().Delete(mock.Anything, "u1").Return(nil).Once()
		f.invalidator.EXPECT().Invalidate(mock.Anything, "/").Return(nil).Once()

		user, err := f.useCase().DeleteUser(ctx, "idp_1")

		require.NoError(t, err)
		assert.Same(t, existing, user)
	})

	t.Run("Invalidation failure is not fatal", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByID(mock.Anything, "u1").Return(&entity.User{ID: "u1"}, nil).Once()
		f.repo.EXPECT().Delete(mock.Anything, "u1").Return(nil).Once()
		f.invalidator.EXPECT().Invalidate(mock.Anything, "/").Return(errors.New("redis down")).Once()
		// no Warn expectation: the invalidator already logged the failure
		f.logger = coremocks.NewMockLogger(t)
		f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		user, err := f.useCase().DeleteUserByID(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("Missing user", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByID(mock.Anything, "u9").Return(nil, errs.ErrUserNotFound).Once()

		user, err := f.useCase().DeleteUserByID(ctx, "u9")

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrUserNotFound, err)
	})

	t.Run("Delete failure skips invalidation", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByID(mock.Anything, "u1").Return(&entity.User{ID: "u1"}, nil).Once()
		f.repo.EXPECT().Delete(mock.Anything, "u1").Return(errs.ErrDatabaseConnection).Once()

		_, err := f.useCase().DeleteUserByID(ctx, "u1")

		assert.Equal(t, errs.ErrDatabaseConnection, err)
	})
}
