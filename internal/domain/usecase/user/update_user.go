package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
)

// UpdateUser applies a profile patch to the user with the given identity id
func (u *UserUseCase) UpdateUser(ctx context.Context, identityID string, patch entity.UserPatch) (*entity.User, error) {
	user, err := u.findByIdentity(ctx, identityID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return user, nil
	}

	if err := user.ApplyPatch(patch, u.timeProvider); err != nil {
		return nil, err
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.logger.Error("Failed to update user", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User updated", map[string]any{
		"userId":     user.ID,
		"identityId": identityID,
	})
	return user, nil
}

// DeleteUser removes the user with the given identity id
func (u *UserUseCase) DeleteUser(ctx context.Context, identityID string) (*entity.User, error) {
	user, err := u.findByIdentity(ctx, identityID)
	if err != nil {
		return nil, err
	}
	return u.delete(ctx, user)
}

// DeleteUserByID removes the user with the given primary key
func (u *UserUseCase) DeleteUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.delete(ctx, user)
}

func (u *UserUseCase) delete(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := u.userRepo.Delete(ctx, user.ID); err != nil {
		u.logger.Error("Failed to delete user", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.invalidate(ctx, HomePath)

	u.logger.Info("User deleted", map[string]any{
		"userId":     user.ID,
		"identityId": user.IdentityID,
	})
	return user, nil
}

func (u *UserUseCase) findByIdentity(ctx context.Context, identityID string) (*entity.User, error) {
	if strings.TrimSpace(identityID) == "" {
		return nil, errs.ErrInvalidRequest
	}
	return u.FindOneBy(ctx, persistence.UserFilter{IdentityID: identityID})
}
