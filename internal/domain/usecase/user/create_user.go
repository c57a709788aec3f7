package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// CreateUser registers a user mirrored from the identity provider
func (u *UserUseCase) CreateUser(ctx context.Context, params entity.NewUserParams) (*entity.User, error) {
	user, err := entity.NewUser(uuid.NewString(), params, u.initialCredits, u.timeProvider)
	if err != nil {
		return nil, err
	}

	// Check if the identity is already registered
	existing, err := u.userRepo.FindOne(ctx, persistence.UserFilter{IdentityID: params.IdentityID})
	if err != nil && !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrDuplicateUser
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"identityId": params.IdentityID,
			"error":      err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":         user.ID,
		"identityId":     user.IdentityID,
		"initialCredits": user.CreditBalance,
	})

	return user, nil
}
