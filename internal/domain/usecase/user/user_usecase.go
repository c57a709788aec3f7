package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/external"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
)

// HomePath is the page whose cached rendering lists users' work
const HomePath = "/"

// UserUseCase implements the user business logic
type UserUseCase struct {
	userRepo       persistence.UserRepository
	uow            persistence.UnitOfWork
	invalidator    external.CacheInvalidator
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	initialCredits int64
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	userRepo persistence.UserRepository,
	uow persistence.UnitOfWork,
	invalidator external.CacheInvalidator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	initialCredits int64,
) usecase.UserUseCase {
	return &UserUseCase{
		userRepo:       userRepo,
		uow:            uow,
		invalidator:    invalidator,
		timeProvider:   timeProvider,
		logger:         logger,
		initialCredits: initialCredits,
	}
}

// FindOneBy returns the first user matching the filter
func (u *UserUseCase) FindOneBy(ctx context.Context, filter persistence.UserFilter) (*entity.User, error) {
	if filter.IsEmpty() {
		return nil, errs.ErrInvalidRequest
	}

	user, err := u.userRepo.FindOne(ctx, filter)
	if err != nil {
		u.logLookupFailure("Failed to find user", err, map[string]any{
			"identityId": filter.IdentityID,
			"email":      filter.Email,
			"username":   filter.Username,
		})
		return nil, err
	}
	return user, nil
}

// GetByID returns the user with the given primary key
func (u *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidRequest
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		u.logLookupFailure("Failed to get user", err, map[string]any{"userId": id})
		return nil, err
	}
	return user, nil
}

// logLookupFailure logs a missing user at warn level and anything else as an error
func (u *UserUseCase) logLookupFailure(message string, err error, fields map[string]any) {
	fields["error"] = err.Error()
	if errs.IsNotFoundError(err) {
		u.logger.Warn(message, fields)
		return
	}
	u.logger.Error(message, fields)
}

// invalidate sends a best-effort cache invalidation for path
func (u *UserUseCase) invalidate(ctx context.Context, path string) {
	if u.invalidator == nil {
		return
	}
	// the invalidator logs its own failures
	_ = u.invalidator.Invalidate(ctx, path)
}
