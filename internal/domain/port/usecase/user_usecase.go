package usecase

import (
	"context"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
)

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// CreateUser registers a user mirrored from the identity provider with the starting credit grant
	CreateUser(ctx context.Context, params entity.NewUserParams) (*entity.User, error)

	// FindOneBy returns the first user matching the filter
	FindOneBy(ctx context.Context, filter persistence.UserFilter) (*entity.User, error)

	// GetByID returns the user with the given primary key
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateUser applies a profile patch to the user with the given identity id
	UpdateUser(ctx context.Context, identityID string, patch entity.UserPatch) (*entity.User, error)

	// DeleteUser removes the user with the given identity id and returns the removed record
	DeleteUser(ctx context.Context, identityID string) (*entity.User, error)

	// DeleteUserByID removes the user with the given primary key and returns the removed record
	DeleteUserByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateCredits atomically adds a signed delta to the balance and records it in the ledger.
	// No floor is enforced: explicit adjustments may drive the balance negative.
	UpdateCredits(ctx context.Context, id string, delta int64, reason entity.CreditReason, reference string) (*entity.User, error)

	// SpendCredits deducts fee only when the balance covers it, failing with ErrInsufficientCredits otherwise
	SpendCredits(ctx context.Context, id string, fee int64, reference string) (*entity.User, error)

	// CreditHistory returns the most recent ledger entries for a user
	CreditHistory(ctx context.Context, id string, limit int) ([]*entity.CreditTransaction, error)
}
