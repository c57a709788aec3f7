package persistence

import (
	"context"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
)

// UserFilter selects a user by any combination of its unique attributes
type UserFilter struct {
	IdentityID string
	Email      string
	Username   string
}

// IsEmpty reports whether the filter has no criteria
func (f UserFilter) IsEmpty() bool {
	return f.IdentityID == "" && f.Email == "" && f.Username == ""
}

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// Create inserts a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If the identity id, email or username is taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by primary key
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// FindOne returns the first user matching every non-empty filter field
	//
	// Possible errors:
	// - ErrUserNotFound: If no user matches
	// - ErrDatabaseConnection: If database connection fails
	FindOne(ctx context.Context, filter UserFilter) (*entity.User, error)

	// Update persists the profile fields of an existing user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDuplicateUser: If the new email or username is taken
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by primary key
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id string) error

	// IncrementCredits atomically adds a signed delta to the credit balance with no floor
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	IncrementCredits(ctx context.Context, id string, delta int64) (*entity.User, error)

	// SpendCredits atomically subtracts fee only when the balance covers it
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrInsufficientCredits: If the balance would become negative
	// - ErrDatabaseConnection: If database connection fails
	SpendCredits(ctx context.Context, id string, fee int64) (*entity.User, error)
}
