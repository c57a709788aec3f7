package persistence

import (
	"context"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
)

// CreditTransactionRepository stores the credit ledger
type CreditTransactionRepository interface {
	// Create appends a ledger entry
	//
	// Possible errors:
	// - ErrConstraintViolation: If the referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, entry *entity.CreditTransaction) error

	// ListByUser returns the most recent entries for a user, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.CreditTransaction, error)

	// ExistsByReference reports whether an entry with this reason and reference is already recorded
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ExistsByReference(ctx context.Context, reason entity.CreditReason, reference string) (bool, error)
}
