package persistence

import (
	"context"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
)

// ImageQuery narrows and pages an image listing.
// Results are always ordered by UpdatedAt, newest first.
type ImageQuery struct {
	// RestrictToPublicIDs limits results to PublicIDs, even when it is empty
	RestrictToPublicIDs bool
	PublicIDs           []string
	AuthorID            string
	Offset              int
	Limit               int
}

// ImageRepository defines essential methods to interact with image data
type ImageRepository interface {
	// Create inserts a new image
	//
	// Possible errors:
	// - ErrConstraintViolation: If the author reference is invalid
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, image *entity.Image) error

	// GetByID retrieves an image with its author populated
	//
	// Possible errors:
	// - ErrImageNotFound: If image with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Image, error)

	// Update replaces the mutable fields of an existing image
	//
	// Possible errors:
	// - ErrImageNotFound: If image doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, image *entity.Image) error

	// Delete removes an image by primary key
	//
	// Possible errors:
	// - ErrImageNotFound: If image doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id string) error

	// List returns one page of images with authors populated and the total match count
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context, query ImageQuery) ([]*entity.Image, int64, error)
}
