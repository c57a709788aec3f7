package external

import (
	"context"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
)

// MediaService is the hosted store that keeps uploads and renders transformations on demand
type MediaService interface {
	// SearchPublicIDs returns the public ids of stored objects matching a search expression
	//
	// Possible errors:
	// - ErrExternalService: If the media service rejects or cannot be reached
	SearchPublicIDs(ctx context.Context, expression string) ([]string, error)

	// BuildTransformationURL derives the delivery URL that renders config applied to publicID
	//
	// Possible errors:
	// - ErrInvalidRequest: If publicID is empty
	BuildTransformationURL(publicID string, width, height int, config entity.TransformationConfig) (string, error)

	// Folder is the logical folder all uploads live under
	Folder() string
}
