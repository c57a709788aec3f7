package usecase

import (
	"context"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
)

// ListImagesQuery pages through stored images, optionally narrowed by a media search expression
type ListImagesQuery struct {
	Limit       int
	Page        int
	SearchQuery string
}

// DeleteResult reports a confirmed deletion and where the caller should go next
type DeleteResult struct {
	Image        *entity.Image
	RedirectPath string
}

// ImageUseCase defines methods for image-related business operations
type ImageUseCase interface {
	// AddImage stores a new image for an existing author and invalidates invalidatePath
	AddImage(ctx context.Context, input entity.ImageInput, authorID string, invalidatePath string) (*entity.Image, error)

	// UpdateImage replaces an image the author owns and invalidates invalidatePath
	UpdateImage(ctx context.Context, imageID string, input entity.ImageInput, authorID string, invalidatePath string) (*entity.Image, error)

	// DeleteImage removes an image the requester owns
	DeleteImage(ctx context.Context, imageID string, requesterID string) (*DeleteResult, error)

	// GetImageByID returns an image with its author populated
	GetImageByID(ctx context.Context, id string) (*entity.Image, error)

	// ListImages returns a page of images, newest first
	ListImages(ctx context.Context, query ListImagesQuery) (*entity.ImagePage, error)

	// ListUserImages returns a page of images owned by authorID, newest first
	ListUserImages(ctx context.Context, authorID string, query ListImagesQuery) (*entity.ImagePage, error)
}
