package image

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/external"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	"github.com/google/uuid"
)

const (
	// HomePath is where callers land after deleting an image
	HomePath = "/"

	// DefaultPageSize applies when a listing asks for no explicit limit
	DefaultPageSize = 10

	// MaxPageSize bounds a single listing page
	MaxPageSize = 100
)

// DetailPath returns the page path of a stored image
func DetailPath(imageID string) string {
	return "/transformations/" + imageID
}

// ImageUseCase implements the image business logic
type ImageUseCase struct {
	imageRepo    persistence.ImageRepository
	userRepo     persistence.UserRepository
	media        external.MediaService
	invalidator  external.CacheInvalidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewImageUseCase creates a new image use case instance
func NewImageUseCase(
	imageRepo persistence.ImageRepository,
	userRepo persistence.UserRepository,
	media external.MediaService,
	invalidator external.CacheInvalidator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.ImageUseCase {
	return &ImageUseCase{
		imageRepo:    imageRepo,
		userRepo:     userRepo,
		media:        media,
		invalidator:  invalidator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AddImage stores a new image for an existing author
func (u *ImageUseCase) AddImage(
	ctx context.Context,
	input entity.ImageInput,
	authorID string,
	invalidatePath string,
) (*entity.Image, error) {
	if strings.TrimSpace(authorID) == "" {
		return nil, errs.ErrInvalidRequest
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The author must exist before anything is written
	if _, err := u.userRepo.GetByID(ctx, authorID); err != nil {
		u.logger.Warn("Image author lookup failed", map[string]any{
			"authorId": authorID,
			"error":    err.Error(),
		})
		return nil, err
	}

	image, err := entity.NewImage(uuid.NewString(), input, authorID, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.imageRepo.Create(ctx, image); err != nil {
		u.logger.Error("Failed to create image", map[string]any{
			"authorId": authorID,
			"publicId": input.PublicID,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.invalidate(ctx, invalidatePath)

	u.logger.Info("Image added", map[string]any{
		"imageId":            image.ID,
		"authorId":           authorID,
		"transformationType": string(image.TransformationType),
	})
	return image, nil
}

// UpdateImage replaces the fields of an image the author owns
func (u *ImageUseCase) UpdateImage(
	ctx context.Context,
	imageID string,
	input entity.ImageInput,
	authorID string,
	invalidatePath string,
) (*entity.Image, error) {
	if strings.TrimSpace(imageID) == "" || strings.TrimSpace(authorID) == "" {
		return nil, errs.ErrInvalidRequest
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	image, err := u.ownedImage(ctx, imageID, authorID)
	if err != nil {
		return nil, err
	}

	if err := image.Replace(input, u.timeProvider); err != nil {
		return nil, err
	}

	if err := u.imageRepo.Update(ctx, image); err != nil {
		u.logger.Error("Failed to update image", map[string]any{
			"imageId": imageID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.invalidate(ctx, invalidatePath)

	u.logger.Info("Image updated", map[string]any{
		"imageId":  imageID,
		"authorId": authorID,
	})
	return image, nil
}

// DeleteImage removes an image and reports where to navigate afterwards
func (u *ImageUseCase) DeleteImage(ctx context.Context, imageID string, requesterID string) (*usecase.DeleteResult, error) {
	if strings.TrimSpace(imageID) == "" {
		return nil, errs.ErrInvalidRequest
	}

	var (
		image *entity.Image
		err   error
	)
	if requesterID != "" {
		image, err = u.ownedImage(ctx, imageID, requesterID)
	} else {
		image, err = u.GetImageByID(ctx, imageID)
	}
	if err != nil {
		return nil, err
	}

	if err := u.imageRepo.Delete(ctx, imageID); err != nil {
		u.logger.Error("Failed to delete image", map[string]any{
			"imageId": imageID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Image deleted", map[string]any{
		"imageId":     imageID,
		"requesterId": requesterID,
	})
	return &usecase.DeleteResult{Image: image, RedirectPath: HomePath}, nil
}

// GetImageByID returns an image with its author populated
func (u *ImageUseCase) GetImageByID(ctx context.Context, id string) (*entity.Image, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidRequest
	}

	image, err := u.imageRepo.GetByID(ctx, id)
	if err != nil {
		if errs.IsNotFoundError(err) {
			u.logger.Warn("Image not found", map[string]any{"imageId": id})
		} else {
			u.logger.Error("Failed to get image", map[string]any{
				"imageId": id,
				"error":   err.Error(),
			})
		}
		return nil, err
	}
	return image, nil
}

// ownedImage loads an image and checks that userID is its author
func (u *ImageUseCase) ownedImage(ctx context.Context, imageID, userID string) (*entity.Image, error) {
	image, err := u.GetImageByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if !image.OwnedBy(userID) {
		authErr := errs.NewAuthorizationError("image", imageID, userID, image.AuthorID)
		u.logger.Warn("Image ownership check failed", errs.LogFields(authErr))
		return nil, authErr
	}
	return image, nil
}

func (u *ImageUseCase) invalidate(ctx context.Context, path string) {
	if u.invalidator == nil || path == "" {
		return
	}
	// the invalidator logs its own failures
	_ = u.invalidator.Invalidate(ctx, path)
}
