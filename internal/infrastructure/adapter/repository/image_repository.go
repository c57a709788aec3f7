package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ImageRepository implements ImageRepository interface using GORM
type ImageRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewImageRepository creates a new ImageRepository instance
func NewImageRepository(db *gorm.DB, logger coreport.Logger) *ImageRepository {
	return &ImageRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func imageToModel(img *entity.Image) model.Image {
	return model.Image{
		ID:                 img.ID,
		Title:              img.Title,
		TransformationType: string(img.TransformationType),
		PublicID:           img.PublicID,
		SecureURL:          img.SecureURL,
		TransformationURL:  img.TransformationURL,
		Width:              img.Width,
		Height:             img.Height,
		AspectRatio:        img.AspectRatio,
		Config:             model.JSONMap(img.Config),
		Color:              img.Color,
		Prompt:             img.Prompt,
		AuthorID:           img.AuthorID,
		CreatedAt:          img.CreatedAt,
		UpdatedAt:          img.UpdatedAt,
	}
}

func modelToImage(m *model.Image) *entity.Image {
	img := &entity.Image{
		ID:                 m.ID,
		Title:              m.Title,
		TransformationType: entity.TransformationType(m.TransformationType),
		PublicID:           m.PublicID,
		SecureURL:          m.SecureURL,
		TransformationURL:  m.TransformationURL,
		Width:              m.Width,
		Height:             m.Height,
		AspectRatio:        m.AspectRatio,
		Config:             entity.TransformationConfig(m.Config),
		Color:              m.Color,
		Prompt:             m.Prompt,
		AuthorID:           m.AuthorID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.Author.ID != "" {
		img.Author = &entity.ImageAuthor{
			ID:        m.Author.ID,
			FirstName: m.Author.FirstName,
			LastName:  m.Author.LastName,
		}
	}
	return img
}

// handleDatabaseError standardizes database error handling
func (r *ImageRepository) handleDatabaseError(operation string, err error, imageID string) error {
	if r.errorClassifier.Classify(err) != NotFoundError {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"imageId": imageID,
			"error":   err.Error(),
		})
	}
	return r.errorClassifier.ToDomain(err, errs.ErrImageNotFound, nil)
}

// Create inserts a new image
func (r *ImageRepository) Create(ctx context.Context, image *entity.Image) error {
	imageModel := imageToModel(image)

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&imageModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating image", result.Error, image.ID)
	}
	return nil
}

// GetByID retrieves an image with its author populated
func (r *ImageRepository) GetByID(ctx context.Context, id string) (*entity.Image, error) {
	var imageModel model.Image
	result := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&imageModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting image", result.Error, id)
	}

	return modelToImage(&imageModel), nil
}

// Update replaces the mutable fields of an existing image
func (r *ImageRepository) Update(ctx context.Context, image *entity.Image) error {
	result := r.db.WithContext(ctx).Model(&model.Image{}).
		Where("id = ?", image.ID).
		Updates(map[string]interface{}{
			"title":               image.Title,
			"transformation_type": string(image.TransformationType),
			"public_id":           image.PublicID,
			"secure_url":          image.SecureURL,
			"transformation_url":  image.TransformationURL,
			"width":               image.Width,
			"height":              image.Height,
			"aspect_ratio":        image.AspectRatio,
			"config":              model.JSONMap(image.Config),
			"color":               image.Color,
			"prompt":              image.Prompt,
			"updated_at":          image.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating image", result.Error, image.ID)
	}

	if result.RowsAffected == 0 {
		return errs.ErrImageNotFound
	}
	return nil
}

// Delete removes an image by primary key
func (r *ImageRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Image{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting image", result.Error, id)
	}

	if result.RowsAffected == 0 {
		return errs.ErrImageNotFound
	}
	return nil
}

// List returns one page of images, newest first, with the total match count
func (r *ImageRepository) List(ctx context.Context, q persistence.ImageQuery) ([]*entity.Image, int64, error) {
	if q.RestrictToPublicIDs && len(q.PublicIDs) == 0 {
		return []*entity.Image{}, 0, nil
	}

	query := r.db.WithContext(ctx).Model(&model.Image{})
	if q.AuthorID != "" {
		query = query.Where("author_id = ?", q.AuthorID)
	}
	if q.RestrictToPublicIDs {
		query = query.Where("public_id IN ?", q.PublicIDs)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting images", err, "")
	}

	var models []model.Image
	page := query.Preload("Author").Order("updated_at DESC")
	if q.Offset > 0 {
		page = page.Offset(q.Offset)
	}
	if q.Limit > 0 {
		page = page.Limit(q.Limit)
	}
	if err := page.Find(&models).Error; err != nil {
		return nil, 0, r.handleDatabaseError("listing images", err, "")
	}

	images := make([]*entity.Image, 0, len(models))
	for i := range models {
		images = append(images, modelToImage(&models[i]))
	}

	r.logger.Debug("Images listed", map[string]any{
		"authorId": q.AuthorID,
		"count":    len(images),
		"total":    total,
	})
	return images, total, nil
}
