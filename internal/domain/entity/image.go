package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
)

// ImageAuthor is the public projection of the user who owns an image
type ImageAuthor struct {
	ID        string
	FirstName string
	LastName  string
}

// Image represents a transformed image record
type Image struct {
	ID                 string               // Unique identifier for the image
	Title              string               // Display title
	TransformationType TransformationType   // Preset applied to the image
	PublicID           string               // Object identifier in the media store
	SecureURL          string               // HTTPS URL of the original upload
	TransformationURL  string               // Rendered URL of the transformed image
	Width              int                  // Pixel width, zero when unknown
	Height             int                  // Pixel height, zero when unknown
	AspectRatio        string               // Aspect ratio preset key, fill only
	Config             TransformationConfig // Resolved transformation parameters
	Color              string               // Target color, recolor only
	Prompt             string               // Object prompt, remove and recolor only
	AuthorID           string               // Owning user
	Author             *ImageAuthor         // Populated on reads
	CreatedAt          time.Time            // When the image was created
	UpdatedAt          time.Time            // When the image was last updated
}

// ImageInput carries the mutable fields of an image
type ImageInput struct {
	Title              string
	TransformationType TransformationType
	PublicID           string
	SecureURL          string
	TransformationURL  string
	Width              int
	Height             int
	AspectRatio        string
	Config             TransformationConfig
	Color              string
	Prompt             string
}

// Validate checks the fields every stored image must carry
func (in ImageInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.PublicID) == "" {
		missing = append(missing, "publicId")
	}
	if strings.TrimSpace(in.SecureURL) == "" {
		missing = append(missing, "secureUrl")
	}
	if len(missing) > 0 {
		return errs.NewValidationError(missing...)
	}
	if !in.TransformationType.IsValid() {
		return errs.ErrInvalidTransformationType
	}
	if in.Width < 0 || in.Height < 0 {
		return errs.ErrInvalidRequest
	}
	return nil
}

// NewImage creates a new image owned by authorID
func NewImage(id string, input ImageInput, authorID string, timeProvider coreport.TimeProvider) (*Image, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(authorID) == "" {
		return nil, errs.ErrInvalidRequest
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	img := &Image{
		ID:        id,
		AuthorID:  authorID,
		CreatedAt: now,
	}
	img.assign(input)
	img.UpdatedAt = now
	return img, nil
}

// Replace overwrites the mutable fields and refreshes UpdatedAt
func (i *Image) Replace(input ImageInput, timeProvider coreport.TimeProvider) error {
	if err := input.Validate(); err != nil {
		return err
	}
	i.assign(input)
	i.UpdatedAt = timeProvider.Now()
	return nil
}

// OwnedBy reports whether userID is the image's author
func (i *Image) OwnedBy(userID string) bool {
	return userID != "" && i.AuthorID == userID
}

// Input returns the mutable fields of the image
func (i *Image) Input() ImageInput {
	return ImageInput{
		Title:              i.Title,
		TransformationType: i.TransformationType,
		PublicID:           i.PublicID,
		SecureURL:          i.SecureURL,
		TransformationURL:  i.TransformationURL,
		Width:              i.Width,
		Height:             i.Height,
		AspectRatio:        i.AspectRatio,
		Config:             i.Config.Clone(),
		Color:              i.Color,
		Prompt:             i.Prompt,
	}
}

func (i *Image) assign(in ImageInput) {
	i.Title = in.Title
	i.TransformationType = in.TransformationType
	i.PublicID = in.PublicID
	i.SecureURL = in.SecureURL
	i.TransformationURL = in.TransformationURL
	i.Width = in.Width
	i.Height = in.Height
	i.AspectRatio = in.AspectRatio
	i.Config = in.Config.Clone()
	i.Color = in.Color
	i.Prompt = in.Prompt
}

// ImagePage is one page of an image listing
type ImagePage struct {
	Images     []*Image
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
