package dto

import (
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
)

// ImageRequest carries the fields of an image to create or replace
type ImageRequest struct {
	Title              string         `json:"title" binding:"required,max=255"`
	TransformationType string         `json:"transformationType" binding:"required"`
	PublicID           string         `json:"publicId" binding:"required"`
	SecureURL          string         `json:"secureUrl" binding:"required,url"`
	TransformationURL  string         `json:"transformationUrl"`
	Width              int            `json:"width" binding:"gte=0"`
	Height             int            `json:"height" binding:"gte=0"`
	AspectRatio        string         `json:"aspectRatio"`
	Config             map[string]any `json:"config"`
	Color              string         `json:"color"`
	Prompt             string         `json:"prompt"`
	Path               string         `json:"path"`
}

// Input converts the request to a domain input
func (r ImageRequest) Input() entity.ImageInput {
	return entity.ImageInput{
		Title:              r.Title,
		TransformationType: entity.TransformationType(r.TransformationType),
		PublicID:           r.PublicID,
		SecureURL:          r.SecureURL,
		TransformationURL:  r.TransformationURL,
		Width:              r.Width,
		Height:             r.Height,
		AspectRatio:        r.AspectRatio,
		Config:             entity.TransformationConfig(r.Config),
		Color:              r.Color,
		Prompt:             r.Prompt,
	}
}

// AuthorResponse is the public projection of an image's author
type AuthorResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ImageResponse is the API view of an image
type ImageResponse struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	TransformationType string          `json:"transformationType"`
	PublicID           string          `json:"publicId"`
	SecureURL          string          `json:"secureUrl"`
	TransformationURL  string          `json:"transformationUrl,omitempty"`
	Width              int             `json:"width,omitempty"`
	Height             int             `json:"height,omitempty"`
	AspectRatio        string          `json:"aspectRatio,omitempty"`
	Config             map[string]any  `json:"config,omitempty"`
	Color              string          `json:"color,omitempty"`
	Prompt             string          `json:"prompt,omitempty"`
	AuthorID           string          `json:"authorId"`
	Author             *AuthorResponse `json:"author,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// ImagePageResponse is one page of images
type ImagePageResponse struct {
	Data       []ImageResponse `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

// DeleteImageResponse confirms a deletion and where the client should go next
type DeleteImageResponse struct {
	ID           string `json:"id"`
	RedirectPath string `json:"redirectPath"`
}

// NewImageResponse maps an image entity
func NewImageResponse(img *entity.Image) ImageResponse {
	resp := ImageResponse{
		ID:                 img.ID,
		Title:              img.Title,
		TransformationType: string(img.TransformationType),
		PublicID:           img.PublicID,
		SecureURL:          img.SecureURL,
		TransformationURL:  img.TransformationURL,
		Width:              img.Width,
		Height:             img.Height,
		AspectRatio:        img.AspectRatio,
		Config:             img.Config,
		Color:              img.Color,
		Prompt:             img.Prompt,
		AuthorID:           img.AuthorID,
		CreatedAt:          img.CreatedAt,
		UpdatedAt:          img.UpdatedAt,
	}
	if img.Author != nil {
		resp.Author = &AuthorResponse{
			ID:        img.Author.ID,
			FirstName: img.Author.FirstName,
			LastName:  img.Author.LastName,
		}
	}
	return resp
}

// NewImagePageResponse maps a page of images
func NewImagePageResponse(page *entity.ImagePage) ImagePageResponse {
	data := make([]ImageResponse, 0, len(page.Images))
	for _, img := range page.Images {
		data = append(data, NewImageResponse(img))
	}
	return ImagePageResponse{
		Data:       data,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}
