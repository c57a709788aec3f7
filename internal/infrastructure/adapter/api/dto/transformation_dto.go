package dto

import (
	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
)

// StartSessionRequest opens a transformation form
type StartSessionRequest struct {
	Type    string `json:"type" binding:"required"`
	Action  string `json:"action" binding:"required,oneof=add update"`
	ImageID string `json:"imageId"`
}

// TitleRequest sets the form title
type TitleRequest struct {
	Title string `json:"title"`
}

// ImageUploadRequest records an upload finished on the media service
type ImageUploadRequest struct {
	PublicID  string `json:"publicId" binding:"required"`
	SecureURL string `json:"secureUrl" binding:"required,url"`
	Width     int    `json:"width" binding:"gte=0"`
	Height    int    `json:"height" binding:"gte=0"`
}

// AspectRatioRequest picks a fill preset
type AspectRatioRequest struct {
	AspectRatio string `json:"aspectRatio" binding:"required"`
}

// FieldRequest edits a coalesced free-text field
type FieldRequest struct {
	Field string `json:"field" binding:"required,oneof=prompt color"`
	Value string `json:"value"`
}

// UploadResponse mirrors an upload on the form
type UploadResponse struct {
	PublicID  string `json:"publicId,omitempty"`
	SecureURL string `json:"secureUrl,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// FormStateResponse is the current view of a transformation form
type FormStateResponse struct {
	SessionID            string         `json:"sessionId"`
	Action               string         `json:"action"`
	Type                 string         `json:"type"`
	Phase                string         `json:"phase"`
	ImageID              string         `json:"imageId,omitempty"`
	Title                string         `json:"title"`
	AspectRatio          string         `json:"aspectRatio,omitempty"`
	Color                string         `json:"color,omitempty"`
	Prompt               string         `json:"prompt,omitempty"`
	Image                UploadResponse `json:"image"`
	PendingConfig        map[string]any `json:"pendingConfig,omitempty"`
	TransformationConfig map[string]any `json:"transformationConfig,omitempty"`
	PreviewURL           string         `json:"previewUrl,omitempty"`
	Transforming         bool           `json:"isTransforming"`
	Submitting           bool           `json:"isSubmitting"`
	CanApply             bool           `json:"canApply"`
	CanSave              bool           `json:"canSave"`
	CreditBalance        int64          `json:"creditBalance"`
	CreditFee            int64          `json:"creditFee"`
	InsufficientCredits  bool           `json:"insufficientCredits"`
}

// SaveResponse reports the outcome of saving a form
type SaveResponse struct {
	Saved         bool               `json:"saved"`
	MissingFields []string           `json:"missingFields,omitempty"`
	Image         *ImageResponse     `json:"image,omitempty"`
	RedirectPath  string             `json:"redirectPath,omitempty"`
	State         *FormStateResponse `json:"state,omitempty"`
}

// CatalogResponse lists the transformation presets
type CatalogResponse struct {
	Types        []entity.TransformationKind `json:"types"`
	AspectRatios []entity.AspectRatioOption  `json:"aspectRatios"`
	CreditFee    int64                       `json:"creditFee"`
}

// NewFormStateResponse maps a form snapshot
func NewFormStateResponse(s *usecase.FormState) FormStateResponse {
	return FormStateResponse{
		SessionID:   s.SessionID,
		Action:      string(s.Action),
		Type:        string(s.TransformationType),
		Phase:       string(s.Phase),
		ImageID:     s.ImageID,
		Title:       s.Title,
		AspectRatio: s.AspectRatio,
		Color:       s.Color,
		Prompt:      s.Prompt,
		Image: UploadResponse{
			PublicID:  s.Image.PublicID,
			SecureURL: s.Image.SecureURL,
			Width:     s.Image.Width,
			Height:    s.Image.Height,
		},
		PendingConfig:        s.PendingConfig,
		TransformationConfig: s.TransformationConfig,
		PreviewURL:           s.PreviewURL,
		Transforming:         s.Transforming,
		Submitting:           s.Submitting,
		CanApply:             s.CanApply,
		CanSave:              s.CanSave,
		CreditBalance:        s.CreditBalance,
		CreditFee:            s.CreditFee,
		InsufficientCredits:  s.InsufficientCredits,
	}
}

// NewSaveResponse maps a save result
func NewSaveResponse(r *usecase.SaveResult) SaveResponse {
	resp := SaveResponse{
		Saved:         r.Saved,
		MissingFields: r.MissingFields,
		RedirectPath:  r.RedirectPath,
	}
	if r.Image != nil {
		img := NewImageResponse(r.Image)
		resp.Image = &img
	}
	if r.State != nil {
		state := NewFormStateResponse(r.State)
		resp.State = &state
	}
	return resp
}

// NewCatalogResponse maps the preset catalog
func NewCatalogResponse(c usecase.TransformationCatalog) CatalogResponse {
	return CatalogResponse{
		Types:        c.Kinds,
		AspectRatios: c.AspectRatios,
		CreditFee:    c.CreditFee,
	}
}
