package dto

import (
	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
)

// NavigationResponse is the sidebar for one page view
type NavigationResponse struct {
	SignedIn  bool             `json:"signedIn"`
	Primary   []entity.NavLink `json:"primary"`
	Secondary []entity.NavLink `json:"secondary"`
}

// NewNavigationResponse maps a navigation layout
func NewNavigationResponse(l usecase.NavigationLayout) NavigationResponse {
	resp := NavigationResponse{
		SignedIn:  l.SignedIn,
		Primary:   l.Primary,
		Secondary: l.Secondary,
	}
	if resp.Primary == nil {
		resp.Primary = []entity.NavLink{}
	}
	if resp.Secondary == nil {
		resp.Secondary = []entity.NavLink{}
	}
	return resp
}
