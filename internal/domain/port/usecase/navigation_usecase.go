package usecase

import "github.com/amirhossein-jamali/transform-studio/internal/domain/entity"

// NavigationLayout is the sidebar content for one page view
type NavigationLayout struct {
	SignedIn  bool
	Primary   []entity.NavLink
	Secondary []entity.NavLink
}

// NavigationUseCase builds the application shell navigation
type NavigationUseCase interface {
	Layout(signedIn bool, currentPath string) NavigationLayout
}
