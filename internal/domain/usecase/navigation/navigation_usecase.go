package navigation

import (
	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
)

// NavigationUseCase builds the sidebar from the static link list
type NavigationUseCase struct{}

// NewNavigationUseCase creates a new navigation use case instance
func NewNavigationUseCase() usecase.NavigationUseCase {
	return &NavigationUseCase{}
}

// Layout returns the sidebar sections for a visitor on currentPath
func (n *NavigationUseCase) Layout(signedIn bool, currentPath string) usecase.NavigationLayout {
	links := entity.NavLinks()

	if !signedIn {
		login := entity.NavLink{Label: "Login", Route: entity.LoginRoute, Icon: "/assets/icons/profile.svg"}
		return usecase.NavigationLayout{
			SignedIn: false,
			Primary:  markActive([]entity.NavLink{links[0], login}, currentPath),
		}
	}

	split := entity.PrimaryLinkCount
	if split > len(links) {
		split = len(links)
	}
	return usecase.NavigationLayout{
		SignedIn:  true,
		Primary:   markActive(links[:split], currentPath),
		Secondary: markActive(links[split:], currentPath),
	}
}

func markActive(links []entity.NavLink, currentPath string) []entity.NavLink {
	out := make([]entity.NavLink, len(links))
	for i, link := range links {
		link.Active = link.Route == currentPath
		out[i] = link
	}
	return out
}
