package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// NavigationHandler serves the sidebar layout
type NavigationHandler struct {
	navigation usecase.NavigationUseCase
}

// NewNavigationHandler creates a new navigation handler instance
func NewNavigationHandler(navigation usecase.NavigationUseCase) *NavigationHandler {
	return &NavigationHandler{navigation: navigation}
}

// Layout handles GET /api/navigation?path=
func (h *NavigationHandler) Layout(c *gin.Context) {
	signedIn := middleware.IdentityID(c) != ""
	path := c.DefaultQuery("path", "/")

	c.JSON(http.StatusOK, dto.NewNavigationResponse(h.navigation.Layout(signedIn, path)))
}
