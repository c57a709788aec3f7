package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	imageusecase "github.com/amirhossein-jamali/transform-studio/internal/domain/usecase/image"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ImageHandler handles image-related HTTP requests
type ImageHandler struct {
	imageUseCase usecase.ImageUseCase
	logger       coreport.Logger
}

// NewImageHandler creates a new image handler instance
func NewImageHandler(imageUseCase usecase.ImageUseCase, logger coreport.Logger) *ImageHandler {
	return &ImageHandler{
		imageUseCase: imageUseCase,
		logger:       logger,
	}
}

// ListImages handles GET /api/images
func (h *ImageHandler) ListImages(c *gin.Context) {
	query, ok := h.listQuery(c)
	if !ok {
		return
	}

	page, err := h.imageUseCase.ListImages(c.Request.Context(), query)
	if err != nil {
		respondError(c, h.logger, "Error listing images", err, map[string]any{
			"page":  query.Page,
			"query": query.SearchQuery,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewImagePageResponse(page))
}

// ListUserImages handles GET /api/users/:id/images
func (h *ImageHandler) ListUserImages(c *gin.Context) {
	h.listFor(c, c.Param("id"))
}

// ListMyImages handles GET /api/me/images
func (h *ImageHandler) ListMyImages(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, h.logger, "No authenticated user", domainerr.ErrAuthenticationRequired, nil)
		return
	}
	h.listFor(c, user.ID)
}

func (h *ImageHandler) listFor(c *gin.Context, authorID string) {
	query, ok := h.listQuery(c)
	if !ok {
		return
	}

	page, err := h.imageUseCase.ListUserImages(c.Request.Context(), authorID, query)
	if err != nil {
		respondError(c, h.logger, "Error listing user images", err, map[string]any{
			"authorId": authorID,
			"page":     query.Page,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewImagePageResponse(page))
}

func (h *ImageHandler) listQuery(c *gin.Context) (usecase.ListImagesQuery, bool) {
	limit, err := queryInt(c, "limit", imageusecase.DefaultPageSize)
	if err != nil {
		respondBadRequest(c, h.logger, "Invalid query", err)
		return usecase.ListImagesQuery{}, false
	}
	page, err := queryInt(c, "page", 1)
	if err != nil {
		respondBadRequest(c, h.logger, "Invalid query", err)
		return usecase.ListImagesQuery{}, false
	}
	return usecase.ListImagesQuery{
		Limit:       limit,
		Page:        page,
		SearchQuery: c.Query("query"),
	}, true
}

// GetImage handles GET /api/images/:id
func (h *ImageHandler) GetImage(c *gin.Context) {
	id := c.Param("id")

	img, err := h.imageUseCase.GetImageByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Error getting image", err, map[string]any{
			"imageId": id,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewImageResponse(img))
}

// CreateImage handles POST /api/images
func (h *ImageHandler) CreateImage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, h.logger, "No authenticated user", domainerr.ErrAuthenticationRequired, nil)
		return
	}

	var req dto.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, "Invalid request format", err)
		return
	}

	path := req.Path
	if path == "" {
		path = imageusecase.HomePath
	}

	img, err := h.imageUseCase.AddImage(c.Request.Context(), req.Input(), user.ID, path)
	if err != nil {
		respondError(c, h.logger, "Error adding image", err, map[string]any{
			"userId": user.ID,
		})
		return
	}

	c.Header("Location", imageusecase.DetailPath(img.ID))
	c.JSON(http.StatusCreated, dto.NewImageResponse(img))
}

// UpdateImage handles PUT /api/images/:id
func (h *ImageHandler) UpdateImage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, h.logger, "No authenticated user", domainerr.ErrAuthenticationRequired, nil)
		return
	}

	var req dto.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, "Invalid request format", err)
		return
	}

	id := c.Param("id")
	path := req.Path
	if path == "" {
		path = imageusecase.DetailPath(id)
	}

	img, err := h.imageUseCase.UpdateImage(c.Request.Context(), id, req.Input(), user.ID, path)
	if err != nil {
		respondError(c, h.logger, "Error updating image", err, map[string]any{
			"imageId": id,
			"userId":  user.ID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewImageResponse(img))
}

// DeleteImage handles DELETE /api/images/:id
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, h.logger, "No authenticated user", domainerr.ErrAuthenticationRequired, nil)
		return
	}

	id := c.Param("id")
	result, err := h.imageUseCase.DeleteImage(c.Request.Context(), id, user.ID)
	if err != nil {
		respondError(c, h.logger, "Error deleting image", err, map[string]any{
			"imageId": id,
			"userId":  user.ID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteImageResponse{
		ID:           result.Image.ID,
		RedirectPath: result.RedirectPath,
	})
}
