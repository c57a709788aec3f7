package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TransformationHandler exposes transformation forms as server-side sessions
type TransformationHandler struct {
	transformations usecase.TransformationUseCase
	logger          coreport.Logger
}

// NewTransformationHandler creates a new transformation handler instance
func NewTransformationHandler(transformations usecase.TransformationUseCase, logger coreport.Logger) *TransformationHandler {
	return &TransformationHandler{
		transformations: transformations,
		logger:          logger,
	}
}

// Catalog handles GET /api/transformations/types
func (h *TransformationHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewCatalogResponse(h.transformations.Catalog()))
}

// StartSession handles POST /api/transformations/sessions
func (h *TransformationHandler) StartSession(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, "Invalid request format", err)
		return
	}

	transformationType, err := entity.ParseTransformationType(req.Type)
	if err != nil {
		respondError(c, h.logger, "Unknown transformation type", err, map[string]any{
			"type": req.Type,
		})
		return
	}

	state, err := h.transformations.StartSession(c.Request.Context(), userID, usecase.StartSessionInput{
		Action:             usecase.FormAction(req.Action),
		TransformationType: transformationType,
		ImageID:            req.ImageID,
	})
	if err != nil {
		respondError(c, h.logger, "Error starting transformation session", err, map[string]any{
			"userId":  userID,
			"type":    req.Type,
			"imageId": req.ImageID,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.NewFormStateResponse(state))
}

// GetSession handles GET /api/transformations/sessions/:id
func (h *TransformationHandler) GetSession(c *gin.Context) {
	h.respondState(c, "Error loading transformation session", func(userID, sessionID string) (*usecase.FormState, error) {
		return h.transformations.GetSession(c.Request.Context(), userID, sessionID)
	})
}

// SetTitle handles PUT /api/transformations/sessions/:id/title
func (h *TransformationHandler) SetTitle(c *gin.Context) {
	var req dto.TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, "Invalid request format", err)
		return
	}

	h.respondState(c, "Error setting title", func(userID, sessionID string) (*usecase.FormState, error) {
		return h.transformations.SetTitle(c.Request.Context(), userID, sessionID, req.Title)
	})
}

// SetImage handles PUT /api/transformations/sessions/:id/image
func (h *TransformationHandler) SetImage(c *gin.Context) {
	var req dto.ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, "Invalid request format", err)
		return
	}

	h.respondState(c, "Error setting image", func(userID, sessionID string) (*usecase.FormState, error) {
		return h.transformations.SetImage(c.Request.Context(), userID, sessionID, usecase.ImageUpload{
			PublicID:  req.PublicID,
			SecureURL: req.SecureURL,
			Width:     req.Width,
			Height:    req.Height,
		})
	})
}

// SelectAspectRatio handles PUT /api/transformations/sessions/:id/aspect-ratio
func (h *TransformationHandler) SelectAspectRatio(c *gin.Context) {
	var req dto.AspectRatioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, "Invalid request format", err)
		return
	}

	h.respondState(c, "Error selecting aspect ratio", func(userID, sessionID string) (*usecase.FormState, error) {
		return h.transformations.SelectAspectRatio(c.Request.Context(), userID, sessionID, req.AspectRatio)
	})
}

// EditField handles PUT /api/transformations/sessions/:id/fields
func (h *TransformationHandler) EditField(c *gin.Context) {
	var req dto.FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, "Invalid request format", err)
		return
	}

	h.respondState(c, "Error editing field", func(userID, sessionID string) (*usecase.FormState, error) {
		return h.transformations.EditField(c.Request.Context(), userID, sessionID, usecase.FormField(req.Field), req.Value)
	})
}

// Apply handles POST /api/transformations/sessions/:id/apply
func (h *TransformationHandler) Apply(c *gin.Context) {
	h.respondState(c, "Error applying transformation", func(userID, sessionID string) (*usecase.FormState, error) {
		return h.transformations.Apply(c.Request.Context(), userID, sessionID)
	})
}

// Save handles POST /api/transformations/sessions/:id/save.
// A save with missing image fields changes nothing and answers 422.
func (h *TransformationHandler) Save(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	sessionID := c.Param("id")

	result, err := h.transformations.Save(c.Request.Context(), userID, sessionID)
	if err != nil {
		respondError(c, h.logger, "Error saving transformation", err, map[string]any{
			"userId":    userID,
			"sessionId": sessionID,
		})
		return
	}

	if !result.Saved {
		h.logger.Info("Save skipped, image fields missing", map[string]any{
			"sessionId":     sessionID,
			"missingFields": result.MissingFields,
		})
		c.JSON(http.StatusUnprocessableEntity, dto.NewSaveResponse(result))
		return
	}

	c.JSON(http.StatusOK, dto.NewSaveResponse(result))
}

// CloseSession handles DELETE /api/transformations/sessions/:id
func (h *TransformationHandler) CloseSession(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	sessionID := c.Param("id")

	if err := h.transformations.CloseSession(c.Request.Context(), userID, sessionID); err != nil {
		respondError(c, h.logger, "Error closing transformation session", err, map[string]any{
			"userId":    userID,
			"sessionId": sessionID,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TransformationHandler) respondState(
	c *gin.Context,
	message string,
	run func(userID, sessionID string) (*usecase.FormState, error),
) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	sessionID := c.Param("id")

	state, err := run(userID, sessionID)
	if err != nil {
		respondError(c, h.logger, message, err, map[string]any{
			"userId":    userID,
			"sessionId": sessionID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewFormStateResponse(state))
}

func (h *TransformationHandler) userID(c *gin.Context) (string, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, h.logger, "No authenticated user", domainerr.ErrAuthenticationRequired, nil)
		return "", false
	}
	return user.ID, true
}
