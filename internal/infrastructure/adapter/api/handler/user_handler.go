package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 20

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// GetMe handles GET /api/me
func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, h.logger, "No authenticated user", domainerr.ErrAuthenticationRequired, nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateMe handles PATCH /api/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, h.logger, "No authenticated user", domainerr.ErrAuthenticationRequired, nil)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, "Invalid request format", err)
		return
	}

	updated, err := h.userUseCase.UpdateUser(c.Request.Context(), user.IdentityID, req.Patch())
	if err != nil {
		respondError(c, h.logger, "Error updating user", err, map[string]any{
			"userId": user.ID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

// DeleteMe handles DELETE /api/me
func (h *UserHandler) DeleteMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, h.logger, "No authenticated user", domainerr.ErrAuthenticationRequired, nil)
		return
	}

	deleted, err := h.userUseCase.DeleteUserByID(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "Error deleting user", err, map[string]any{
			"userId": user.ID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(deleted))
}

// GetCredits handles GET /api/me/credits
func (h *UserHandler) GetCredits(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, h.logger, "No authenticated user", domainerr.ErrAuthenticationRequired, nil)
		return
	}

	limit, err := queryInt(c, "limit", defaultHistoryLimit)
	if err != nil {
		respondBadRequest(c, h.logger, "Invalid query", err)
		return
	}

	history, err := h.userUseCase.CreditHistory(c.Request.Context(), user.ID, limit)
	if err != nil {
		respondError(c, h.logger, "Error loading credit history", err, map[string]any{
			"userId": user.ID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewCreditsResponse(user.CreditBalance, history))
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.userUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Error getting user", err, map[string]any{
			"userId": id,
		})
		return
	}

	if current, ok := middleware.CurrentUser(c); ok && current.ID == user.ID {
		c.JSON(http.StatusOK, dto.NewUserResponse(user))
		return
	}
	c.JSON(http.StatusOK, dto.NewPublicUserResponse(user))
}
