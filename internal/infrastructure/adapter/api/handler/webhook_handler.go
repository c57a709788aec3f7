package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body
const SignatureHeader = "X-Webhook-Signature"

const maxWebhookBody = 1 << 20

var errBadSignature = errors.New("invalid webhook signature")

// WebhookHandler mirrors identity provider events into local users and credits
type WebhookHandler struct {
	userUseCase usecase.UserUseCase
	secret      []byte
	logger      coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(userUseCase usecase.UserUseCase, secret string, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{
		userUseCase: userUseCase,
		secret:      []byte(secret),
		logger:      logger,
	}
}

// Sign returns the signature the handler expects for body
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Receive handles POST /webhooks/identity
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		respondBadRequest(c, h.logger, "Unreadable body", err)
		return
	}

	if !h.verify(body, c.GetHeader(SignatureHeader)) {
		h.logger.Warn("Rejected webhook with bad signature", map[string]any{
			"ip": c.ClientIP(),
		})
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrAuthenticationRequired),
			Message: errBadSignature.Error(),
		})
		return
	}

	var event dto.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil || event.Type == "" {
		if err == nil {
			err = errors.New("missing event type")
		}
		respondBadRequest(c, h.logger, "Invalid event", err)
		return
	}

	switch event.Type {
	case dto.EventUserCreated:
		h.userCreated(c, event)
	case dto.EventUserUpdated:
		h.userUpdated(c, event)
	case dto.EventUserDeleted:
		h.userDeleted(c, event)
	case dto.EventCreditsPurchased:
		h.creditsPurchased(c, event)
	default:
		h.logger.Info("Ignoring unsupported webhook event", map[string]any{
			"type": event.Type,
		})
		c.JSON(http.StatusOK, dto.WebhookResponse{Type: event.Type, Status: "ignored"})
	}
}

func (h *WebhookHandler) verify(body []byte, signature string) bool {
	if len(h.secret) == 0 {
		return false
	}
	expected, err := hex.DecodeString(Sign(h.secret, body))
	if err != nil {
		return false
	}
	given, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}
	return hmac.Equal(expected, given)
}

func (h *WebhookHandler) userCreated(c *gin.Context, event dto.WebhookEvent) {
	var data dto.UserEventData
	if !h.decode(c, event, &data) {
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), data.NewUserParams())
	if err != nil {
		respondError(c, h.logger, "Error creating user from webhook", err, map[string]any{
			"identityId": data.IdentityID,
		})
		return
	}

	resp := dto.NewUserResponse(user)
	c.JSON(http.StatusCreated, dto.WebhookResponse{Type: event.Type, User: &resp, Status: "processed"})
}

func (h *WebhookHandler) userUpdated(c *gin.Context, event dto.WebhookEvent) {
	var data dto.UserEventData
	if !h.decode(c, event, &data) {
		return
	}

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), data.IdentityID, data.Patch())
	if err != nil {
		respondError(c, h.logger, "Error updating user from webhook", err, map[string]any{
			"identityId": data.IdentityID,
		})
		return
	}

	resp := dto.NewUserResponse(user)
	c.JSON(http.StatusOK, dto.WebhookResponse{Type: event.Type, User: &resp, Status: "processed"})
}

func (h *WebhookHandler) userDeleted(c *gin.Context, event dto.WebhookEvent) {
	var data dto.UserEventData
	if !h.decode(c, event, &data) {
		return
	}

	user, err := h.userUseCase.DeleteUser(c.Request.Context(), data.IdentityID)
	if err != nil {
		respondError(c, h.logger, "Error deleting user from webhook", err, map[string]any{
			"identityId": data.IdentityID,
		})
		return
	}

	resp := dto.NewUserResponse(user)
	c.JSON(http.StatusOK, dto.WebhookResponse{Type: event.Type, User: &resp, Status: "processed"})
}

func (h *WebhookHandler) creditsPurchased(c *gin.Context, event dto.WebhookEvent) {
	var data dto.CreditsPurchasedData
	if !h.decode(c, event, &data) {
		return
	}
	if data.Credits <= 0 {
		respondBadRequest(c, h.logger, "Invalid purchase", errors.New("credits must be positive"))
		return
	}

	ctx := c.Request.Context()
	user, err := h.userUseCase.FindOneBy(ctx, persistence.UserFilter{IdentityID: data.IdentityID})
	if err != nil {
		respondError(c, h.logger, "Error resolving purchaser", err, map[string]any{
			"identityId": data.IdentityID,
		})
		return
	}

	updated, err := h.userUseCase.UpdateCredits(ctx, user.ID, data.Credits, entity.ReasonPurchase, data.Reference)
	if errors.Is(err, domainerr.ErrDuplicatePurchase) {
		resp := dto.NewUserResponse(user)
		c.JSON(http.StatusOK, dto.WebhookResponse{Type: event.Type, User: &resp, Status: "duplicate"})
		return
	}
	if err != nil {
		respondError(c, h.logger, "Error crediting purchase", err, map[string]any{
			"userId":    user.ID,
			"credits":   data.Credits,
			"reference": data.Reference,
		})
		return
	}

	resp := dto.NewUserResponse(updated)
	c.JSON(http.StatusOK, dto.WebhookResponse{Type: event.Type, User: &resp, Status: "processed"})
}

func (h *WebhookHandler) decode(c *gin.Context, event dto.WebhookEvent, target any) bool {
	if err := json.Unmarshal(event.Data, target); err != nil {
		respondBadRequest(c, h.logger, "Invalid event payload", err)
		return false
	}
	return true
}
