package dto

import (
	"encoding/json"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
)

// Identity provider event types
const (
	EventUserCreated      = "user.created"
	EventUserUpdated      = "user.updated"
	EventUserDeleted      = "user.deleted"
	EventCreditsPurchased = "credits.purchased"
)

// WebhookEvent is the envelope the identity provider posts
type WebhookEvent struct {
	Type string          `json:"type" binding:"required"`
	Data json.RawMessage `json:"data" binding:"required"`
}

// UserEventData is the payload of user lifecycle events
type UserEventData struct {
	IdentityID string `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Photo      string `json:"photo"`
}

// NewUserParams converts the payload to creation params
func (d UserEventData) NewUserParams() entity.NewUserParams {
	return entity.NewUserParams{
		IdentityID: d.IdentityID,
		Email:      d.Email,
		Username:   d.Username,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Photo:      d.Photo,
	}
}

// Patch converts the payload to a profile patch. Empty email keeps the stored one.
func (d UserEventData) Patch() entity.UserPatch {
	patch := entity.UserPatch{
		Username:  &d.Username,
		FirstName: &d.FirstName,
		LastName:  &d.LastName,
		Photo:     &d.Photo,
	}
	if d.Email != "" {
		patch.Email = &d.Email
	}
	return patch
}

// CreditsPurchasedData is the payload of a completed purchase
type CreditsPurchasedData struct {
	IdentityID string `json:"identityId"`
	Credits    int64  `json:"credits"`
	Reference  string `json:"reference"`
}

// WebhookResponse acknowledges an event
type WebhookResponse struct {
	Type   string        `json:"type"`
	User   *UserResponse `json:"user,omitempty"`
	Status string        `json:"status"`
}
