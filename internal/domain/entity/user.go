package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
)

// User represents an account mirrored from the identity provider
type User struct {
	ID            string    // Unique identifier for the user
	IdentityID    string    // Subject id issued by the identity provider
	Email         string    // Primary email address
	Username      string    // Optional unique handle
	FirstName     string    // Given name
	LastName      string    // Family name
	Photo         string    // Avatar URL
	CreditBalance int64     // Remaining credits, may be negative after explicit adjustments
	CreatedAt     time.Time // When the user was created
	UpdatedAt     time.Time // When the user was last updated
}

// NewUserParams carries the profile fields required to create a user
type NewUserParams struct {
	IdentityID string
	Email      string
	Username   string
	FirstName  string
	LastName   string
	Photo      string
}

// UserPatch is a partial profile update; nil fields are left untouched
type UserPatch struct {
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
	Photo     *string
}

// IsEmpty reports whether the patch changes nothing
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.Username == nil && p.FirstName == nil && p.LastName == nil && p.Photo == nil
}

// NewUser creates a new user with the given id and starting credit balance
func NewUser(id string, params NewUserParams, initialCredits int64, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidRequest
	}

	var missing []string
	if strings.TrimSpace(params.IdentityID) == "" {
		missing = append(missing, "identityId")
	}
	if strings.TrimSpace(params.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, errs.NewValidationError(missing...)
	}

	now := timeProvider.Now()
	return &User{
		ID:            id,
		IdentityID:    params.IdentityID,
		Email:         params.Email,
		Username:      params.Username,
		FirstName:     params.FirstName,
		LastName:      params.LastName,
		Photo:         params.Photo,
		CreditBalance: initialCredits,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ApplyPatch copies the set fields of the patch onto the user
func (u *User) ApplyPatch(patch UserPatch, timeProvider coreport.TimeProvider) error {
	if patch.Email != nil {
		if strings.TrimSpace(*patch.Email) == "" {
			return errs.NewValidationError("email")
		}
		u.Email = *patch.Email
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Photo != nil {
		u.Photo = *patch.Photo
	}
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// CanAfford reports whether the balance covers the given fee
func (u *User) CanAfford(fee int64) bool {
	return u.CreditBalance >= AbsFee(fee)
}

// AbsFee normalizes a fee that callers may express as a negative delta
func AbsFee(fee int64) int64 {
	if fee < 0 {
		return -fee
	}
	return fee
}
