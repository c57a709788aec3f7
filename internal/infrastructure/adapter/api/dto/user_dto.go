package dto

import (
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
)

// UserResponse is the API view of a user
type UserResponse struct {
	ID            string    `json:"id"`
	IdentityID    string    `json:"identityId"`
	Email         string    `json:"email"`
	Username      string    `json:"username,omitempty"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Photo         string    `json:"photo"`
	CreditBalance int64     `json:"creditBalance"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PublicUserResponse omits contact details for lookups of other users
type PublicUserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Photo     string `json:"photo"`
}

// UpdateUserRequest is a partial profile update; absent fields are left untouched
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Username  *string `json:"username" binding:"omitempty,max=64"`
	FirstName *string `json:"firstName" binding:"omitempty,max=128"`
	LastName  *string `json:"lastName" binding:"omitempty,max=128"`
	Photo     *string `json:"photo" binding:"omitempty,url"`
}

// Patch converts the request to a domain patch
func (r UpdateUserRequest) Patch() entity.UserPatch {
	return entity.UserPatch{
		Email:     r.Email,
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Photo:     r.Photo,
	}
}

// CreditTransactionResponse is one ledger entry
type CreditTransactionResponse struct {
	ID           string    `json:"id"`
	Delta        int64     `json:"delta"`
	BalanceAfter int64     `json:"balanceAfter"`
	Reason       string    `json:"reason"`
	Reference    string    `json:"reference,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreditsResponse is the balance with its recent history
type CreditsResponse struct {
	Balance int64                       `json:"balance"`
	History []CreditTransactionResponse `json:"history"`
}

// NewUserResponse maps a user entity
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		IdentityID:    u.IdentityID,
		Email:         u.Email,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Photo:         u.Photo,
		CreditBalance: u.CreditBalance,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// NewPublicUserResponse maps the public fields of a user
func NewPublicUserResponse(u *entity.User) PublicUserResponse {
	return PublicUserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Photo:     u.Photo,
	}
}

// NewCreditsResponse maps a balance and its ledger entries
func NewCreditsResponse(balance int64, history []*entity.CreditTransaction) CreditsResponse {
	entries := make([]CreditTransactionResponse, 0, len(history))
	for _, t := range history {
		entries = append(entries, CreditTransactionResponse{
			ID:           t.ID,
			Delta:        t.Delta,
			BalanceAfter: t.BalanceAfter,
			Reason:       string(t.Reason),
			Reference:    t.Reference,
			CreatedAt:    t.CreatedAt,
		})
	}
	return CreditsResponse{Balance: balance, History: entries}
}
