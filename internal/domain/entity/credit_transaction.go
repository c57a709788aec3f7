package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
)

// CreditReason explains why a user's credit balance moved
type CreditReason string

// Credit reasons
const (
	ReasonTransformation CreditReason = "transformation"
	ReasonPurchase       CreditReason = "purchase"
	ReasonRefund         CreditReason = "refund"
	ReasonAdjustment     CreditReason = "adjustment"
)

// CreditTransaction is an append-only ledger entry for one balance change
type CreditTransaction struct {
	ID           string       // Unique identifier for the entry
	UserID       string       // User whose balance changed
	Delta        int64        // Signed change, negative for spends
	BalanceAfter int64        // Balance once the change was applied
	Reason       CreditReason // Why the balance changed
	Reference    string       // Caller-supplied correlation id (session, purchase)
	CreatedAt    time.Time    // When the change was recorded
}

// NewCreditTransaction creates a ledger entry for a balance change that has already been applied
func NewCreditTransaction(
	id string,
	userID string,
	delta int64,
	balanceAfter int64,
	reason CreditReason,
	reference string,
	timeProvider coreport.TimeProvider,
) (*CreditTransaction, error) {
	if id == "" || userID == "" {
		return nil, errs.ErrInvalidRequest
	}
	if !isValidReason(reason) {
		return nil, fmt.Errorf("%w: unknown credit reason %q", errs.ErrInvalidRequest, reason)
	}

	return &CreditTransaction{
		ID:           id,
		UserID:       userID,
		Delta:        delta,
		BalanceAfter: balanceAfter,
		Reason:       reason,
		Reference:    reference,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this entry increased the user's balance
func (t *CreditTransaction) IsCredit() bool {
	return t.Delta > 0
}

// IsDebit returns true if this entry decreased the user's balance
func (t *CreditTransaction) IsDebit() bool {
	return t.Delta < 0
}

func isValidReason(reason CreditReason) bool {
	switch reason {
	case ReasonTransformation, ReasonPurchase, ReasonRefund, ReasonAdjustment:
		return true
	default:
		return false
	}
}
