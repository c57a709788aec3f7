package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// balanceChange applies one credit mutation through the given repository
type balanceChange func(ctx context.Context, repo persistence.UserRepository) (*entity.User, error)

// UpdateCredits atomically adds a signed delta to the balance with no floor.
// A purchase reference is credited at most once.
func (u *UserUseCase) UpdateCredits(
	ctx context.Context,
	id string,
	delta int64,
	reason entity.CreditReason,
	reference string,
) (*entity.User, error) {
	if strings.TrimSpace(id) == "" || delta == 0 {
		return nil, errs.ErrInvalidRequest
	}

	return u.changeBalance(ctx, id, delta, reason, reference,
		func(ctx context.Context, repo persistence.UserRepository) (*entity.User, error) {
			return repo.IncrementCredits(ctx, id, delta)
		})
}

// SpendCredits deducts fee only when the balance covers it
func (u *UserUseCase) SpendCredits(ctx context.Context, id string, fee int64, reference string) (*entity.User, error) {
	fee = entity.AbsFee(fee)
	if strings.TrimSpace(id) == "" || fee == 0 {
		return nil, errs.ErrInvalidRequest
	}

	return u.changeBalance(ctx, id, -fee, entity.ReasonTransformation, reference,
		func(ctx context.Context, repo persistence.UserRepository) (*entity.User, error) {
			return repo.SpendCredits(ctx, id, fee)
		})
}

// changeBalance runs the mutation and its ledger entry in one database transaction
func (u *UserUseCase) changeBalance(
	ctx context.Context,
	id string,
	delta int64,
	reason entity.CreditReason,
	reference string,
	change balanceChange,
) (user *entity.User, err error) {
	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		u.logger.Error("Failed to begin credit transaction", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Failed to roll back credit transaction", map[string]any{
				"userId": id,
				"error":  rbErr.Error(),
			})
		}
	}()

	var ledger persistence.CreditTransactionRepository
	if reason == entity.ReasonPurchase && reference != "" {
		ledger = u.uow.GetCreditTransactionRepository(txCtx)
		seen, err := ledger.ExistsByReference(txCtx, reason, reference)
		if err != nil {
			return nil, err
		}
		if seen {
			u.logger.Warn("Purchase already credited", map[string]any{
				"userId":    id,
				"reference": reference,
			})
			return nil, errs.ErrDuplicatePurchase
		}
	}

	user, err = change(txCtx, u.uow.GetUserRepository(txCtx))
	if err != nil {
		if errs.IsInsufficientCreditsError(err) || errs.IsNotFoundError(err) {
			u.logger.Warn("Credit change rejected", map[string]any{
				"userId": id,
				"delta":  delta,
				"reason": string(reason),
				"error":  err.Error(),
			})
		} else {
			u.logger.Error("Failed to change credit balance", map[string]any{
				"userId": id,
				"delta":  delta,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	entry, err := entity.NewCreditTransaction(uuid.NewString(), id, delta, user.CreditBalance, reason, reference, u.timeProvider)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		ledger = u.uow.GetCreditTransactionRepository(txCtx)
	}
	if err := ledger.Create(txCtx, entry); err != nil {
		u.logger.Error("Failed to record credit transaction", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	u.logger.Info("Credit balance changed", map[string]any{
		"userId":     id,
		"delta":      delta,
		"reason":     string(reason),
		"reference":  reference,
		"newBalance": user.CreditBalance,
	})
	return user, nil
}

// CreditHistory returns the most recent ledger entries for a user
func (u *UserUseCase) CreditHistory(ctx context.Context, id string, limit int) ([]*entity.CreditTransaction, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidRequest
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	return u.uow.GetCreditTransactionRepository(ctx).ListByUser(ctx, id, limit)
}
