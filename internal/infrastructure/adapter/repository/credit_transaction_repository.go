package repository

import (
	"context"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreditTransactionRepository implements CreditTransactionRepository interface using GORM
type CreditTransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCreditTransactionRepository creates a new CreditTransactionRepository instance
func NewCreditTransactionRepository(db *gorm.DB, logger coreport.Logger) *CreditTransactionRepository {
	return &CreditTransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create appends a ledger entry
func (r *CreditTransactionRepository) Create(ctx context.Context, entry *entity.CreditTransaction) error {
	entryModel := model.CreditTransaction{
		ID:           entry.ID,
		UserID:       entry.UserID,
		Delta:        entry.Delta,
		BalanceAfter: entry.BalanceAfter,
		Reason:       string(entry.Reason),
		Reference:    entry.Reference,
		CreatedAt:    entry.CreatedAt,
	}

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&entryModel)
	if result.Error != nil {
		r.logger.Error("Failed to create credit transaction", map[string]any{
			"entryId": entry.ID,
			"userId":  entry.UserID,
			"error":   result.Error.Error(),
		})
		var duplicate error
		if entry.Reason == entity.ReasonPurchase {
			duplicate = errs.ErrDuplicatePurchase
		}
		return r.errorClassifier.ToDomain(result.Error, errs.ErrNotFound, duplicate)
	}
	return nil
}

// ListByUser returns the most recent entries for a user, newest first
func (r *CreditTransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.CreditTransaction, error) {
	var models []model.CreditTransaction
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&models).Error; err != nil {
		r.logger.Error("Failed to list credit transactions", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, r.errorClassifier.ToDomain(err, errs.ErrNotFound, nil)
	}

	entries := make([]*entity.CreditTransaction, 0, len(models))
	for _, m := range models {
		entries = append(entries, &entity.CreditTransaction{
			ID:           m.ID,
			UserID:       m.UserID,
			Delta:        m.Delta,
			BalanceAfter: m.BalanceAfter,
			Reason:       entity.CreditReason(m.Reason),
			Reference:    m.Reference,
			CreatedAt:    m.CreatedAt,
		})
	}
	return entries, nil
}

// ExistsByReference reports whether an entry with this reason and reference is already recorded
func (r *CreditTransactionRepository) ExistsByReference(ctx context.Context, reason entity.CreditReason, reference string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CreditTransaction{}).
		Where("reason = ? AND reference = ?", string(reason), reference).
		Count(&count).Error
	if err != nil {
		r.logger.Error("Failed to look up credit reference", map[string]any{
			"reason":    string(reason),
			"reference": reference,
			"error":     err.Error(),
		})
		return false, r.errorClassifier.ToDomain(err, errs.ErrNotFound, nil)
	}
	return count > 0, nil
}
