package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToUser converts a user model to an entity
func modelToUser(m *model.User) *entity.User {
	user := &entity.User{
		ID:            m.ID,
		IdentityID:    m.IdentityID,
		Email:         m.Email,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Photo:         m.Photo,
		CreditBalance: m.CreditBalance,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Username != nil {
		user.Username = *m.Username
	}
	return user
}

func userToModel(user *entity.User) model.User {
	return model.User{
		ID:            user.ID,
		IdentityID:    user.IdentityID,
		Email:         user.Email,
		Username:      nullableString(user.Username),
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Photo:         user.Photo,
		CreditBalance: user.CreditBalance,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// nullableString keeps empty usernames out of the unique index
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	mapped := r.errorClassifier.ToDomain(err, errs.ErrUserNotFound, errs.ErrDuplicateUser)

	switch r.errorClassifier.Classify(err) {
	case NotFoundError:
		r.logger.Debug("User not found", map[string]any{
			"userId":    userID,
			"operation": operation,
		})
	case DuplicateKeyError:
		r.logger.Warn("Duplicate user operation", map[string]any{
			"userId":    userID,
			"operation": operation,
		})
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
	}

	return mapped
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := userToModel(user)

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Debug("User row inserted", map[string]any{
		"userId":     user.ID,
		"identityId": user.IdentityID,
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return modelToUser(&userModel), nil
}

// FindOne returns the first user matching every non-empty filter field
func (r *UserRepository) FindOne(ctx context.Context, filter persistence.UserFilter) (*entity.User, error) {
	if filter.IsEmpty() {
		return nil, errs.ErrInvalidRequest
	}

	query := r.db.WithContext(ctx)
	if filter.IdentityID != "" {
		query = query.Where("identity_id = ?", filter.IdentityID)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if filter.Username != "" {
		query = query.Where("username = ?", filter.Username)
	}

	var userModel model.User
	result := query.First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("finding user", result.Error, filter.IdentityID)
	}

	return modelToUser(&userModel), nil
}

// Update persists the profile fields of an existing user
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"email":      user.Email,
			"username":   nullableString(user.Username),
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"photo":      user.Photo,
			"updated_at": user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"userId": user.ID,
		})
		return errs.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by primary key; images and ledger rows cascade
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting user", result.Error, id)
	}

	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

// IncrementCredits atomically adds a signed delta to the credit balance with no floor
func (r *UserRepository) IncrementCredits(ctx context.Context, id string, delta int64) (*entity.User, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"credit_balance": gorm.Expr("credit_balance + ?", delta),
			"updated_at":     r.timeProvider.Now(),
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("incrementing credits", result.Error, id)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during credit increment", map[string]any{
			"userId": id,
			"delta":  delta,
		})
		return nil, errs.ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}

// SpendCredits atomically subtracts fee only when the balance covers it
func (r *UserRepository) SpendCredits(ctx context.Context, id string, fee int64) (*entity.User, error) {
	fee = entity.AbsFee(fee)

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND credit_balance >= ?", id, fee).
		Updates(map[string]interface{}{
			"credit_balance": gorm.Expr("credit_balance - ?", fee),
			"updated_at":     r.timeProvider.Now(),
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("spending credits", result.Error, id)
	}

	if result.RowsAffected == 0 {
		// Either the user is gone or the guard rejected the spend
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		r.logger.Warn("Insufficient credits for spend", map[string]any{
			"userId":    id,
			"fee":       fee,
			"available": current.CreditBalance,
		})
		return nil, errs.NewInsufficientCreditsError(id, fee, current.CreditBalance)
	}

	return r.GetByID(ctx, id)
}
