package repository

import (
	"errors"
	"fmt"
	"testing"

	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ""},
		{"not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), NotFoundError},
		{"duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`), DuplicateKeyError},
		{"foreign key", errors.New(`ERROR: insert or update on table "images" violates foreign key constraint (SQLSTATE 23503)`), ForeignKeyError},
		{"deadlock", errors.New("ERROR: deadlock detected"), LockError},
		{"other", errors.New("dial tcp: connection refused"), ConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_ToDomain(t *testing.T) {
	c := NewErrorClassifier()

	assert.NoError(t, c.ToDomain(nil, errs.ErrUserNotFound, errs.ErrDuplicateUser))
	assert.Equal(t, errs.ErrImageNotFound, c.ToDomain(gorm.ErrRecordNotFound, errs.ErrImageNotFound, nil))
	assert.Equal(t, errs.ErrDuplicateUser, c.ToDomain(gorm.ErrDuplicatedKey, errs.ErrUserNotFound, errs.ErrDuplicateUser))
	assert.ErrorIs(t, c.ToDomain(gorm.ErrDuplicatedKey, errs.ErrImageNotFound, nil), errs.ErrConstraintViolation)
	assert.ErrorIs(t, c.ToDomain(gorm.ErrForeignKeyViolated, errs.ErrImageNotFound, nil), errs.ErrConstraintViolation)
	assert.ErrorIs(t, c.ToDomain(errors.New("broken pipe"), errs.ErrUserNotFound, nil), errs.ErrDatabaseConnection)
}
