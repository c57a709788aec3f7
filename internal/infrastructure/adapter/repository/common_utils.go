package repository

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ForeignKeyError   ErrorType = "foreign_key"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	NotFoundError     ErrorType = "not_found"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsForeignKeyError(err):
		return ForeignKeyError
	case c.IsLockError(err):
		return LockError
	default:
		return ConnectionError
	}
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// IsForeignKeyError checks if the error references a missing parent row
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "SQLSTATE 23503")
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "lock wait timeout") ||
		strings.Contains(msg, "could not serialize access")
}

// ToDomain translates a database error into the domain error for an entity.
// notFound and duplicate are returned for missing rows and unique violations.
func (c *ErrorClassifier) ToDomain(err error, notFound, duplicate error) error {
	switch c.Classify(err) {
	case "":
		return nil
	case NotFoundError:
		return notFound
	case DuplicateKeyError:
		if duplicate != nil {
			return duplicate
		}
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case ForeignKeyError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}
