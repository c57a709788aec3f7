package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest            = 4000
	CodeValidationMissing         = 4001
	CodeInvalidTransformationType = 4002
	CodeInvalidAspectRatio        = 4003
	CodeConstraintViolation       = 4005
	CodeAuthenticationRequired    = 4010
	CodeInsufficientCredits       = 4020
	CodeUnauthorized              = 4030
	CodeUserNotFound              = 4040
	CodeImageNotFound             = 4041
	CodeSessionNotFound           = 4042
	CodeNotFound                  = 4043
	CodeDuplicateUser             = 4090
	CodeTransformInFlight         = 4091
	CodeSubmitInFlight            = 4092
	CodeNothingToApply            = 4093
	CodeDuplicatePurchase         = 4094
	CodeTooManySessions           = 4290
	CodeRateLimited               = 4291

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeExternalService    = 5020
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrValidationMissing is returned when required image fields are absent
	ErrValidationMissing = errors.New("required fields are missing")

	// ErrInvalidTransformationType is returned for a transformation type outside the catalog
	ErrInvalidTransformationType = errors.New("invalid transformation type")

	// ErrInvalidAspectRatio is returned for an unknown aspect ratio preset
	ErrInvalidAspectRatio = errors.New("invalid aspect ratio")

	// ErrAuthenticationRequired is returned when no valid identity accompanies a request
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrInsufficientCredits is returned when a spend would drive the balance below zero
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrUnauthorized is returned when the requester does not own the resource
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrImageNotFound is returned when the requested image doesn't exist
	ErrImageNotFound = errors.New("image not found")

	// ErrSessionNotFound is returned when a transformation session is unknown or expired
	ErrSessionNotFound = errors.New("transformation session not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicatePurchase is returned when a purchase reference was already credited
	ErrDuplicatePurchase = errors.New("purchase already credited")

	// ErrTransformInFlight is returned when a transformation is already being applied
	ErrTransformInFlight = errors.New("transformation already in progress")

	// ErrSubmitInFlight is returned when a save is already being submitted
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrNothingToApply is returned when no transformation change is pending
	ErrNothingToApply = errors.New("no pending transformation to apply")

	// ErrTooManySessions is returned when the live session cap is reached
	ErrTooManySessions = errors.New("too many active transformation sessions")

	// ErrRateLimited is returned when a caller exceeds the request rate
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrExternalService is returned when the media service or another remote collaborator fails
	ErrExternalService = errors.New("external service failure")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrValidationMissing):
		return CodeValidationMissing
	case errors.Is(err, ErrInvalidTransformationType):
		return CodeInvalidTransformationType
	case errors.Is(err, ErrInvalidAspectRatio):
		return CodeInvalidAspectRatio
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrAuthenticationRequired):
		return CodeAuthenticationRequired
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrImageNotFound):
		return CodeImageNotFound
	case errors.Is(err, ErrSessionNotFound):
		return CodeSessionNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrDuplicatePurchase):
		return CodeDuplicatePurchase
	case errors.Is(err, ErrTransformInFlight):
		return CodeTransformInFlight
	case errors.Is(err, ErrSubmitInFlight):
		return CodeSubmitInFlight
	case errors.Is(err, ErrNothingToApply):
		return CodeNothingToApply
	case errors.Is(err, ErrTooManySessions):
		return CodeTooManySessions
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrExternalService):
		return CodeExternalService
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// InsufficientCreditsError provides detailed error information for a rejected spend
type InsufficientCreditsError struct {
	UserID    string
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for user %s: required %d, available %d",
		e.UserID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(userID string, required, available int64) error {
	return &InsufficientCreditsError{
		UserID:    userID,
		Required:  required,
		Available: available,
	}
}

// AuthorizationError is returned when a requester acts on a resource owned by someone else
type AuthorizationError struct {
	Resource    string
	ResourceID  string
	RequesterID string
	OwnerID     string
}

// Error implements the error interface
func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %s is not allowed to modify %s %s", e.RequesterID, e.Resource, e.ResourceID)
}

// Is checks if the target error is an ErrUnauthorized
func (e *AuthorizationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// LogFields returns a map of fields for structured logging
func (e *AuthorizationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "authorization",
		"resource":     e.Resource,
		"resource_id":  e.ResourceID,
		"requester_id": e.RequesterID,
		"owner_id":     e.OwnerID,
		"error_code":   CodeUnauthorized,
	}
}

// NewAuthorizationError creates a new authorization error
func NewAuthorizationError(resource, resourceID, requesterID, ownerID string) error {
	return &AuthorizationError{
		Resource:    resource,
		ResourceID:  resourceID,
		RequesterID: requesterID,
		OwnerID:     ownerID,
	}
}

// ValidationError lists the required fields that were absent
type ValidationError struct {
	Fields []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidationMissing.Error(), strings.Join(e.Fields, ", "))
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return ErrValidationMissing
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "validation",
		"missing_fields": e.Fields,
		"error_code":     CodeValidationMissing,
	}
}

// NewValidationError creates a validation error for the given missing fields
func NewValidationError(fields ...string) error {
	return &ValidationError{Fields: fields}
}

// ExternalServiceError wraps a failed call to a remote collaborator
type ExternalServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface
func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrExternalService
func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalService
}

// LogFields returns a map of fields for structured logging
func (e *ExternalServiceError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "external_service",
		"service":    e.Service,
		"operation":  e.Operation,
		"error_code": CodeExternalService,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewExternalServiceError creates a new external service error
func NewExternalServiceError(service, operation string, err error) error {
	return &ExternalServiceError{
		Service:   service,
		Operation: operation,
		Err:       err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrImageNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsInsufficientCreditsError checks if the error is related to insufficient credits
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsUnauthorizedError checks if the error is an ownership failure
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// LogFields extracts structured fields from err when it carries them
func LogFields(err error) map[string]any {
	var carrier interface{ LogFields() map[string]any }
	if errors.As(err, &carrier) {
		return carrier.LogFields()
	}
	if err == nil {
		return map[string]any{}
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}
