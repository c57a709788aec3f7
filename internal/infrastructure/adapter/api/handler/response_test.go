package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	domainerr "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"user not found", domainerr.ErrUserNotFound, http.StatusNotFound},
		{"wrapped session not found", fmt.Errorf("lookup: %w", domainerr.ErrSessionNotFound), http.StatusNotFound},
		{"not the author", domainerr.NewAuthorizationError("image", "i1", "u2", "u1"), http.StatusForbidden},
		{"anonymous", domainerr.ErrAuthenticationRequired, http.StatusUnauthorized},
		{"missing fields", domainerr.NewValidationError("publicId"), http.StatusUnprocessableEntity},
		{"bad type", domainerr.ErrInvalidTransformationType, http.StatusBadRequest},
		{"bad aspect ratio", domainerr.ErrInvalidAspectRatio, http.StatusBadRequest},
		{"insufficient credits", domainerr.NewInsufficientCreditsError("u1", 10, 5), http.StatusPaymentRequired},
		{"apply in flight", domainerr.ErrTransformInFlight, http.StatusConflict},
		{"duplicate user", domainerr.ErrDuplicateUser, http.StatusConflict},
		{"duplicate purchase", domainerr.ErrDuplicatePurchase, http.StatusConflict},
		{"session cap", domainerr.ErrTooManySessions, http.StatusTooManyRequests},
		{"media down", domainerr.NewExternalServiceError("media", "search", errors.New("boom")), http.StatusBadGateway},
		{"database down", domainerr.ErrDatabaseConnection, http.StatusServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
