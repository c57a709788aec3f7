package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// HTTPStatus maps a domain error to the status code clients receive
func HTTPStatus(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrAuthenticationRequired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrValidationMissing):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidTransformationType),
		errors.Is(err, domainerr.ErrInvalidAspectRatio):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrInsufficientCredits):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerr.ErrDuplicateUser),
		errors.Is(err, domainerr.ErrDuplicatePurchase),
		errors.Is(err, domainerr.ErrConstraintViolation),
		errors.Is(err, domainerr.ErrTransformInFlight),
		errors.Is(err, domainerr.ErrSubmitInFlight),
		errors.Is(err, domainerr.ErrNothingToApply):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrTooManySessions),
		errors.Is(err, domainerr.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domainerr.ErrExternalService):
		return http.StatusBadGateway
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err once and writes the standard error body
func respondError(c *gin.Context, logger coreport.Logger, message string, err error, fields map[string]any) {
	status := HTTPStatus(err)

	logFields := domainerr.LogFields(err)
	for k, v := range fields {
		logFields[k] = v
	}
	logFields["status"] = status
	logFields["path"] = c.Request.URL.Path
	if _, ok := logFields["error"]; !ok {
		logFields["error"] = err.Error()
	}

	body := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	}

	var validationErr *domainerr.ValidationError
	if errors.As(err, &validationErr) {
		body.MissingFields = validationErr.Fields
	}

	switch {
	case status >= 500:
		logger.Error(message, logFields)
		body.Message = publicServerMessage(status)
	case status == http.StatusNotFound:
		logger.Debug(message, logFields)
	default:
		logger.Warn(message, logFields)
	}

	c.JSON(status, body)
}

// respondBadRequest rejects a malformed request body or parameter
func respondBadRequest(c *gin.Context, logger coreport.Logger, message string, err error) {
	logger.Warn("Invalid request", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message + ": " + err.Error(),
	})
}

func publicServerMessage(status int) string {
	switch status {
	case http.StatusBadGateway:
		return "Media service unavailable"
	case http.StatusServiceUnavailable:
		return "Service temporarily unavailable"
	case http.StatusGatewayTimeout:
		return "Request timed out"
	default:
		return "Internal server error"
	}
}

// queryInt parses an optional positive integer query parameter
func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("invalid " + name)
	}
	return n, nil
}
