package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/middleware"
	coremocks "github.com/amirhossein-jamali/transform-studio/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func testUser() *entity.User {
	return &entity.User{
		ID:            "user-1",
		IdentityID:    "idp_1",
		Email:         "ada@example.com",
		Username:      "ada",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		CreditBalance: 5,
		CreatedAt:     fixedTime,
		UpdatedAt:     fixedTime,
	}
}

// asUser authenticates every request routed through it as user
func asUser(user *entity.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCurrentUser(c, user)
		c.Next()
	}
}

func performRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	case []byte:
		reader = bytes.NewReader(b)
	default:
		encoded, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
