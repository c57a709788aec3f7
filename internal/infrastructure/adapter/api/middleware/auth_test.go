package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/config"
	usecasemocks "github.com/amirhossein-jamali/transform-studio/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "jwt-test-secret"
	testIssuer = "https://idp.example.com"
)

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(subject string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockUserUseCase) {
	users := usecasemocks.NewMockUserUseCase(t)
	auth := NewAuthenticator(config.AuthConfig{JWTSecret: testSecret, Issuer: testIssuer}, users, newTestLogger(t))

	router := gin.New()
	router.Use(auth.OptionalIdentity())
	router.GET("/public", func(c *gin.Context) {
		c.String(http.StatusOK, IdentityID(c))
	})
	router.GET("/private", auth.RequireUser(), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, user.ID)
	})
	return router, users
}

func bearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthenticator_RequireUser(t *testing.T) {
	router, users := newAuthRouter(t)
	users.EXPECT().FindOneBy(mock.Anything, persistence.UserFilter{IdentityID: "idp_1"}).
		Return(&entity.User{ID: "user-1", IdentityID: "idp_1"}, nil)

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("idp_1"))
	rec := serve(router, bearer(httptest.NewRequest(http.MethodGet, "/private", nil), token))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", rec.Body.String())
}

func TestAuthenticator_RequireUser_Rejections(t *testing.T) {
	expired := validClaims("idp_1")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims("idp_1")
	wrongIssuer.Issuer = "https://other.example.com"

	noExpiry := validClaims("idp_1")
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims("idp_1"))},
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"wrong issuer", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), wrongIssuer)},
		{"no expiry", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{"wrong algorithm", signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims("idp_1"))},
		{"empty subject", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(""))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newAuthRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.token != "" {
				bearer(req, tt.token)
			}
			rec := serve(router, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":4010`)
		})
	}
}

func TestAuthenticator_RequireUser_UnknownSubject(t *testing.T) {
	router, users := newAuthRouter(t)
	users.EXPECT().FindOneBy(mock.Anything, mock.Anything).Return(nil, domainerr.ErrUserNotFound)

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("idp_ghost"))
	rec := serve(router, bearer(httptest.NewRequest(http.MethodGet, "/private", nil), token))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticator_RequireUser_LookupFailure(t *testing.T) {
	router, users := newAuthRouter(t)
	users.EXPECT().FindOneBy(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("idp_1"))
	rec := serve(router, bearer(httptest.NewRequest(http.MethodGet, "/private", nil), token))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuthenticator_OptionalIdentity(t *testing.T) {
	router, _ := newAuthRouter(t)

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("idp_1"))
	rec := serve(router, bearer(httptest.NewRequest(http.MethodGet, "/public", nil), token))
	assert.Equal(t, "idp_1", rec.Body.String())

	rec = serve(router, bearer(httptest.NewRequest(http.MethodGet, "/public", nil), "garbage"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
