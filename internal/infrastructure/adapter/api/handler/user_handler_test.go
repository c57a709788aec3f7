package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/dto"
	usecasemocks "github.com/amirhossein-jamali/transform-studio/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserRouter(t *testing.T, user *entity.User) (*gin.Engine, *usecasemocks.MockUserUseCase) {
	users := usecasemocks.NewMockUserUseCase(t)
	h := NewUserHandler(users, newTestLogger(t))

	router := gin.New()
	if user != nil {
		router.Use(asUser(user))
	}
	router.GET("/api/me", h.GetMe)
	router.PATCH("/api/me", h.UpdateMe)
	router.DELETE("/api/me", h.DeleteMe)
	router.GET("/api/me/credits", h.GetCredits)
	router.GET("/api/users/:id", h.GetUser)
	return router, users
}

func TestUserHandler_GetMe(t *testing.T) {
	router, _ := newUserRouter(t, testUser())

	rec := performRequest(t, router, http.MethodGet, "/api/me", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.ID)
	assert.Equal(t, int64(5), resp.CreditBalance)
}

func TestUserHandler_GetMe_Anonymous(t *testing.T) {
	router, _ := newUserRouter(t, nil)

	rec := performRequest(t, router, http.MethodGet, "/api/me", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerr.CodeAuthenticationRequired, decodeError(t, rec).Code)
}

func TestUserHandler_UpdateMe(t *testing.T) {
	router, users := newUserRouter(t, testUser())

	updated := testUser()
	updated.FirstName = "Augusta"
	users.EXPECT().
		UpdateUser(mock.Anything, "idp_1", mock.MatchedBy(func(p entity.UserPatch) bool {
			return p.FirstName != nil && *p.FirstName == "Augusta" && p.Email == nil
		})).
		Return(updated, nil)

	rec := performRequest(t, router, http.MethodPatch, "/api/me", map[string]any{"firstName": "Augusta"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Augusta", resp.FirstName)
}

func TestUserHandler_UpdateMe_InvalidEmail(t *testing.T) {
	router, _ := newUserRouter(t, testUser())

	rec := performRequest(t, router, http.MethodPatch, "/api/me", map[string]any{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerr.CodeInvalidRequest, decodeError(t, rec).Code)
}

func TestUserHandler_DeleteMe(t *testing.T) {
	router, users := newUserRouter(t, testUser())
	users.EXPECT().DeleteUserByID(mock.Anything, "user-1").Return(testUser(), nil)

	rec := performRequest(t, router, http.MethodDelete, "/api/me", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_GetCredits(t *testing.T) {
	router, users := newUserRouter(t, testUser())
	users.EXPECT().CreditHistory(mock.Anything, "user-1", 5).Return([]*entity.CreditTransaction{
		{ID: "t1", UserID: "user-1", Delta: -1, BalanceAfter: 5, Reason: entity.ReasonTransformation, CreatedAt: fixedTime},
	}, nil)

	rec := performRequest(t, router, http.MethodGet, "/api/me/credits?limit=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.CreditsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.Balance)
	require.Len(t, resp.History, 1)
	assert.Equal(t, "transformation", resp.History[0].Reason)
}

func TestUserHandler_GetUser_PublicProjection(t *testing.T) {
	router, users := newUserRouter(t, testUser())

	other := testUser()
	other.ID = "user-2"
	users.EXPECT().GetByID(mock.Anything, "user-2").Return(other, nil)

	rec := performRequest(t, router, http.MethodGet, "/api/users/user-2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user-2", body["id"])
	assert.NotContains(t, body, "email")
	assert.NotContains(t, body, "creditBalance")
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	router, users := newUserRouter(t, testUser())
	users.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domainerr.ErrUserNotFound)

	rec := performRequest(t, router, http.MethodGet, "/api/users/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerr.CodeUserNotFound, decodeError(t, rec).Code)
}
