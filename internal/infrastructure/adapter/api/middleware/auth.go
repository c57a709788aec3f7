package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	identityKey    = "identityId"
	currentUserKey = "currentUser"
)

var errMissingToken = errors.New("missing bearer token")

// Authenticator verifies identity provider tokens and resolves the local user
type Authenticator struct {
	secret []byte
	issuer string
	users  usecase.UserUseCase
	logger coreport.Logger
}

// NewAuthenticator creates an authenticator for HS256 tokens signed with cfg.JWTSecret
func NewAuthenticator(cfg config.AuthConfig, users usecase.UserUseCase, logger coreport.Logger) *Authenticator {
	return &Authenticator{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		users:  users,
		logger: logger,
	}
}

// IdentityID returns the verified token subject, or "" when the request is anonymous
func IdentityID(c *gin.Context) string {
	return c.GetString(identityKey)
}

// CurrentUser returns the user resolved by RequireUser
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok && user != nil
}

// SetCurrentUser attaches an authenticated user to the request
func SetCurrentUser(c *gin.Context, user *entity.User) {
	c.Set(identityKey, user.IdentityID)
	c.Set(currentUserKey, user)
}

// OptionalIdentity records the token subject when a valid token is present and never rejects
func (a *Authenticator) OptionalIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if subject, err := a.authenticate(c.GetHeader("Authorization")); err == nil {
			c.Set(identityKey, subject)
		}
		c.Next()
	}
}

// RequireUser rejects anonymous requests and loads the mirrored user
func (a *Authenticator) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := IdentityID(c)
		if subject == "" {
			var err error
			subject, err = a.authenticate(c.GetHeader("Authorization"))
			if err != nil {
				a.logger.Warn("Authentication failed", map[string]any{
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
					"error":  err.Error(),
				})
				abortUnauthenticated(c)
				return
			}
			c.Set(identityKey, subject)
		}

		user, err := a.users.FindOneBy(c.Request.Context(), persistence.UserFilter{IdentityID: subject})
		if err != nil {
			if domainerr.IsNotFoundError(err) {
				a.logger.Warn("Token subject has no local user", map[string]any{
					"identityId": subject,
				})
				abortUnauthenticated(c)
				return
			}
			a.logger.Error("Failed to resolve authenticated user", map[string]any{
				"identityId": subject,
				"error":      err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Internal server error",
			})
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// authenticate validates a bearer header and returns the token subject
func (a *Authenticator) authenticate(header string) (string, error) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errMissingToken
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		options = append(options, jwt.WithIssuer(a.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, options...)
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}

func abortUnauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrAuthenticationRequired),
		Message: "Authentication required",
	})
}
