package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/transform-studio/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimiterRouter(t *testing.T, timeMock *coremocks.MockTimeProvider, identity string) (*gin.Engine, *RateLimiter) {
	limiter := NewRateLimiter(0.001, 2, timeMock, newTestLogger(t))

	router := gin.New()
	if identity != "" {
		router.Use(func(c *gin.Context) {
			SetCurrentUser(c, &entity.User{ID: "u", IdentityID: identity})
			c.Next()
		})
	}
	router.Use(limiter.Handler())
	router.GET("/api/images", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, limiter
}

func TestRateLimiter_RejectsAfterBurst(t *testing.T) {
	timeMock := coremocks.NewMockTimeProvider(t)
	timeMock.EXPECT().Now().Return(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	router, _ := newLimiterRouter(t, timeMock, "")

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(router, httptest.NewRequest(http.MethodGet, "/api/images", nil)).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_SeparateBucketsPerIdentity(t *testing.T) {
	timeMock := coremocks.NewMockTimeProvider(t)
	timeMock.EXPECT().Now().Return(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	routerA, limiter := newLimiterRouter(t, timeMock, "idp_a")
	for i := 0; i < 2; i++ {
		serve(routerA, httptest.NewRequest(http.MethodGet, "/api/images", nil))
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(routerA, httptest.NewRequest(http.MethodGet, "/api/images", nil)).Code)

	// a different identity on the same limiter still has its full burst
	routerB := gin.New()
	routerB.Use(func(c *gin.Context) {
		SetCurrentUser(c, &entity.User{ID: "v", IdentityID: "idp_b"})
		c.Next()
	})
	routerB.Use(limiter.Handler())
	routerB.GET("/api/images", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(routerB, httptest.NewRequest(http.MethodGet, "/api/images", nil)).Code)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	timeMock := coremocks.NewMockTimeProvider(t)
	timeMock.EXPECT().Now().Return(start).Times(2)
	timeMock.EXPECT().Now().Return(start.Add(time.Hour))

	limiter := NewRateLimiter(1, 1, timeMock, newTestLogger(t))
	limiter.getLimiter("ip:1")
	limiter.getLimiter("ip:2")

	assert.Equal(t, 2, limiter.Cleanup(10*time.Minute))
	assert.Empty(t, limiter.limiters)
}

func TestRateLimiter_StartCleanupStops(t *testing.T) {
	timeMock := coremocks.NewMockTimeProvider(t)
	ticker := coremocks.NewMockTicker(t)
	ch := make(chan time.Time)
	stopped := make(chan struct{})

	timeMock.EXPECT().NewTicker(coreport.Duration(10*time.Minute)).Return(ticker)
	ticker.EXPECT().C().Return((<-chan time.Time)(ch))
	ticker.EXPECT().Stop().Run(func() { close(stopped) })

	limiter := NewRateLimiter(1, 1, timeMock, newTestLogger(t))
	limiter.StartCleanup(10 * time.Minute)
	limiter.Stop()
	limiter.Stop()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}
