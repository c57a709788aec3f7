package middleware

import (
	"net/http"
	"sync"
	"time"

	domainerr "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per identity or client IP
type RateLimiter struct {
	limiters     map[string]*limiterEntry
	mu           sync.Mutex
	rate         rate.Limit
	burst        int
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(requestsPerSecond float64, burst int, timeProvider coreport.TimeProvider, logger coreport.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters:     make(map[string]*limiterEntry),
		rate:         rate.Limit(requestsPerSecond),
		burst:        burst,
		timeProvider: timeProvider,
		logger:       logger,
		stopChan:     make(chan struct{}),
	}
}

// getLimiter returns the bucket for key, creating it on first use
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = rl.timeProvider.Now()

	return entry.limiter
}

// Handler returns the rate limiting middleware
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := IdentityID(c)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		if !rl.getLimiter(key).Allow() {
			rl.logger.Warn("Rate limit exceeded", map[string]any{
				"key":    key,
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			})
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrRateLimited),
				Message: "Too many requests",
			})
			return
		}

		c.Next()
	}
}

// Cleanup removes buckets not used within idle and returns how many were dropped
func (rl *RateLimiter) Cleanup(idle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.timeProvider.Now().Add(-idle)
	removed := 0
	for key, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
			removed++
		}
	}
	return removed
}

// StartCleanup periodically drops buckets idle for longer than interval
func (rl *RateLimiter) StartCleanup(interval time.Duration) {
	ticker := rl.timeProvider.NewTicker(coreport.Duration(interval))
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C():
				if removed := rl.Cleanup(interval); removed > 0 {
					rl.logger.Debug("Rate limiter buckets evicted", map[string]any{
						"removed": removed,
					})
				}
			case <-rl.stopChan:
				return
			}
		}
	}()
}

// Stop ends the cleanup loop
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopChan)
	})
}
