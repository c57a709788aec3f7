package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    maxRetries,
		RetryInterval: time.Millisecond,
		MaxInterval:   2 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoopLogger()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetry(3), func() error {
			calls++
			if calls < 3 {
				return errors.New("read: connection reset by peer")
			}
			return nil
		}, log)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent error", func(t *testing.T) {
		calls := 0
		permanent := errors.New("relation \"images\" does not exist")
		err := RetryOnTransientError(ctx, fastRetry(5), func() error {
			calls++
			return permanent
		}, log)

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetry(2), func() error {
			calls++
			return errors.New("deadlock detected")
		}, log)

		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("honors cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		cfg := fastRetry(5)
		cfg.RetryInterval = time.Hour
		cfg.MaxInterval = time.Hour

		err := RetryOnTransientError(cancelled, cfg, func() error {
			return errors.New("connection refused")
		}, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffCapsAtMax(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(10, cfg))
}
