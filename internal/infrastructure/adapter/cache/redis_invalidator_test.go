package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/transform-studio/mocks/port/core"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	channel string
	message []byte
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.message, _ = message.([]byte)
	return redis.NewIntResult(1, f.err)
}

func TestRedisInvalidator_Publishes(t *testing.T) {
	pub := &fakePublisher{}
	inv := NewRedisInvalidator(pub, "studio:invalidate", timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())

	err := inv.Invalidate(context.Background(), "/profile")

	require.NoError(t, err)
	assert.Equal(t, "studio:invalidate", pub.channel)

	var got struct {
		Path string    `json:"path"`
		At   time.Time `json:"at"`
	}
	require.NoError(t, json.Unmarshal(pub.message, &got))
	assert.Equal(t, "/profile", got.Path)
	assert.False(t, got.At.IsZero())
}

func TestRedisInvalidator_ReturnsPublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection refused")}
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Warn("Failed to publish cache invalidation", map[string]any{
		"path":    "/",
		"channel": "c",
		"error":   "connection refused",
	}).Once()
	inv := NewRedisInvalidator(pub, "c", timeadapter.NewRealTimeProvider(), log)

	err := inv.Invalidate(context.Background(), "/")

	assert.EqualError(t, err, "connection refused")
}

func TestNoopInvalidator(t *testing.T) {
	assert.NoError(t, NewNoopInvalidator().Invalidate(context.Background(), "/"))
}
