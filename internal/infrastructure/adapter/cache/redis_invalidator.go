package cache

import (
	"context"
	"encoding/json"
	"time"

	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/external"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/config"
	"github.com/go-redis/redis/v8"
)

const publishTimeout = 2 * time.Second

// publisher is the slice of the redis client the invalidator needs
type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// invalidation is the message consumers of the channel receive
type invalidation struct {
	Path string    `json:"path"`
	At   time.Time `json:"at"`
}

// RedisInvalidator publishes stale page paths on a redis channel
type RedisInvalidator struct {
	client       publisher
	channel      string
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRedisClient opens a client for the configured redis instance
func NewRedisClient(cfg config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisInvalidator creates an invalidator publishing on channel
func NewRedisInvalidator(client publisher, channel string, timeProvider coreport.TimeProvider, logger coreport.Logger) *RedisInvalidator {
	return &RedisInvalidator{
		client:       client,
		channel:      channel,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Invalidate implements external.CacheInvalidator
func (r *RedisInvalidator) Invalidate(ctx context.Context, path string) error {
	message, err := json.Marshal(invalidation{Path: path, At: r.timeProvider.Now().UTC()})
	if err != nil {
		return err
	}

	ctx, cancel := r.timeProvider.WithTimeout(ctx, coreport.Duration(publishTimeout))
	defer cancel()

	receivers, err := r.client.Publish(ctx, r.channel, message).Result()
	if err != nil {
		r.logger.Warn("Failed to publish cache invalidation", map[string]any{
			"path":    path,
			"channel": r.channel,
			"error":   err.Error(),
		})
		return err
	}

	r.logger.Debug("Cache invalidation published", map[string]any{
		"path":      path,
		"receivers": receivers,
	})
	return nil
}

// NoopInvalidator is used when cache invalidation is disabled
type NoopInvalidator struct{}

// NewNoopInvalidator creates an invalidator that does nothing
func NewNoopInvalidator() *NoopInvalidator {
	return &NoopInvalidator{}
}

// Invalidate implements external.CacheInvalidator
func (*NoopInvalidator) Invalidate(context.Context, string) error {
	return nil
}

var (
	_ external.CacheInvalidator = (*RedisInvalidator)(nil)
	_ external.CacheInvalidator = (*NoopInvalidator)(nil)
)
