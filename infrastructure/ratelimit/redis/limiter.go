// ABOUTME: Redis backed fixed-window rate limiter shared by all service instances
// ABOUTME: Counts requests per client and window with INCR and EXPIRE

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"product-composite-api/core/interfaces"
	"product-composite-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit"

// Limiter allows limit requests per client key in each fixed window
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger interfaces.Logger
	now    func() time.Time
}

// NewLimiter connects to Redis and creates a new limiter
func NewLimiter(cfg config.RedisConfig, limit int, window time.Duration, logger interfaces.Logger) (*Limiter, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Limiter{
		client: client,
		limit:  limit,
		window: window,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Allow reports whether a request from key may proceed.
// Requests are let through when Redis cannot be reached.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	windowKey := l.windowKey(key)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.Warn("Rate limit check failed, allowing request", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return true
	}

	return count.Val() <= int64(l.limit)
}

// Limit returns the number of requests allowed per window
func (l *Limiter) Limit() int {
	return l.limit
}

// Window returns the window length
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Close closes the Redis connection
func (l *Limiter) Close() error {
	return l.client.Close()
}

func (l *Limiter) windowKey(key string) string {
	window := l.now().UnixNano() / int64(l.window)
	return fmt.Sprintf("%s:%s:%d", keyPrefix, key, window)
}
