// ABOUTME: In-memory per-client rate limiter built on token buckets
// ABOUTME: Idle client buckets expire from a go-cache registry after one window

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Limiter grants each client key a burst of limit requests refilled over window
type Limiter struct {
	limit   int
	window  time.Duration
	buckets *cache.Cache
	mu      sync.Mutex
}

// NewLimiter creates a new in-memory limiter
func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		buckets: cache.New(window, 2*window),
	}
}

// Allow reports whether a request from key may proceed
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	return l.bucket(key).Allow()
}

// Limit returns the number of requests allowed per window
func (l *Limiter) Limit() int {
	return l.limit
}

// Window returns the refill window
func (l *Limiter) Window() time.Duration {
	return l.window
}

// bucket returns the token bucket of key and pushes back its expiry
func (l *Limiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	var limiter *rate.Limiter
	if v, ok := l.buckets.Get(key); ok {
		limiter = v.(*rate.Limiter)
	} else {
		every := l.window / time.Duration(l.limit)
		limiter = rate.NewLimiter(rate.Every(every), l.limit)
	}

	l.buckets.Set(key, limiter, cache.DefaultExpiration)
	return limiter
}
