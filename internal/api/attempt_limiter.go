package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// attemptLimiter counts failed logins per key inside a sliding window.
type attemptLimiter struct {
	mu       sync.Mutex
	failures map[string][]time.Time
}

func newAttemptLimiter() *attemptLimiter {
	return &attemptLimiter{
		failures: make(map[string][]time.Time),
	}
}

func (limiter *attemptLimiter) tooManyRecent(key string, now time.Time, limit int, window time.Duration) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	return len(limiter.pruneLocked(key, now, window)) >= limit
}

func (limiter *attemptLimiter) addFailure(key string, now time.Time, window time.Duration) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	recent := limiter.pruneLocked(key, now, window)
	limiter.failures[key] = append(recent, now)
}

func (limiter *attemptLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.failures, key)
}

func (limiter *attemptLimiter) pruneLocked(key string, now time.Time, window time.Duration) []time.Time {
	values := limiter.failures[key]
	if len(values) == 0 {
		return nil
	}

	threshold := now.Add(-window)
	kept := values[:0]
	for _, value := range values {
		if value.After(threshold) {
			kept = append(kept, value)
		}
	}

	if len(kept) == 0 {
		delete(limiter.failures, key)
		return nil
	}
	limiter.failures[key] = kept
	return kept
}

const (
	uploadRatePerMinute = 10
	uploadBurst         = 5
)

// uploadLimiter keeps one token bucket per user.
type uploadLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	buckets map[uint]*rate.Limiter
}

func newUploadLimiter(perMinute int, burst int) *uploadLimiter {
	return &uploadLimiter{
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
		buckets: make(map[uint]*rate.Limiter),
	}
}

func (limiter *uploadLimiter) allow(userID uint, now time.Time) bool {
	limiter.mu.Lock()
	bucket, ok := limiter.buckets[userID]
	if !ok {
		bucket = rate.NewLimiter(limiter.limit, limiter.burst)
		limiter.buckets[userID] = bucket
	}
	limiter.mu.Unlock()

	return bucket.AllowN(now, 1)
}

func requestLimiterKey(c *fiber.Ctx) string {
	key := strings.TrimSpace(c.IP())
	if key == "" {
		return "unknown"
	}
	return key
}
