package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"tamrah/internal/logging"
)

const limiterIdleTTL = time.Hour

// RateLimiter implements per-IP rate limiting with periodic cleanup of
// idle clients.
type RateLimiter struct {
	limiters  map[string]*rateLimiterEntry
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	now       func() time.Time
	stopClean chan struct{}
	stopOnce  sync.Once
}

type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter allows reqsPerWindow requests per window from each IP,
// with bursts up to reqsPerWindow.
func NewRateLimiter(reqsPerWindow int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rateLimiterEntry),
		rate:      rate.Limit(float64(reqsPerWindow) / window.Seconds()),
		burst:     reqsPerWindow,
		now:       time.Now,
		stopClean: make(chan struct{}),
	}
}

// Allow reports whether a request from ip may proceed.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &rateLimiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[ip] = entry
	}
	entry.lastAccess = rl.now()
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

// StartCleanup removes idle limiters every interval until Stop is called.
func (rl *RateLimiter) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopClean:
				return
			}
		}
	}()
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := rl.now().Add(-limiterIdleTTL)
	for ip, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, ip)
		}
	}
}

// Stop stops the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopClean) })
}

// RateLimit rejects requests over the limit with 429.
func RateLimit(rl *RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rl.Allow(c.IP()) {
			return c.Next()
		}
		logging.Warn().Str("ip", c.IP()).Str("path", c.Path()).Msg("Rate limit exceeded")
		c.Set(fiber.HeaderRetryAfter, "1")
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Too many requests",
		})
	}
}
