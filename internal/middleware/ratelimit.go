package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h2grid/h2grid-api/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultCleanupInterval = 5 * time.Minute
	defaultIdleLimiterTTL  = 10 * time.Minute
)

// RateLimiter limits requests per client
type RateLimiter struct {
	limiters sync.Map
	rate     int
	burst    int

	// idle limiters are swept lazily from the request path
	cleanupInterval time.Duration
	idleTTL         time.Duration
	mu              sync.Mutex
	lastCleanup     time.Time
	now             func() time.Time
}

type limiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

func (e *limiterEntry) touch(now time.Time) {
	e.mu.Lock()
	e.lastAccess = now
	e.mu.Unlock()
}

func (e *limiterEntry) idleSince() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastAccess
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with burst
func NewRateLimiter(requestsPerSecond, burst int) *RateLimiter {
	return &RateLimiter{
		rate:            requestsPerSecond,
		burst:           burst,
		cleanupInterval: defaultCleanupInterval,
		idleTTL:         defaultIdleLimiterTTL,
		now:             time.Now,
	}
}

// maybeCleanup drops limiters not used within idleTTL, at most once per
// cleanupInterval
func (rl *RateLimiter) maybeCleanup(now time.Time) {
	rl.mu.Lock()
	if now.Sub(rl.lastCleanup) < rl.cleanupInterval {
		rl.mu.Unlock()
		return
	}
	rl.lastCleanup = now
	rl.mu.Unlock()

	rl.limiters.Range(func(key, value interface{}) bool {
		if entry, ok := value.(*limiterEntry); ok && now.Sub(entry.idleSince()) > rl.idleTTL {
			rl.limiters.Delete(key)
		}
		return true
	})
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := rl.now()
	rl.maybeCleanup(now)

	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.touch(now)
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(rl.rate), rl.burst),
		lastAccess: now,
	}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// size counts tracked clients
func (rl *RateLimiter) size() int {
	n := 0
	rl.limiters.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// getClientIdentifier prefers the authenticated user over the client IP
func getClientIdentifier(c *gin.Context) string {
	if userID := GetUserID(c); userID != "" {
		return fmt.Sprintf("user:%s", userID)
	}
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		return fmt.Sprintf("ip:%s", forwardedFor)
	}
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return fmt.Sprintf("ip:%s", clientIP)
}

// Middleware returns a Gin middleware handler for rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/healthz" {
			c.Next()
			return
		}

		clientID := getClientIdentifier(c)
		limiter := rl.getLimiter(clientID)

		reset := fmt.Sprintf("%d", rl.now().Add(time.Second).Unix())
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.rate))
		c.Header("X-RateLimit-Reset", reset)

		if !limiter.Allow() {
			logger.OrNop(nil).Warn("Rate limit exceeded",
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("correlation_id", GetCorrelationID(c)),
			)

			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":          "Too many requests. Please try again later.",
				"correlation_id": GetCorrelationID(c),
				"retry_after":    1,
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Next()
	}
}

// Shared limiters. They hold no goroutines, so importing the package
// starts nothing.
var (
	// DefaultRateLimiter for general API endpoints
	DefaultRateLimiter = NewRateLimiter(100, 200)

	// StrictRateLimiter for credential endpoints
	StrictRateLimiter = NewRateLimiter(10, 20)

	// RelaxedRateLimiter for chart image polling
	RelaxedRateLimiter = NewRateLimiter(500, 1000)
)
