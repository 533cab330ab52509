package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func get(router *gin.Engine, path, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("X-Forwarded-For", ip)
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allows requests within rate limit", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiter(10, 20))
		for i := 0; i < 10; i++ {
			w := get(router, "/test", "192.168.1.1")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
			assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("blocks requests exceeding rate limit", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiter(1, 2))
		var codes []int
		for i := 0; i < 3; i++ {
			codes = append(codes, get(router, "/test", "192.168.1.2").Code)
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

		w := get(router, "/test", "192.168.1.2")
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "Too many requests")
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiter(1, 1))
		assert.Equal(t, http.StatusOK, get(router, "/test", "10.0.0.1").Code)
		assert.Equal(t, http.StatusTooManyRequests, get(router, "/test", "10.0.0.1").Code)
		assert.Equal(t, http.StatusOK, get(router, "/test", "10.0.0.2").Code)
	})

	t.Run("health is never limited", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiter(1, 1))
		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, get(router, "/health", "10.0.0.3").Code)
		}
	})

	t.Run("authenticated users are keyed by subject", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
		c.Set(userIDKey, "user-42")
		assert.Equal(t, "user:user-42", getClientIdentifier(c))
	})

	t.Run("concurrent requests", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiter(1000, 1000))
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, http.StatusOK, get(router, "/test", "10.1.1.1").Code)
			}()
		}
		wg.Wait()
	})
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(10, 10)
	rl.now = func() time.Time { return now }

	rl.getLimiter("ip:a")
	rl.getLimiter("ip:b")
	assert.Equal(t, 2, rl.size())

	now = now.Add(6 * time.Minute)
	rl.getLimiter("ip:b")

	now = now.Add(6 * time.Minute)
	rl.getLimiter("ip:c")

	// a idle for 12m is dropped, b idle for 6m survives
	assert.Equal(t, 2, rl.size())
	_, ok := rl.limiters.Load("ip:a")
	assert.False(t, ok)
}
