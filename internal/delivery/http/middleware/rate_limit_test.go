package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("error")
	os.Exit(m.Run())
}

func TestInMemoryRateLimitCounts(t *testing.T) {
	cfg := RateLimitConfig{Limit: 5, Window: time.Minute, KeyPrefix: "rl:test:"}
	key := "rl:test:counts"
	defer rateLimitStore.Delete(key)

	now := time.Now()
	for want := 1; want <= 3; want++ {
		count, resetAt := checkRateLimitInMemory(key, cfg, now)
		assert.Equal(t, want, count)
		assert.True(t, resetAt.After(now))
	}
}

func TestInMemoryRateLimitWindowReset(t *testing.T) {
	cfg := RateLimitConfig{Limit: 5, Window: time.Minute, KeyPrefix: "rl:test:"}
	key := "rl:test:window-reset"
	defer rateLimitStore.Delete(key)

	now := time.Now()
	checkRateLimitInMemory(key, cfg, now)
	checkRateLimitInMemory(key, cfg, now)

	// A request after the window lapses starts a fresh count.
	later := now.Add(cfg.Window + time.Second)
	count, resetAt := checkRateLimitInMemory(key, cfg, later)
	assert.Equal(t, 1, count)
	assert.True(t, resetAt.After(later))
}

func TestInMemoryRateLimitSurvivesConcurrentEviction(t *testing.T) {
	cfg := RateLimitConfig{Limit: 5, Window: time.Minute, KeyPrefix: "rl:test:"}
	key := "rl:test:eviction"
	defer rateLimitStore.Delete(key)

	now := time.Now()

	// Register an entry and hold its lock so the check below parks on it,
	// the same position a request is in when the cleanup pass fires.
	stale := &rateLimitEntry{resetAt: now.Add(cfg.Window)}
	rateLimitStore.Store(key, stale)
	stale.mu.Lock()

	done := make(chan int)
	go func() {
		count, _ := checkRateLimitInMemory(key, cfg, now)
		done <- count
	}()

	// Evict and replace the entry while the request is parked, then release
	// it. The request must count against the live entry, not the evicted
	// one, so the client's prior requests are not forgotten.
	replacement := &rateLimitEntry{count: 3, resetAt: now.Add(cfg.Window)}
	rateLimitStore.Store(key, replacement)
	stale.mu.Unlock()

	assert.Equal(t, 4, <-done)
}

func TestRateLimitMiddlewareRejectsOverLimit(t *testing.T) {
	cfg := RateLimitConfig{Limit: 2, Window: time.Minute, KeyPrefix: "rl:test:mw:"}
	defer rateLimitStore.Delete(cfg.KeyPrefix + "192.0.2.1")

	router := gin.New()
	router.Use(RateLimitMiddleware(cfg))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	doRequest := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, doRequest().Code)
	assert.Equal(t, http.StatusOK, doRequest().Code)

	w := doRequest()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
