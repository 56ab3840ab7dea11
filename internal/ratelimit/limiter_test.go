package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFallbackLimiter(config Config) *RateLimiter {
	// No Redis address configured: the limiter runs on the in-memory path.
	return NewRateLimiter(NewRedisClient("", "", 0), config)
}

func TestFallbackAllowsBurstThenBlocks(t *testing.T) {
	rl := newFallbackLimiter(Config{SubmissionsPerMin: 10, Burst: 3})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res := rl.AllowSubmission(ctx, "10.0.0.1")
		assert.True(t, res.Allowed, "request %d within burst must pass", i+1)
	}

	res := rl.AllowSubmission(ctx, "10.0.0.1")
	require.False(t, res.Allowed)
	assert.Greater(t, res.RetryAfter.Seconds(), 0.0)
}

func TestFallbackIsolatesClients(t *testing.T) {
	rl := newFallbackLimiter(Config{SubmissionsPerMin: 10, Burst: 1})
	ctx := context.Background()

	require.True(t, rl.AllowSubmission(ctx, "10.0.0.1").Allowed)
	require.False(t, rl.AllowSubmission(ctx, "10.0.0.1").Allowed)

	assert.True(t, rl.AllowSubmission(ctx, "10.0.0.2").Allowed, "another client keeps its own budget")
}

func TestDisabledRedisClient(t *testing.T) {
	client := NewRedisClient("", "", 0)
	assert.False(t, client.IsEnabled())
	assert.NoError(t, client.Close())
	assert.Error(t, client.HealthCheck(context.Background()))
}

func TestMiddlewareRejectsWith429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := newFallbackLimiter(Config{SubmissionsPerMin: 10, Burst: 1})

	r := gin.New()
	r.POST("/api/assessments", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/assessments", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/assessments", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
