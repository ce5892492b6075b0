package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiterAllowsWithinBurst(t *testing.T) {
	local := newLocalLimiter()
	limit := PerMinute(60, 3)

	for i := 0; i < 3; i++ {
		res := local.allow("client-a", limit)
		assert.Equal(t, 1, res.Allowed, "request %d within burst should pass", i+1)
	}
}

func TestLocalLimiterBlocksBeyondBurst(t *testing.T) {
	local := newLocalLimiter()
	limit := redis_rate.Limit{Rate: 1, Burst: 1, Period: time.Hour}

	first := local.allow("client-b", limit)
	require.Equal(t, 1, first.Allowed)

	second := local.allow("client-b", limit)
	assert.Equal(t, 0, second.Allowed)
	assert.Greater(t, second.RetryAfter, time.Duration(0))
}

func TestLocalLimiterIsolatesKeys(t *testing.T) {
	local := newLocalLimiter()
	limit := redis_rate.Limit{Rate: 1, Burst: 1, Period: time.Hour}

	require.Equal(t, 1, local.allow("client-c", limit).Allowed)
	require.Equal(t, 0, local.allow("client-c", limit).Allowed)

	assert.Equal(t, 1, local.allow("client-d", limit).Allowed)
}

func TestMiddlewareWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := New(nil, redis_rate.Limit{Rate: 1, Burst: 1, Period: time.Hour})

	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	first := do()
	require.Equal(t, http.StatusOK, first.Code)

	second := do()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}
