package ratelimit

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/pixelsmith/server/internal/logger"
)

// Limiter throttles requests per client IP. Counting happens in Redis
// so limits hold across replicas; when Redis is unconfigured or
// unreachable, a process-local token bucket takes over.
type Limiter struct {
	remote   *redis_rate.Limiter
	fallback *localLimiter
	limit    redis_rate.Limit
}

// rdb may be nil, in which case only the local limiter runs
func New(rdb *redis.Client, limit redis_rate.Limit) *Limiter {
	var remote *redis_rate.Limiter
	if rdb != nil {
		remote = redis_rate.NewLimiter(rdb)
	}

	return &Limiter{
		remote:   remote,
		fallback: newLocalLimiter(),
		limit:    limit,
	}
}

// PerMinute builds a limit of n requests per minute with the given burst
func PerMinute(n, burst int) redis_rate.Limit {
	return redis_rate.Limit{
		Rate:   n,
		Burst:  burst,
		Period: time.Minute,
	}
}

// returns a Gin middleware enforcing the limit per client IP
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:ip:" + c.ClientIP()

		res := l.allow(c, key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.limit.Rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if res.Allowed == 0 {
			retryAfter := int(res.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": "too many requests. please slow down.",
			})
			return
		}

		c.Next()
	}
}

func (l *Limiter) allow(c *gin.Context, key string) *redis_rate.Result {
	if l.remote != nil {
		res, err := l.remote.Allow(c.Request.Context(), key, l.limit)
		if err == nil {
			return res
		}

		logger.ErrorErr(err, "redis rate limiter unavailable, using local fallback", "key", key)
	}

	return l.fallback.allow(key, l.limit)
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess int64
}

// in-process limiter keyed by client, with stale entry eviction
type localLimiter struct {
	limiters sync.Map
}

const (
	cleanupInterval = 5 * time.Minute
	entryTTL        = 10 * time.Minute
)

func newLocalLimiter() *localLimiter {
	l := &localLimiter{}
	go l.cleanup()
	return l
}

func (l *localLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-entryTTL).Unix()
		l.limiters.Range(func(key, value any) bool {
			entry, ok := value.(*limiterEntry)
			if ok && entry.lastAccess < cutoff {
				l.limiters.Delete(key)
			}
			return true
		})
	}
}

func (l *localLimiter) allow(key string, limit redis_rate.Limit) *redis_rate.Result {
	ratePerSec := float64(limit.Rate) / limit.Period.Seconds()
	now := time.Now().Unix()

	entryI, loaded := l.limiters.Load(key)
	if !loaded {
		newEntry := &limiterEntry{
			limiter:    rate.NewLimiter(rate.Limit(ratePerSec), limit.Burst),
			lastAccess: now,
		}
		entryI, _ = l.limiters.LoadOrStore(key, newEntry)
	}

	entry, ok := entryI.(*limiterEntry)
	if !ok {
		// cannot happen, the map only ever holds limiterEntry values
		return &redis_rate.Result{Limit: limit, Allowed: 1}
	}
	entry.lastAccess = now

	allowed := entry.limiter.Allow()

	remaining := int(entry.limiter.Tokens())
	if remaining < 0 {
		remaining = 0
	}

	retryAfter := time.Duration(-1)
	allowedInt := 1
	if !allowed {
		allowedInt = 0
		retryAfter = time.Duration(float64(time.Second) / ratePerSec)
	}

	return &redis_rate.Result{
		Limit:      limit,
		Allowed:    allowedInt,
		Remaining:  remaining,
		RetryAfter: retryAfter,
		ResetAfter: time.Duration(float64(time.Second) / ratePerSec),
	}
}
