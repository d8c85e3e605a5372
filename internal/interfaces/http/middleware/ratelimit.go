package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client key. Buckets of idle
// clients expire after two windows.
type RateLimiter struct {
	clients *gocache.Cache
	limit   rate.Limit
	burst   int
	ttl     time.Duration
}

// NewRateLimiter allows requests per window on average, with bursts of up
// to burst requests. A burst below 1 falls back to requests.
func NewRateLimiter(requests int, window time.Duration, burst int) *RateLimiter {
	if burst < 1 {
		burst = requests
	}
	return &RateLimiter{
		clients: gocache.New(window*2, window*2),
		limit:   rate.Limit(float64(requests) / window.Seconds()),
		burst:   burst,
		ttl:     window * 2,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	if l, ok := rl.clients.Get(key); ok {
		return l.(*rate.Limiter)
	}
	l := rate.NewLimiter(rl.limit, rl.burst)
	if err := rl.clients.Add(key, l, rl.ttl); err != nil {
		// lost the race to another request for the same key
		if existing, ok := rl.clients.Get(key); ok {
			return existing.(*rate.Limiter)
		}
	}
	return l
}

// Allow reports whether a request from key may proceed now
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key).Allow()
}

// Remaining returns the whole tokens left for key
func (rl *RateLimiter) Remaining(key string) int {
	return int(math.Max(0, math.Floor(rl.limiter(key).Tokens())))
}

// RateLimit limits each client IP. Rejected requests get 429 with a
// Retry-After hint.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			retryAfter := 1
			if limiter.limit > 0 {
				retryAfter = int(math.Ceil(1 / float64(limiter.limit)))
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(dto.MsgRateLimited))
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Next()
	}
}
