package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"frame-inbox/internal/api/http/handler"
	"frame-inbox/internal/config"
)

const limiterTTL = 5 * time.Minute

type ipLimiter struct {
	limiter *rate.Limiter
	expires time.Time
}

type limiterSet struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	limit    rate.Limit
	burst    int
}

// RateLimit applies a per-IP token bucket. PerMinute <= 0 disables it.
func RateLimit(cfg config.RateLimit) gin.HandlerFunc {
	if cfg.PerMinute <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = max(cfg.PerMinute/2, 1)
	}

	set := &limiterSet{
		limiters: make(map[string]*ipLimiter),
		limit:    rate.Every(time.Minute / time.Duration(cfg.PerMinute)),
		burst:    burst,
	}

	return func(c *gin.Context) {
		if !set.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, handler.ResponseWithMessage{
				Status:  handler.StatusErr,
				Message: "rate limit exceeded",
			})

			return
		}

		c.Next()
	}
}

func (s *limiterSet) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	for k, l := range s.limiters {
		if now.After(l.expires) {
			delete(s.limiters, k)
		}
	}

	if l, ok := s.limiters[key]; ok {
		l.expires = now.Add(limiterTTL)
		return l.limiter
	}

	l := &ipLimiter{
		limiter: rate.NewLimiter(s.limit, s.burst),
		expires: now.Add(limiterTTL),
	}
	s.limiters[key] = l

	return l.limiter
}
