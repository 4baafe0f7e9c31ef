package middleware

import (
	"net/http"
	"sync"
	"time"

	"oakline-partners/internal/errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. Buckets are created on
// first sight and swept once they have been idle long enough to refill.
type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.RWMutex
	limit    rate.Limit
	burst    int
	stop     chan struct{}
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    r,
		burst:    b,
		stop:     make(chan struct{}),
	}
}

func (rl *RateLimiter) bucketFor(ip string) *rate.Limiter {
	rl.mu.RLock()
	bucket, ok := rl.visitors[ip]
	rl.mu.RUnlock()
	if ok {
		return bucket
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	// Re-check under the write lock: another request may have won the race.
	if bucket, ok = rl.visitors[ip]; !ok {
		bucket = rate.NewLimiter(rl.limit, rl.burst)
		rl.visitors[ip] = bucket
	}
	return bucket
}

// RateLimitMiddleware rejects requests once a client's bucket is drained.
func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.bucketFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"message": errors.MsgRateLimited,
					"code":    errors.ErrCodeRateLimited,
				},
			})
			return
		}
		c.Next()
	}
}

// Cleanup sweeps idle buckets hourly until Stop is called. Run it on its own
// goroutine.
func (rl *RateLimiter) Cleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, bucket := range rl.visitors {
				// A full bucket means no requests since the last sweep.
				if bucket.Tokens() == float64(rl.burst) {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop terminates the cleanup loop.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}
