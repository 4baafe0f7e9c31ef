package middleware

import (
	"strconv"
	"time"

	"oakline-partners/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency. The route template
// keys the endpoint label so lead IDs in the path do not explode its
// cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, endpoint, status).Observe(time.Since(start).Seconds())

		// Services flag cache_hit on lookups that consulted redis.
		if hit, flagged := c.Get("cache_hit"); flagged {
			if hit.(bool) {
				metrics.CacheHitsTotal.Inc()
			} else {
				metrics.CacheMissesTotal.Inc()
			}
		}
	}
}
