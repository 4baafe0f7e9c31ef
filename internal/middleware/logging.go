package middleware

import (
	"time"

	"oakline-partners/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware writes one access-log line per request after the
// handler chain finishes. Anonymous requests log partner=-.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		partner := c.GetString("partner_id")
		if partner == "" {
			partner = "-"
		}
		logger.GlobalLogger.Printf("%s %s %d %v partner=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), partner)
	}
}
