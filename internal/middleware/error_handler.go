package middleware

import (
	"oakline-partners/internal/errors"
	"oakline-partners/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached as the standard
// error envelope. Handlers call c.Error and return; this is the only place
// that writes error responses for them.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := errors.MapError(c.Errors.Last().Err)
		logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, code=%s, error=%s",
			c.Request.URL.Path, c.Request.Method, c.ClientIP(), appErr.Code, appErr.TechnicalMessage)

		c.JSON(appErr.HTTPStatus, gin.H{
			"error": gin.H{
				"message": appErr.UserMessage,
				"code":    appErr.Code,
			},
		})
	}
}
