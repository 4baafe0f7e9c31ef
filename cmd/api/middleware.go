package main

import (
	"os"
	"time"

	"oakline-partners/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsOrigins is the browser allowlist outside local development.
var corsOrigins = []string{"https://partners.oakline.com"}

func (a *App) setupMiddleware() {
	// Registration order matters on the way out: ErrorHandler must sit inside
	// LoggingMiddleware so access logs record the status it writes.
	a.Router.Use(
		setupCORS(),
		middleware.MetricsMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.RateLimitMiddleware(a.RateLimiter),
		middleware.SecureHeaders(),
		middleware.ErrorHandler(),
		gin.Recovery(),
	)
}

func setupCORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"}
	cfg.ExposeHeaders = []string{"Content-Length"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 12 * time.Hour

	if os.Getenv("ENV") == "production" {
		cfg.AllowOrigins = corsOrigins
	} else {
		cfg.AllowAllOrigins = true
	}

	return cors.New(cfg)
}
