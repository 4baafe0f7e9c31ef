package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"oakline-partners/internal/middleware"
	"oakline-partners/pkg/cache"
	"oakline-partners/pkg/database"
	"oakline-partners/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "net/http/pprof"

	_ "oakline-partners/docs"
)

const healthPingTimeout = 5 * time.Second

func (a *App) setupRoutes() {
	a.setupOperationalRoutes()
	a.setupAPIRoutes()
}

// setupOperationalRoutes registers the endpoints that are not part of the
// partner API: docs, metrics, profiling, and the health probe.
func (a *App) setupOperationalRoutes() {
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof stays off in production.
	if os.Getenv("ENV") != "production" {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	a.Router.GET("/health", healthHandler)
}

// healthHandler reports 200 only when both backing stores answer a ping.
func healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	checks := []struct {
		name string
		ping func(context.Context) error
	}{
		{"mongodb", func(ctx context.Context) error { return database.MongoClient.Ping(ctx, nil) }},
		{"redis", func(ctx context.Context) error { return cache.RedisClient.Ping(ctx).Err() }},
	}

	for _, check := range checks {
		if err := check.ping(ctx); err != nil {
			logger.GlobalLogger.Errorf("Health check failed: dependency=%s, error=%v", check.name, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "error",
				"message": check.name + " unavailable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		// Public routes
		api.POST("/partners/register", a.PartnerHandler.Register)
		api.POST("/partners/login", a.PartnerHandler.Login)

		// Protected routes require a valid token and an active account
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.Config))
		protected.Use(middleware.AccountStatusMiddleware(a.PartnerRepo))
		{
			protected.POST("/leads/quote", a.LeadHandler.Quote)
			protected.GET("/leads", a.LeadHandler.ListLeads)
			protected.GET("/leads/:id", a.LeadHandler.GetLead)
			protected.POST("/leads/:id/submit", a.LeadHandler.SubmitLead)
			protected.POST("/calculators/payoff", a.PayoffHandler.ProjectPayoff)
		}
	}
}
