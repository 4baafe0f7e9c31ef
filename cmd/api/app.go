package main

import (
	"net/http"
	"os"
	"time"

	"oakline-partners/internal/eligibility"
	"oakline-partners/internal/handlers"
	"oakline-partners/internal/middleware"
	"oakline-partners/internal/repositories"
	"oakline-partners/internal/services"
	"oakline-partners/internal/transformers"
	"oakline-partners/internal/validators"
	"oakline-partners/pkg/cache"
	"oakline-partners/pkg/config"
	"oakline-partners/pkg/database"
	"oakline-partners/pkg/funding"
	"oakline-partners/pkg/homefacts"
	"oakline-partners/pkg/logger"
	"oakline-partners/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App holds everything main needs a handle on: the router and server, the
// handlers wired into routes, and the pieces cleanup must stop.
type App struct {
	Config         *config.Config
	Router         *gin.Engine
	PartnerHandler *handlers.PartnerHandler
	LeadHandler    *handlers.LeadHandler
	PayoffHandler  *handlers.PayoffHandler
	PartnerRepo    repositories.PartnerRepository
	RateLimiter    *middleware.RateLimiter
	Server         *http.Server
}

// NewApp connects infrastructure, wires the dependency graph, and builds the
// router. Any infrastructure failure exits: the process is useless without
// its stores.
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	mustInit("mongodb", database.InitDB(cfg))
	mustInit("lead indexes", database.CreateLeadIndexes(database.DB))
	mustInit("partner indexes", database.CreatePartnerIndexes(database.DB))
	mustInit("redis", cache.InitRedis(cfg))
	metrics.Init()

	app.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go app.RateLimiter.Cleanup()

	app.wireDependencies()

	app.Router = gin.New()
	app.setupMiddleware()
	app.setupRoutes()
	return app
}

func mustInit(step string, err error) {
	if err != nil {
		logger.GlobalLogger.Errorf("Startup failed: step=%s, error=%v", step, err)
		os.Exit(1)
	}
}

// wireDependencies builds the object graph bottom-up: repositories and
// clients, then services, then the handlers the router mounts.
func (a *App) wireDependencies() {
	leadRepo := repositories.NewLeadRepository()
	partnerRepo := repositories.NewPartnerRepository()
	decisionCache := repositories.NewDecisionCache()
	a.PartnerRepo = partnerRepo

	addrTrans := transformers.NewAddressTransformer()
	attrTrans := transformers.NewAttributesTransformer()

	leadValidator := validators.NewLeadValidator()
	partnerValidator := validators.NewPartnerValidator()
	payoffValidator := validators.NewPayoffValidator()

	var provider services.PropertyDataProvider
	if a.Config.HomeFacts.Sandbox {
		logger.GlobalLogger.Println("HomeFacts sandbox mode enabled; serving deterministic property records")
		provider = homefacts.NewSandboxClient()
	} else {
		provider = homefacts.NewClient(a.Config.HomeFacts.BaseURL, a.Config.HomeFacts.ClientID, a.Config.HomeFacts.ClientSecret)
	}
	fundingClient := funding.NewClient(a.Config.Funding.BaseURL, a.Config.Funding.APIKey)

	engine := eligibility.NewEngine()

	decisionTTL := time.Duration(a.Config.Cache.DecisionTTLMinutes) * time.Minute
	quoteService := services.NewQuoteService(leadRepo, decisionCache, provider, addrTrans, attrTrans, leadValidator, engine, decisionTTL)
	leadService := services.NewLeadService(leadRepo, decisionCache, fundingClient, leadValidator)
	partnerService := services.NewPartnerService(partnerRepo, partnerValidator, a.Config)
	payoffService := services.NewPayoffService(engine, payoffValidator)

	a.PartnerHandler = handlers.NewPartnerHandler(partnerService)
	a.LeadHandler = handlers.NewLeadHandler(quoteService, leadService)
	a.PayoffHandler = handlers.NewPayoffHandler(payoffService)
}

// cleanup releases what NewApp started, in reverse order.
func (a *App) cleanup() {
	a.RateLimiter.Stop()
	cache.CloseRedis()
	database.CloseDB()
}
