package app

import (
	"context"

	"github.com/guttosm/flashe-service/config"
	"github.com/guttosm/flashe-service/internal/http"
	"github.com/guttosm/flashe-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	AdminHandler  *http.AdminHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
// db and journal may be nil.
func InitializeRouter(
	services *ServiceComponents,
	db *DatabaseComponents,
	journal *middleware.AsyncLogger,
	limiter *middleware.RateLimiter,
	cfg config.Config,
) *RouterComponents {
	var recorder middleware.EntryRecorder
	if journal != nil {
		recorder = journal
	}

	handler := http.NewHandler(services.Catalogs, services.Pricer, services.Orders,
		http.WithRecorder(recorder),
		http.WithOfferClock(services.Offer),
	)

	healthHandler := http.NewHealthHandler(services.Catalogs)
	var adminHandler *http.AdminHandler
	if db != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func(ctx context.Context) error {
			return db.DB.HealthCheck(ctx)
		}))
		healthHandler.RegisterCircuitBreaker(CatalogCircuitBreakerName, db.CatalogCircuitBreaker)
		healthHandler.RegisterCircuitBreaker(LogsCircuitBreakerName, db.LogsCircuitBreaker)
		adminHandler = http.NewAdminHandler(services.Catalogs, db.LoggingService)
	} else {
		adminHandler = http.NewAdminHandler(services.Catalogs, nil)
	}

	routerCfg := http.RouterConfig{
		RateLimiter:    limiter,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		AdminUser:      cfg.Admin.User,
		AdminPass:      cfg.Admin.Pass,
		Recorder:       recorder,
	}

	return &RouterComponents{
		Handler:       handler,
		AdminHandler:  adminHandler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
