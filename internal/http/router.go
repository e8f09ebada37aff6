package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/flashe-service/internal/metrics"
	"github.com/guttosm/flashe-service/internal/middleware"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	// RateLimiter limits API requests per client. Nil disables limiting.
	RateLimiter    *middleware.RateLimiter
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	// AdminUser and AdminPass guard the admin routes with basic auth.
	// Admin routes are not registered when either is empty.
	AdminUser string
	AdminPass string
	// Recorder receives one journal entry per request. May be nil.
	Recorder middleware.EntryRecorder
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RequestTimeout: middleware.DefaultRequestTimeout,
	}
}

// NewRouter creates and configures the Gin router for the storefront.
// admin may be nil.
func NewRouter(handler *Handler, admin *AdminHandler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api/v1")
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.RateLimit())
	}
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	registerStorefrontRoutes(api, handler)
	registerAdminRoutes(api, admin, &cfg)

	router.NoRoute(NotFound)
	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "accept", "Cache-Control", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.SecurityHeaders(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.Recorder, "/healthz", "/readyz", "/metrics"),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func registerStorefrontRoutes(api *gin.RouterGroup, handler *Handler) {
	if handler == nil {
		return
	}
	api.GET("/catalog", handler.GetCatalog)
	api.GET("/regions", handler.SearchRegions)
	api.GET("/quote", handler.Quote)
	api.POST("/quote", handler.Quote)
	api.POST("/orders", handler.SubmitOrder)
	api.GET("/offer", handler.GetOffer)
}

func registerAdminRoutes(api *gin.RouterGroup, admin *AdminHandler, cfg *RouterConfig) {
	if admin == nil || cfg.AdminUser == "" || cfg.AdminPass == "" {
		return
	}
	group := api.Group("/admin", gin.BasicAuth(gin.Accounts{
		cfg.AdminUser: cfg.AdminPass,
	}))
	group.PUT("/catalog", admin.PublishCatalog)
	group.POST("/catalog/reload", admin.ReloadCatalog)
	group.GET("/logs", admin.ListLogs)
}
