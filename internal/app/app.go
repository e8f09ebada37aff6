// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/flashe-service/config"
	"github.com/guttosm/flashe-service/internal/http"
	"github.com/guttosm/flashe-service/internal/middleware"
)

// App is the wired service.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents

	db      *DatabaseComponents
	journal *middleware.AsyncLogger
	limiter *middleware.RateLimiter
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context, cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	db := InitializeDatabase(ctx, cfg.Database)
	services := InitializeServices(ctx, cfg, db)

	var journal *middleware.AsyncLogger
	if db != nil {
		journalCfg := middleware.DefaultAsyncLoggerConfig()
		if cfg.Log.JournalBuffer > 0 {
			journalCfg.BufferSize = cfg.Log.JournalBuffer
		}
		if cfg.Log.JournalWorkers > 0 {
			journalCfg.NumWorkers = cfg.Log.JournalWorkers
		}
		journal = middleware.NewAsyncLogger(db.LoggingService, journalCfg)
	}

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	components := InitializeRouter(services, db, journal, limiter, cfg)
	router := http.NewRouter(components.Handler, components.AdminHandler, components.HealthHandler, components.Config)

	return &App{
		Router:   router,
		Services: services,
		db:       db,
		journal:  journal,
		limiter:  limiter,
	}
}

// Close stops background workers, flushing the journal, and disconnects
// from MongoDB.
func (a *App) Close(ctx context.Context) error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.journal != nil {
		a.journal.Stop()
		stats := a.journal.Stats()
		log.Info().
			Int64("written", stats.Written).
			Int64("dropped", stats.Dropped).
			Int64("failed", stats.Failed).
			Msg("Journal flushed")
	}
	return a.db.Close(ctx)
}
