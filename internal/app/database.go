package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/flashe-service/config"
	"github.com/guttosm/flashe-service/internal/circuitbreaker"
	"github.com/guttosm/flashe-service/internal/metrics"
	"github.com/guttosm/flashe-service/internal/repository"
	"github.com/guttosm/flashe-service/internal/service"
)

const databaseSetupTimeout = 5 * time.Second

// Circuit breaker names, also used as health check and metric labels.
const (
	CatalogCircuitBreakerName = "mongodb_catalog"
	LogsCircuitBreakerName    = "mongodb_logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	CatalogRepo           repository.CatalogRepositoryInterface
	LoggingService        service.LoggingService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the repositories.
// Returns nil if the database is disabled or the connection fails; the
// storefront then runs on its file, URL or built-in catalog alone.
func InitializeDatabase(ctx context.Context, cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	return newDatabaseComponents(ctx, db, cfg)
}

func newDatabaseComponents(ctx context.Context, db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	ttlCtx, cancel := context.WithTimeout(ctx, databaseSetupTimeout)
	defer cancel()
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if ttlDays > 0 {
		if err := db.SetLogsTTL(ttlCtx, ttlDays); err != nil {
			log.Warn().Err(err).Int("days", ttlDays).Msg("Failed to set logs TTL index")
		}
	}

	catalogCB := newCircuitBreaker(CatalogCircuitBreakerName, cfg)
	logsCB := newCircuitBreaker(LogsCircuitBreakerName, cfg)

	catalogRepo := repository.NewCatalogRepositoryWithCircuitBreaker(repository.NewCatalogRepository(db), catalogCB)
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                    db,
		CatalogRepo:           catalogRepo,
		LoggingService:        service.NewLoggingService(logsRepo),
		CatalogCircuitBreaker: catalogCB,
		LogsCircuitBreaker:    logsCB,
	}
}

func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
