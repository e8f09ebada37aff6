//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/flashe-service/config"
	"github.com/guttosm/flashe-service/internal/circuitbreaker"
	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/service"
	"github.com/guttosm/flashe-service/internal/testutil"
)

func integrationConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Server: config.ServerConfig{Port: "8080", RequestTimeout: 5 * time.Second},
		Catalog: config.CatalogConfig{
			UnifiedPrice: model.DefaultUnifiedPrice,
			FetchTimeout: 2 * time.Second,
		},
		Offer: config.OfferConfig{Period: time.Hour},
		Database: config.DatabaseConfig{
			URI:                            testutil.MongoURI(),
			DatabaseName:                   testutil.DatabaseName(t.Name()),
			LogsTTL:                        24 * time.Hour,
			Enabled:                        true,
			SeedCatalog:                    true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          time.Second,
		},
		Log: config.LogConfig{Level: "error", JournalBuffer: 10, JournalWorkers: 1},
	}
}

func TestInitializeApp_SeedsAndServesFromMongoDB(t *testing.T) {
	ctx := context.Background()
	cfg := integrationConfig(t)

	application := InitializeApp(ctx, cfg)
	require.NotNil(t, application.db)
	t.Cleanup(func() {
		_ = application.db.DB.Database.Drop(ctx)
		_ = application.Close(ctx)
	})

	assert.Equal(t, service.SourceMongo, application.Services.Catalogs.Current().Source())

	active, err := application.db.CatalogRepo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "seed", active.CreatedBy)
	assert.Equal(t, 1, active.Version)

	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), CatalogCircuitBreakerName)
}

func TestInitializeDatabase_RegistersBreakers(t *testing.T) {
	ctx := context.Background()
	db := InitializeDatabase(ctx, integrationConfig(t).Database)
	require.NotNil(t, db)
	t.Cleanup(func() {
		_ = db.DB.Database.Drop(ctx)
		_ = db.Close(ctx)
	})

	assert.Equal(t, CatalogCircuitBreakerName, db.CatalogCircuitBreaker.Name())
	assert.Equal(t, circuitbreaker.StateClosed, db.LogsCircuitBreaker.State())
	require.NoError(t, db.DB.HealthCheck(ctx))
}

func TestInitializeDatabase_UnreachableReturnsNil(t *testing.T) {
	cfg := integrationConfig(t).Database
	cfg.URI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200"

	assert.Nil(t, InitializeDatabase(context.Background(), cfg))
}

func TestInitializeApp_PublishOutranksCatalogFile(t *testing.T) {
	ctx := context.Background()
	cfg := integrationConfig(t)
	cfg.Catalog.File = "../../data/flashe.json"

	application := InitializeApp(ctx, cfg)
	require.NotNil(t, application.db)
	t.Cleanup(func() {
		_ = application.db.DB.Database.Drop(ctx)
		_ = application.Close(ctx)
	})

	store := application.Services.Catalogs
	assert.Equal(t, service.SourceMongo, store.Current().Source())

	doc := model.DefaultCatalogDocument()
	doc.FlashTypes = []model.ProductTypeDocument{{ID: "published", Name: "فلاشة منشورة", Price: 300}}
	published, err := store.Publish(ctx, doc, "admin")
	require.NoError(t, err)

	assert.Equal(t, service.SourceMongo, published.Source())
	assert.Equal(t, "published", store.Current().FirstProductType().ID)
}
