package app

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/flashe-service/config"
	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalogs *service.CatalogStore
	Pricer   service.Pricer
	Orders   service.OrderSubmitter
	Offer    *service.OfferClock
}

// InitializeServices builds the catalog store and the storefront services,
// then loads the catalog. db may be nil.
func InitializeServices(ctx context.Context, cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	loader := service.NewCatalogLoader(
		service.WithSources(catalogSources(cfg.Catalog, db)...),
		service.WithUnifiedPrice(cfg.Catalog.UnifiedPrice),
		service.WithFetchTimeout(cfg.Catalog.FetchTimeout),
	)

	var storeOpts []service.CatalogStoreOption
	if db != nil {
		storeOpts = append(storeOpts, service.WithSnapshotRepository(db.CatalogRepo))
	}
	store := service.NewCatalogStore(loader, storeOpts...)

	if db != nil && cfg.Database.SeedCatalog {
		seedCtx, cancel := context.WithTimeout(ctx, databaseSetupTimeout)
		if _, err := store.SeedIfEmpty(seedCtx, seedDocument(seedCtx, cfg.Catalog)); err != nil {
			log.Warn().Err(err).Msg("Failed to seed catalog snapshot")
		}
		cancel()
	}

	catalog := store.Reload(ctx)
	log.Info().
		Str("source", catalog.Source()).
		Int("product_types", len(catalog.ProductTypes())).
		Int("regions", len(catalog.Regions())).
		Msg("Catalog loaded")

	var pricingOpts []service.PricingOption
	if cfg.Catalog.PerTypePricing {
		pricingOpts = append(pricingOpts, service.WithPerTypePricing())
	}
	pricer := service.NewPricingService(pricingOpts...)

	offerStart := cfg.Offer.Start
	if offerStart.IsZero() {
		offerStart = time.Now().UTC()
	}

	return &ServiceComponents{
		Catalogs: store,
		Pricer:   pricer,
		Orders:   service.NewOrderService(pricer, service.NewOrderValidator()),
		Offer:    service.NewOfferClock(offerStart, cfg.Offer.Period),
	}
}

// catalogSources lists the configured sources in priority order. The active
// MongoDB snapshot comes first so a published catalog takes effect, then
// the URL, then the file.
func catalogSources(cfg config.CatalogConfig, db *DatabaseComponents) []service.CatalogSource {
	var sources []service.CatalogSource
	if db != nil {
		sources = append(sources, service.NewMongoCatalogSource(db.CatalogRepo))
	}
	sources = append(sources, documentSources(cfg)...)
	return sources
}

func documentSources(cfg config.CatalogConfig) []service.CatalogSource {
	var sources []service.CatalogSource
	if cfg.URL != "" {
		sources = append(sources, service.NewHTTPCatalogSource(cfg.URL, &http.Client{Timeout: cfg.FetchTimeout}))
	}
	if cfg.File != "" {
		sources = append(sources, service.NewFileCatalogSource(cfg.File))
	}
	return sources
}

// seedDocument picks the first snapshot for an empty database: the URL or
// file document when one is usable, otherwise the built-in catalog.
func seedDocument(ctx context.Context, cfg config.CatalogConfig) model.CatalogDocument {
	for _, src := range documentSources(cfg) {
		doc, err := src.Fetch(ctx)
		if err != nil {
			log.Warn().Err(err).Str("source", src.Name()).Msg("Seed source unusable")
			continue
		}
		if _, err := model.NewCatalog(doc, src.Name()); err != nil {
			log.Warn().Err(err).Str("source", src.Name()).Msg("Seed source unusable")
			continue
		}
		return doc
	}
	return model.DefaultCatalogDocument()
}
