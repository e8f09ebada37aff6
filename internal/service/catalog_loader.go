package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/metrics"
)

// ErrNoActiveCatalog is returned by a source that has nothing to offer.
var ErrNoActiveCatalog = errors.New("no active catalog")

// CatalogSource fetches a raw catalog document from one place.
type CatalogSource interface {
	// Name labels the source in logs, metrics and Catalog.Source.
	Name() string
	Fetch(ctx context.Context) (model.CatalogDocument, error)
}

// CatalogLoaderOption configures a CatalogLoader.
type CatalogLoaderOption func(*CatalogLoader)

// CatalogLoader resolves the session catalog from its sources, falling back
// to the built-in default when none of them delivers a usable document.
type CatalogLoader struct {
	sources      []CatalogSource
	unifiedPrice float64
	fetchTimeout time.Duration
}

// NewCatalogLoader creates a loader with the default unified price and a
// ten second budget per source.
func NewCatalogLoader(opts ...CatalogLoaderOption) *CatalogLoader {
	l := &CatalogLoader{
		unifiedPrice: model.DefaultUnifiedPrice,
		fetchTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithSources sets the sources in priority order. Nil entries are skipped.
func WithSources(sources ...CatalogSource) CatalogLoaderOption {
	return func(l *CatalogLoader) {
		for _, src := range sources {
			if src != nil {
				l.sources = append(l.sources, src)
			}
		}
	}
}

// WithUnifiedPrice sets the price forced onto every product type.
// Zero or less keeps the prices from the document.
func WithUnifiedPrice(price float64) CatalogLoaderOption {
	return func(l *CatalogLoader) {
		l.unifiedPrice = price
	}
}

// WithFetchTimeout bounds each source fetch.
func WithFetchTimeout(d time.Duration) CatalogLoaderOption {
	return func(l *CatalogLoader) {
		if d > 0 {
			l.fetchTimeout = d
		}
	}
}

type fetchResult struct {
	catalog *model.Catalog
	err     error
}

// Load returns the catalog for the session. It never fails: sources are
// fetched concurrently, the highest-priority usable one wins, and the
// default catalog is returned when all of them fail.
func (l *CatalogLoader) Load(ctx context.Context) *model.Catalog {
	results := make([]fetchResult, len(l.sources))

	var g errgroup.Group
	for i, src := range l.sources {
		g.Go(func() error {
			results[i] = l.fetch(ctx, src)
			return nil
		})
	}
	_ = g.Wait()

	for i, res := range results {
		name := l.sources[i].Name()
		if res.err != nil {
			metrics.RecordCatalogLoad(name, metrics.CatalogLoadFailure)
			log.Warn().Err(res.err).Str("source", name).Msg("Catalog source unusable")
			continue
		}
		metrics.RecordCatalogLoad(name, metrics.CatalogLoadSuccess)
		log.Info().
			Str("source", name).
			Int("product_types", len(res.catalog.ProductTypes())).
			Int("regions", len(res.catalog.Regions())).
			Msg("Catalog loaded")
		return res.catalog
	}

	log.Warn().Int("sources_tried", len(l.sources)).Msg("Using built-in default catalog")
	metrics.RecordCatalogLoad(model.SourceDefault, metrics.CatalogLoadSuccess)
	return l.defaultCatalog()
}

func (l *CatalogLoader) fetch(ctx context.Context, src CatalogSource) fetchResult {
	ctx, cancel := context.WithTimeout(ctx, l.fetchTimeout)
	defer cancel()

	doc, err := src.Fetch(ctx)
	if err != nil {
		return fetchResult{err: err}
	}
	catalog, err := model.NewCatalog(l.applyUnifiedPrice(doc), src.Name())
	if err != nil {
		return fetchResult{err: err}
	}
	return fetchResult{catalog: catalog}
}

func (l *CatalogLoader) applyUnifiedPrice(doc model.CatalogDocument) model.CatalogDocument {
	if l.unifiedPrice <= 0 {
		return doc
	}
	return doc.WithUnifiedPrice(l.unifiedPrice)
}

func (l *CatalogLoader) defaultCatalog() *model.Catalog {
	catalog, err := model.NewCatalog(l.applyUnifiedPrice(model.DefaultCatalogDocument()), model.SourceDefault)
	if err != nil {
		return model.DefaultCatalog()
	}
	return catalog
}
