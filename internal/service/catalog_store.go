package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/repository"
)

// ErrPublishingDisabled is returned by Publish when no snapshot store is configured.
var ErrPublishingDisabled = errors.New("catalog publishing is not configured")

// CatalogProvider hands out the catalog in effect.
type CatalogProvider interface {
	Current() *model.Catalog
}

// CatalogStoreOption configures a CatalogStore.
type CatalogStoreOption func(*CatalogStore)

// WithSnapshotRepository enables Publish.
func WithSnapshotRepository(repo repository.CatalogRepositoryInterface) CatalogStoreOption {
	return func(s *CatalogStore) {
		s.repo = repo
	}
}

// CatalogStore holds the catalog for the running process. Requests read
// the current value without locking; a reload swaps in a new catalog as a
// whole, so a request never sees a mix of two catalogs.
type CatalogStore struct {
	loader  *CatalogLoader
	repo    repository.CatalogRepositoryInterface
	current atomic.Pointer[model.Catalog]
}

// NewCatalogStore creates a store. Until Reload runs it serves the
// built-in default catalog.
func NewCatalogStore(loader *CatalogLoader, opts ...CatalogStoreOption) *CatalogStore {
	s := &CatalogStore{loader: loader}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(model.DefaultCatalog())
	return s
}

// Current returns the catalog in effect.
func (s *CatalogStore) Current() *model.Catalog {
	return s.current.Load()
}

// Reload resolves the catalog from the loader's sources and makes it current.
func (s *CatalogStore) Reload(ctx context.Context) *model.Catalog {
	c := s.loader.Load(ctx)
	s.current.Store(c)
	return c
}

// Publish validates doc, stores it as the active snapshot and reloads.
// A document that does not form a valid catalog is rejected with an error
// wrapping model.ErrInvalidCatalog and nothing is stored.
func (s *CatalogStore) Publish(ctx context.Context, doc model.CatalogDocument, createdBy string) (*model.Catalog, error) {
	if s.repo == nil {
		return nil, ErrPublishingDisabled
	}
	if _, err := model.NewCatalog(doc, SourceMongo); err != nil {
		return nil, err
	}

	createdBy = strings.TrimSpace(createdBy)
	snapshot, err := s.repo.Publish(ctx, doc, createdBy)
	if err != nil {
		return nil, fmt.Errorf("publish catalog: %w", err)
	}
	log.Info().
		Int("version", snapshot.Version).
		Str("created_by", createdBy).
		Msg("Catalog snapshot published")

	c := s.Reload(ctx)
	if c.Source() != SourceMongo {
		log.Warn().
			Int("version", snapshot.Version).
			Str("source", c.Source()).
			Msg("Published catalog is shadowed by a higher-priority source")
	}
	return c, nil
}

// SeedIfEmpty publishes doc when no snapshot is active yet. It reports
// whether a snapshot was created.
func (s *CatalogStore) SeedIfEmpty(ctx context.Context, doc model.CatalogDocument) (bool, error) {
	if s.repo == nil {
		return false, ErrPublishingDisabled
	}
	active, err := s.repo.GetActive(ctx)
	if err != nil {
		return false, fmt.Errorf("check active catalog: %w", err)
	}
	if active != nil {
		return false, nil
	}
	if _, err := s.repo.Publish(ctx, doc, "seed"); err != nil {
		return false, fmt.Errorf("seed catalog: %w", err)
	}
	return true, nil
}
