package repository

import (
	"context"
	"errors"

	"github.com/guttosm/flashe-service/internal/circuitbreaker"
	"github.com/guttosm/flashe-service/internal/domain/model"
)

// CatalogRepositoryWithCircuitBreaker guards a catalog repository.
type CatalogRepositoryWithCircuitBreaker struct {
	repo CatalogRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker wraps repo with cb.
func NewCatalogRepositoryWithCircuitBreaker(repo CatalogRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

// GetActive returns the active snapshot. An open circuit is reported as an
// error so the catalog loader moves on to its next source.
func (r *CatalogRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*CatalogSnapshot, error) {
	return circuitbreaker.Call(ctx, r.cb, r.repo.GetActive)
}

// Publish stores a new active snapshot.
func (r *CatalogRepositoryWithCircuitBreaker) Publish(ctx context.Context, doc model.CatalogDocument, createdBy string) (*CatalogSnapshot, error) {
	return circuitbreaker.Call(ctx, r.cb, func(ctx context.Context) (*CatalogSnapshot, error) {
		return r.repo.Publish(ctx, doc, createdBy)
	})
}

// CircuitBreaker returns the guarding breaker for health reporting.
func (r *CatalogRepositoryWithCircuitBreaker) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.cb
}

// LogsRepositoryWithCircuitBreaker guards a logs repository. The journal is
// best effort: writes rejected by an open circuit are dropped silently.
type LogsRepositoryWithCircuitBreaker struct {
	repo LogsRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

// Insert stores one entry.
func (r *LogsRepositoryWithCircuitBreaker) Insert(ctx context.Context, entry *model.LogEntry) error {
	return dropWhenOpen(r.cb.Execute(ctx, func() error {
		return r.repo.Insert(ctx, entry)
	}))
}

// InsertMany stores several entries.
func (r *LogsRepositoryWithCircuitBreaker) InsertMany(ctx context.Context, entries []*model.LogEntry) error {
	return dropWhenOpen(r.cb.Execute(ctx, func() error {
		return r.repo.InsertMany(ctx, entries)
	}))
}

// Find queries the journal.
func (r *LogsRepositoryWithCircuitBreaker) Find(ctx context.Context, filter model.LogFilter) ([]model.LogEntry, error) {
	return circuitbreaker.Call(ctx, r.cb, func(ctx context.Context) ([]model.LogEntry, error) {
		return r.repo.Find(ctx, filter)
	})
}

// CircuitBreaker returns the guarding breaker for health reporting.
func (r *LogsRepositoryWithCircuitBreaker) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.cb
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}
