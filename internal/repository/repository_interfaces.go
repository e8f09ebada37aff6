package repository

import (
	"context"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

// CatalogRepositoryInterface is the catalog snapshot store.
type CatalogRepositoryInterface interface {
	GetActive(ctx context.Context) (*CatalogSnapshot, error)
	Publish(ctx context.Context, doc model.CatalogDocument, createdBy string) (*CatalogSnapshot, error)
}

// LogsRepositoryInterface is the request journal store.
type LogsRepositoryInterface interface {
	Insert(ctx context.Context, entry *model.LogEntry) error
	InsertMany(ctx context.Context, entries []*model.LogEntry) error
	Find(ctx context.Context, filter model.LogFilter) ([]model.LogEntry, error)
}
