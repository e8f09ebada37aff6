// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/repository"
)

// MockCatalogRepository mocks repository.CatalogRepositoryInterface.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetActive(ctx context.Context) (*repository.CatalogSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogSnapshot), args.Error(1)
}

func (m *MockCatalogRepository) Publish(ctx context.Context, doc model.CatalogDocument, createdBy string) (*repository.CatalogSnapshot, error) {
	args := m.Called(ctx, doc, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogSnapshot), args.Error(1)
}

var _ repository.CatalogRepositoryInterface = (*MockCatalogRepository)(nil)
