package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/repository"
)

// MockLogsRepository mocks repository.LogsRepositoryInterface.
type MockLogsRepository struct {
	mock.Mock
}

func (m *MockLogsRepository) Insert(ctx context.Context, entry *model.LogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockLogsRepository) InsertMany(ctx context.Context, entries []*model.LogEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockLogsRepository) Find(ctx context.Context, filter model.LogFilter) ([]model.LogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

var _ repository.LogsRepositoryInterface = (*MockLogsRepository)(nil)
