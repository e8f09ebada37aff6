package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/repository"
)

// LoggingService writes the request journal.
type LoggingService interface {
	// Record stores a single entry.
	Record(ctx context.Context, entry *model.LogEntry) error
	// RecordBatch stores entries in one round trip.
	RecordBatch(ctx context.Context, entries []*model.LogEntry) error
	// Find queries the journal, newest first.
	Find(ctx context.Context, filter model.LogFilter) ([]model.LogEntry, error)
}

// Journal page sizes.
const (
	DefaultLogLimit = 50
	MaxLogLimit     = 500
)

// LoggingServiceImpl implements LoggingService on a logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
	now  func() time.Time
}

// NewLoggingService creates a LoggingService.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo, now: time.Now}
}

// Record stores a single entry, filling in its id and timestamp when unset.
func (s *LoggingServiceImpl) Record(ctx context.Context, entry *model.LogEntry) error {
	if entry == nil {
		return nil
	}
	s.stamp(entry)
	return s.repo.Insert(ctx, entry)
}

// RecordBatch stores entries, skipping nil ones.
func (s *LoggingServiceImpl) RecordBatch(ctx context.Context, entries []*model.LogEntry) error {
	batch := make([]*model.LogEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		s.stamp(e)
		batch = append(batch, e)
	}
	if len(batch) == 0 {
		return nil
	}
	return s.repo.InsertMany(ctx, batch)
}

// Find queries the journal. The limit defaults to DefaultLogLimit and is
// capped at MaxLogLimit.
func (s *LoggingServiceImpl) Find(ctx context.Context, filter model.LogFilter) ([]model.LogEntry, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultLogLimit
	case filter.Limit > MaxLogLimit:
		filter.Limit = MaxLogLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.Find(ctx, filter)
}

func (s *LoggingServiceImpl) stamp(e *model.LogEntry) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = s.now().UTC()
	}
	if e.Level == "" {
		e.Level = "info"
	}
}
