//go:build !integration

package middleware

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// captureRecorder keeps every entry handed to it.
type captureRecorder struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (r *captureRecorder) Log(entry *model.LogEntry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return true
}

func (r *captureRecorder) all() []*model.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.LogEntry(nil), r.entries...)
}

// fakeLoggingService collects batches written by the async logger.
type fakeLoggingService struct {
	mu      sync.Mutex
	batches [][]*model.LogEntry
	err     error
	block   chan struct{}
}

func (f *fakeLoggingService) Record(ctx context.Context, entry *model.LogEntry) error {
	return f.RecordBatch(ctx, []*model.LogEntry{entry})
}

func (f *fakeLoggingService) RecordBatch(_ context.Context, entries []*model.LogEntry) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, append([]*model.LogEntry(nil), entries...))
	return nil
}

func (f *fakeLoggingService) Find(context.Context, model.LogFilter) ([]model.LogEntry, error) {
	return nil, nil
}

func (f *fakeLoggingService) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.batches {
		n += len(b)
	}
	return n
}

func (f *fakeLoggingService) batchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}
