package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/logger"
	"github.com/guttosm/flashe-service/internal/service"
)

// EntryRecorder accepts journal entries without blocking the request.
type EntryRecorder interface {
	Log(entry *model.LogEntry) bool
}

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize is the size of the log entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing batches.
	NumWorkers int
	// BatchSize is the most entries written in one round trip.
	BatchSize int
	// FlushInterval forces a partial batch out after this long.
	FlushInterval time.Duration
	// WriteTimeout bounds each batch write.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the production settings.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    2,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// AsyncLogger buffers journal entries and writes them in batches from a
// fixed pool of workers. When the buffer is full new entries are dropped.
type AsyncLogger struct {
	loggingService service.LoggingService
	cfg            AsyncLoggerConfig
	entryCh        chan *model.LogEntry
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup

	// mu orders sends against Stop so nothing lands in entryCh after the
	// workers have drained it.
	mu      sync.RWMutex
	stopped bool

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts the workers. A nil logging service yields a nil
// logger, which accepts and discards entries.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}
	def := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = def.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		cfg:            cfg,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}
	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, al.cfg.BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		al.write(batch)
		batch = make([]*model.LogEntry, 0, al.cfg.BatchSize)
	}

	for {
		select {
		case entry := <-al.entryCh:
			batch = append(batch, entry)
			if len(batch) >= al.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-al.stopCh:
			for {
				select {
				case entry := <-al.entryCh:
					batch = append(batch, entry)
					if len(batch) >= al.cfg.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) write(batch []*model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.cfg.WriteTimeout)
	defer cancel()

	if err := al.loggingService.RecordBatch(ctx, batch); err != nil {
		al.failed.Add(int64(len(batch)))
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(batch)).Msg("Failed to write journal batch")
		return
	}
	al.written.Add(int64(len(batch)))
}

// Log enqueues an entry. It returns false when the entry was dropped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al == nil || entry == nil {
		return false
	}
	al.mu.RLock()
	defer al.mu.RUnlock()
	if al.stopped {
		al.dropped.Add(1)
		return false
	}
	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.dropped.Add(1)
		return false
	}
}

// Stop flushes what is buffered and waits for the workers. It is safe to
// call more than once.
func (al *AsyncLogger) Stop() {
	if al == nil {
		return
	}
	al.stopOnce.Do(func() {
		al.mu.Lock()
		al.stopped = true
		close(al.stopCh)
		al.mu.Unlock()

		al.wg.Wait()
	})
}

// AsyncLoggerStats counts entries by outcome.
type AsyncLoggerStats struct {
	Enqueued int64 `json:"enqueued"`
	Dropped  int64 `json:"dropped"`
	Written  int64 `json:"written"`
	Failed   int64 `json:"failed"`
}

// Stats returns current async logger statistics.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	if al == nil {
		return AsyncLoggerStats{}
	}
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
	}
}
