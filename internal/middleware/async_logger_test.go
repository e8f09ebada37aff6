//go:build !integration

package middleware

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

func TestNewAsyncLogger_NilService(t *testing.T) {
	al := NewAsyncLogger(nil, DefaultAsyncLoggerConfig())

	assert.Nil(t, al)
	assert.False(t, al.Log(&model.LogEntry{}))
	assert.Equal(t, AsyncLoggerStats{}, al.Stats())
	al.Stop()
}

func TestAsyncLogger_WritesFullBatches(t *testing.T) {
	svc := &fakeLoggingService{}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize:    100,
		NumWorkers:    1,
		BatchSize:     5,
		FlushInterval: time.Hour,
	})

	for i := 0; i < 10; i++ {
		assert.True(t, al.Log(&model.LogEntry{Message: "quote"}))
	}

	assert.Eventually(t, func() bool { return svc.total() == 10 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, svc.batchCount())
	al.Stop()

	stats := al.Stats()
	assert.Equal(t, int64(10), stats.Enqueued)
	assert.Equal(t, int64(10), stats.Written)
}

func TestAsyncLogger_FlushesOnInterval(t *testing.T) {
	svc := &fakeLoggingService{}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize:    10,
		NumWorkers:    1,
		BatchSize:     100,
		FlushInterval: 10 * time.Millisecond,
	})
	defer al.Stop()

	al.Log(&model.LogEntry{Message: "order"})

	assert.Eventually(t, func() bool { return svc.total() == 1 }, time.Second, 5*time.Millisecond)
}

func TestAsyncLogger_StopDrainsBuffer(t *testing.T) {
	svc := &fakeLoggingService{}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize:    50,
		NumWorkers:    2,
		BatchSize:     100,
		FlushInterval: time.Hour,
	})

	for i := 0; i < 7; i++ {
		al.Log(&model.LogEntry{})
	}
	al.Stop()
	al.Stop()

	assert.Equal(t, 7, svc.total())
	assert.False(t, al.Log(&model.LogEntry{}), "closed logger drops")
	assert.Equal(t, int64(1), al.Stats().Dropped)
}

func TestAsyncLogger_DropsWhenBufferFull(t *testing.T) {
	svc := &fakeLoggingService{block: make(chan struct{})}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize:    1,
		NumWorkers:    1,
		BatchSize:     1,
		FlushInterval: time.Hour,
	})

	accepted := 0
	for i := 0; i < 10; i++ {
		if al.Log(&model.LogEntry{}) {
			accepted++
		}
	}
	close(svc.block)
	al.Stop()

	assert.Less(t, accepted, 10)
	assert.Equal(t, int64(10-accepted), al.Stats().Dropped)
	assert.Equal(t, accepted, svc.total())
}

func TestAsyncLogger_CountsFailedWrites(t *testing.T) {
	svc := &fakeLoggingService{err: errors.New("mongo unavailable")}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{BatchSize: 3, NumWorkers: 1, FlushInterval: time.Hour})

	for i := 0; i < 3; i++ {
		al.Log(&model.LogEntry{})
	}
	al.Stop()

	assert.Equal(t, int64(3), al.Stats().Failed)
	assert.Equal(t, int64(0), al.Stats().Written)
}

func TestAsyncLogger_StopWhileLogging(t *testing.T) {
	svc := &fakeLoggingService{}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    2,
		BatchSize:     10,
		FlushInterval: time.Hour,
	})

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 200; j++ {
				al.Log(&model.LogEntry{Message: "quote"})
			}
		}()
	}
	close(start)
	time.Sleep(time.Millisecond)
	al.Stop()
	wg.Wait()

	stats := al.Stats()
	assert.Equal(t, int64(8*200), stats.Enqueued+stats.Dropped)
	assert.Equal(t, stats.Enqueued, stats.Written)
	assert.Equal(t, int(stats.Enqueued), svc.total())
}
