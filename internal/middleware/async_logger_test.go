//go:build !integration

package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/mocks"
)

// recordingLogService collects written entries and can be made to fail or stall.
type recordingLogService struct {
	mocks.MockLoggingService
	mu      sync.Mutex
	entries []*model.LogEntry
	calls   int
	err     error
	block   chan struct{}
}

func (r *recordingLogService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return r.CreateLogs(ctx, []*model.LogEntry{entry})
}

func (r *recordingLogService) CreateLogs(_ context.Context, entries []*model.LogEntry) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *recordingLogService) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func TestDefaultAsyncLoggerConfig(t *testing.T) {
	cfg := DefaultAsyncLoggerConfig()

	assert.Equal(t, 1000, cfg.BufferSize)
	assert.Equal(t, 4, cfg.NumWorkers)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, time.Second, cfg.FlushInterval)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestNewAsyncLogger_NilService(t *testing.T) {
	al := NewAsyncLogger(nil, DefaultAsyncLoggerConfig())

	assert.Nil(t, al)
	assert.False(t, al.Log(&model.LogEntry{}))
	assert.NotPanics(t, al.Stop)
}

func TestAsyncLogger_WritesOnStop(t *testing.T) {
	svc := &recordingLogService{}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize:    100,
		NumWorkers:    2,
		BatchSize:     10,
		FlushInterval: time.Hour,
	})

	for i := 0; i < 25; i++ {
		require.True(t, al.Log(&model.LogEntry{Message: "quote calculated"}))
	}
	al.Stop()

	assert.Equal(t, 25, svc.count())
	stats := al.Stats()
	assert.Equal(t, int64(25), stats.Enqueued)
	assert.Equal(t, int64(25), stats.Written)
	assert.Zero(t, stats.Dropped)
}

func TestAsyncLogger_FlushInterval(t *testing.T) {
	svc := &recordingLogService{}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize:    10,
		NumWorkers:    1,
		BatchSize:     100,
		FlushInterval: 10 * time.Millisecond,
	})
	defer al.Stop()

	al.Log(&model.LogEntry{Message: "partial batch"})

	assert.Eventually(t, func() bool { return svc.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestAsyncLogger_DropsWhenFull(t *testing.T) {
	svc := &recordingLogService{block: make(chan struct{})}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize: 2,
		NumWorkers: 1,
		BatchSize:  1,
	})

	// The worker takes the first entry and blocks on the write.
	require.True(t, al.Log(&model.LogEntry{Message: "0"}))
	assert.Eventually(t, func() bool { return len(al.entryCh) == 0 }, time.Second, time.Millisecond)
	require.True(t, al.Log(&model.LogEntry{Message: "1"}))
	require.True(t, al.Log(&model.LogEntry{Message: "2"}))
	assert.False(t, al.Log(&model.LogEntry{Message: "3"}))

	close(svc.block)
	al.Stop()

	assert.Equal(t, int64(1), al.Stats().Dropped)
	assert.Equal(t, 3, svc.count())
}

func TestAsyncLogger_WriteErrors(t *testing.T) {
	svc := &recordingLogService{err: errors.New("mongo down")}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 5, FlushInterval: time.Hour})

	for i := 0; i < 3; i++ {
		al.Log(&model.LogEntry{})
	}
	al.Stop()

	stats := al.Stats()
	assert.Equal(t, int64(3), stats.Errors)
	assert.Zero(t, stats.Written)
}

func TestAsyncLogger_LogAfterStop(t *testing.T) {
	al := NewAsyncLogger(&recordingLogService{}, AsyncLoggerConfig{BufferSize: 1, NumWorkers: 1})
	al.Stop()

	assert.NotPanics(t, func() {
		assert.False(t, al.Log(&model.LogEntry{}))
		al.Stop()
	})
}
