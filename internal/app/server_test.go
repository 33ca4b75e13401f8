//go:build !integration

package app

import (
	"context"
	"net/http"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNewServer(t *testing.T) {
	tests := []struct {
		name            string
		opts            []ServerOption
		wantShutdown    time.Duration
		wantCleanupHook int
	}{
		{name: "defaults", wantShutdown: defaultShutdownTimeout},
		{
			name:         "custom shutdown timeout",
			opts:         []ServerOption{WithShutdownTimeout(3 * time.Second)},
			wantShutdown: 3 * time.Second,
		},
		{
			name:         "non-positive timeout keeps default",
			opts:         []ServerOption{WithShutdownTimeout(0)},
			wantShutdown: defaultShutdownTimeout,
		},
		{
			name:            "cleanup hooks",
			opts:            []ServerOption{WithCleanup(func(context.Context) {}), WithCleanup(func(context.Context) {})},
			wantShutdown:    defaultShutdownTimeout,
			wantCleanupHook: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler, "8080", tt.opts...)

			require.NotNil(t, server.httpServer)
			assert.Equal(t, ":8080", server.httpServer.Addr)
			assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
			assert.Equal(t, 35*time.Second, server.httpServer.WriteTimeout)
			assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
			assert.Equal(t, tt.wantShutdown, server.shutdownTimeout)
			assert.Len(t, server.onShutdown, tt.wantCleanupHook)
		})
	}
}

func TestServer_ShutdownRunsCleanup(t *testing.T) {
	var calls atomic.Int32
	server := NewServer(okHandler, "0", WithCleanup(func(ctx context.Context) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		calls.Add(1)
	}))

	require.NoError(t, server.Shutdown())
	assert.Equal(t, int32(1), calls.Load())
}

func TestServer_Run_GracefulShutdown(t *testing.T) {
	var cleaned atomic.Bool
	server := NewServer(okHandler, "0", WithCleanup(func(context.Context) { cleaned.Store(true) }))

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	time.Sleep(100 * time.Millisecond)

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(syscall.SIGTERM))

	select {
	case err := <-errChan:
		assert.NoError(t, err)
		assert.True(t, cleaned.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("Server did not shutdown in time")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	var cleaned atomic.Bool
	server := NewServer(okHandler, "invalid-port", WithCleanup(func(context.Context) { cleaned.Store(true) }))

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
		assert.True(t, cleaned.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return the listen error")
	}
}
