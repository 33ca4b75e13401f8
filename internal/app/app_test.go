//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dklebine/productioncalculator/config"
)

const calculateBody = `{
	"includesPhotography": true,
	"serviceTier": "gold",
	"photoRateType": "hourly",
	"photoDuration": 3,
	"clientCoversTravel": true,
	"deliverySpeed": "standard"
}`

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*testing.T, *config.Config)
	}{
		{name: "memory cache"},
		{
			name:   "cache disabled",
			mutate: func(_ *testing.T, c *config.Config) { c.Cache.Backend = config.CacheBackendNone },
		},
		{
			name: "redis cache",
			mutate: func(t *testing.T, c *config.Config) {
				c.Cache.Backend = config.CacheBackendRedis
				c.Redis.Addr = miniredis.RunT(t).Addr()
			},
		},
		{
			name:   "database disabled",
			mutate: func(_ *testing.T, c *config.Config) { c.Database.Enabled = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			if tt.mutate != nil {
				tt.mutate(t, &cfg)
			}

			app, err := InitializeApp(cfg)
			require.NoError(t, err)
			defer app.Close(context.Background())

			w := httptest.NewRecorder()
			app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, http.StatusOK, w.Code)

			req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(calculateBody))
			req.Header.Set("Content-Type", "application/json")
			w = httptest.NewRecorder()
			app.Router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"total":300`)

			w = httptest.NewRecorder()
			app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quotes", nil))
			assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		})
	}
}

func TestInitializeApp_InvalidRedis(t *testing.T) {
	cfg := baseConfig()
	cfg.Cache.Backend = config.CacheBackendRedis

	app, err := InitializeApp(cfg)
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_CloseNil(t *testing.T) {
	var app *App
	assert.NotPanics(t, func() { app.Close(context.Background()) })
}
