//go:build integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dklebine/productioncalculator/config"
)

const integrationQuoteBody = `{
	"includesVideography": true,
	"serviceTier": "platinum",
	"videoRateType": "fullDay",
	"videoDays": 1,
	"clientCoversTravel": true,
	"deliverySpeed": "standard"
}`

func integrationAppConfig(t *testing.T) config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 10 * time.Second,
		},
		Cache: config.CacheConfig{
			Backend: config.CacheBackendMemory,
			Size:    100,
			TTL:     time.Minute,
		},
		Redis:    config.RedisConfig{Prefix: "it:"},
		Database: integrationDatabaseConfig(t),
		Export:   config.ExportConfig{CompanyName: "Integration Productions"},
	}
}

func serve(app *App, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func TestInitializeApp_Integration(t *testing.T) {
	t.Parallel()

	t.Run("save and fetch a quote", func(t *testing.T) {
		t.Parallel()
		app, err := InitializeApp(integrationAppConfig(t))
		require.NoError(t, err)
		defer app.Close(context.Background())

		w := serve(app, http.MethodPost, "/api/quotes", integrationQuoteBody)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		location := w.Header().Get("Location")
		require.NotEmpty(t, location)

		w = serve(app, http.MethodGet, location, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = serve(app, http.MethodGet, "/api/quotes", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), strings.TrimPrefix(location, "/api/quotes/"))

		assert.Eventually(t, func() bool {
			w := serve(app, http.MethodGet, location+"/activity", "")
			return w.Code == http.StatusOK && strings.Contains(w.Body.String(), `"action":"save_quote"`)
		}, 10*time.Second, 250*time.Millisecond, "save_quote audit entry never reached the log store")
	})

	t.Run("readiness reports mongodb and breakers", func(t *testing.T) {
		t.Parallel()
		app, err := InitializeApp(integrationAppConfig(t))
		require.NoError(t, err)
		defer app.Close(context.Background())

		w := serve(app, http.MethodGet, "/readyz", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Status string                 `json:"status"`
			Checks map[string]interface{} `json:"checks"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, "ok", body.Checks["mongodb"])
		assert.Equal(t, "closed", body.Checks["mongodb_quotes_circuit"])
		assert.Equal(t, "closed", body.Checks["mongodb_logs_circuit"])
	})

	t.Run("database disabled keeps the calculator", func(t *testing.T) {
		t.Parallel()
		cfg := integrationAppConfig(t)
		cfg.Database.Enabled = false

		app, err := InitializeApp(cfg)
		require.NoError(t, err)
		defer app.Close(context.Background())

		assert.Equal(t, http.StatusOK, serve(app, http.MethodPost, "/api/calculate", integrationQuoteBody).Code)
		assert.Equal(t, http.StatusServiceUnavailable, serve(app, http.MethodPost, "/api/quotes", integrationQuoteBody).Code)
	})
}
