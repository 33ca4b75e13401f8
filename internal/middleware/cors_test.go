//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		origins    []string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{
			name:       "preflight from allowed origin",
			origins:    []string{"https://quotes.example.com"},
			method:     http.MethodOptions,
			origin:     "https://quotes.example.com",
			wantStatus: http.StatusNoContent,
			wantOrigin: "https://quotes.example.com",
		},
		{
			name:       "simple request from allowed origin",
			origins:    []string{"https://quotes.example.com"},
			method:     http.MethodGet,
			origin:     "https://quotes.example.com",
			wantStatus: http.StatusOK,
			wantOrigin: "https://quotes.example.com",
		},
		{
			name:       "unknown origin is rejected",
			origins:    []string{"https://quotes.example.com"},
			method:     http.MethodGet,
			origin:     "https://evil.example.com",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wildcard allows any origin",
			origins:    []string{"*"},
			method:     http.MethodGet,
			origin:     "https://anything.example.com",
			wantStatus: http.StatusOK,
			wantOrigin: "*",
		},
		{
			name:       "no configuration allows any origin",
			method:     http.MethodGet,
			origin:     "http://localhost:5173",
			wantStatus: http.StatusOK,
			wantOrigin: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.GET("/api/tiers", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/api/tiers", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_ExposesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"https://quotes.example.com"}))
	router.GET("/api/tiers", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/tiers", nil)
	req.Header.Set("Origin", "https://quotes.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), RequestIDHeader)
}
