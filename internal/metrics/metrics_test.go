//go:build !integration

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.POST("/api/calculate", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		method         string
		path           string
		route          string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			method:         http.MethodPost,
			path:           "/api/calculate",
			route:          "/api/calculate",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			method:         http.MethodGet,
			path:           "/error",
			route:          "/error",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "groups unknown paths",
			method:         http.MethodGet,
			path:           "/does/not/exist",
			route:          "unmatched",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(tt.method, tt.route, strconv.Itoa(tt.expectedStatus)))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(tt.method, tt.route, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordQuoteCalculation(t *testing.T) {
	before := testutil.ToFloat64(QuoteCalculationsTotal.WithLabelValues("success"))

	RecordQuoteCalculation(time.Millisecond, "success")
	RecordQuoteCalculation(time.Millisecond, "invalid")

	assert.Equal(t, before+1, testutil.ToFloat64(QuoteCalculationsTotal.WithLabelValues("success")))
}

func TestRecordQuoteSavedAndExport(t *testing.T) {
	saved := testutil.ToFloat64(QuotesSavedTotal.WithLabelValues("success"))
	exports := testutil.ToFloat64(QuoteExportsTotal)

	RecordQuoteSaved("success")
	RecordQuoteExport()
	ObserveQuoteTotal("gold", 300)

	assert.Equal(t, saved+1, testutil.ToFloat64(QuotesSavedTotal.WithLabelValues("success")))
	assert.Equal(t, exports+1, testutil.ToFloat64(QuoteExportsTotal))
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("memory", "get", "hit"))

	RecordCacheOperation("memory", "get", "hit")
	RecordCacheOperation("redis", "get", "miss")

	assert.Equal(t, before+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("memory", "get", "hit")))
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(50, 100)

	assert.Equal(t, float64(50), testutil.ToFloat64(CacheSize))
	assert.Equal(t, float64(100), testutil.ToFloat64(CacheCapacity))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("mongodb-quotes", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-quotes")))

	SetCircuitBreakerState("mongodb-quotes", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-quotes")))
}
