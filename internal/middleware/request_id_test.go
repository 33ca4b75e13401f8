//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func echoRequestID(t *testing.T, header string) (body, echoed string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.POST("/api/quotes", func(c *gin.Context) {
		c.String(http.StatusCreated, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	return w.Body.String(), w.Header().Get(RequestIDHeader)
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "missing header", header: ""},
		{name: "client id is kept", header: "quote-form-42", wantKept: true},
		{name: "id at the length limit is kept", header: strings.Repeat("q", maxRequestIDLength), wantKept: true},
		{name: "oversized id", header: strings.Repeat("q", maxRequestIDLength+1)},
		{name: "id with spaces", header: "gold tier"},
		{name: "id with control characters", header: "quote\x01id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, echoed := echoRequestID(t, tt.header)

			assert.Equal(t, body, echoed, "response header must carry the same id the handler saw")
			if tt.wantKept {
				assert.Equal(t, tt.header, body)
				return
			}
			_, err := uuid.Parse(body)
			assert.NoError(t, err, "a fresh UUID replaces a missing or rejected id")
		})
	}
}

func TestRequestID_Unique(t *testing.T) {
	first, _ := echoRequestID(t, "")
	second, _ := echoRequestID(t, "")
	assert.NotEqual(t, first, second)
}

func TestGetRequestID_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))

	c.Set(string(RequestIDKey), "audit-7")
	assert.Equal(t, "audit-7", GetRequestID(c))
}
