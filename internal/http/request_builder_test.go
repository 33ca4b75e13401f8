//go:build !integration

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dklebine/productioncalculator/internal/domain/dto"
	"github.com/dklebine/productioncalculator/internal/domain/model"
)

func jsonContext(body string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
		expected    model.Tier
	}{
		{name: "valid request", body: `{"serviceTier": "bronze"}`, expected: model.TierBronze},
		{name: "invalid JSON", body: `{"serviceTier": bronze}`, expectError: true},
		{name: "wrong type", body: `{"photoDuration": "three"}`, expectError: true},
		{name: "empty body", body: ``, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildRequest[dto.CalculateQuoteRequest](jsonContext(tt.body))

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req.ToModel().ServiceTier)
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name: "consistent quote",
			body: `{"quote": {"total": 300, "breakdown": [{"description": "a", "amount": 300}]}}`,
		},
		{
			name:    "total mismatch",
			body:    `{"quote": {"total": 1, "breakdown": [{"description": "a", "amount": 300}]}}`,
			wantErr: dto.ErrQuoteTotalMismatch,
		},
		{
			name:    "negative amount",
			body:    `{"quote": {"total": -1, "breakdown": [{"description": "a", "amount": -1}]}}`,
			wantErr: dto.ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildRequestAndValidate[dto.ExportQuoteRequest](jsonContext(tt.body))

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(300), req.Quote.Total)
		})
	}
}
