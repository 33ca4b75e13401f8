//go:build !integration

package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dklebine/productioncalculator/internal/domain/model"
)

func TestExporter_Render(t *testing.T) {
	req := goldHourly(3)
	req.PhotoEdits = 10
	quote, err := ComputeQuote(req)
	require.NoError(t, err)

	var doc strings.Builder
	err = NewExporter("").Render(&doc, ExportRequest{
		Quote:      quote,
		FormData:   req,
		WhatYouGet: []string{"Online gallery", "Print release"},
	})
	require.NoError(t, err)

	want := `
XVAL Production Services Quote

Total Cost: $350

Cost Breakdown:
Gold Photo (3 hours): $300
Advanced Photo Edits (10 photos): $50

What You Get:
- Online gallery
- Print release
`
	assert.Equal(t, want, doc.String())
}

func TestExporter_CustomCompany(t *testing.T) {
	var buf strings.Builder
	err := NewExporter("Acme Films").Render(&buf, ExportRequest{Quote: model.EmptyQuote()})

	require.NoError(t, err)
	doc := buf.String()
	assert.Contains(t, doc, "Acme Films Quote")
	assert.Contains(t, doc, "Total Cost: $0")
}

func TestExporter_DerivesWhatYouGet(t *testing.T) {
	req := goldHourly(2)
	quote, err := ComputeQuote(req)
	require.NoError(t, err)

	var buf strings.Builder
	err = NewExporter("").Render(&buf, ExportRequest{Quote: quote, FormData: req})

	require.NoError(t, err)
	doc := buf.String()
	assert.Contains(t, doc, "- Up to 35 photos per hour\n")
	assert.Contains(t, doc, "- Professional editing\n")
	assert.NotContains(t, doc, "1080p recording")
	assert.Contains(t, doc, "- Delivery in 7-10 days\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExporter_WriteError(t *testing.T) {
	err := NewExporter("").Render(failingWriter{}, ExportRequest{Quote: model.EmptyQuote()})
	assert.Error(t, err)
}

func TestDeriveWhatYouGet(t *testing.T) {
	tests := []struct {
		name     string
		req      model.QuoteRequest
		contains []string
		empty    bool
	}{
		{
			name:     "photo and video",
			req:      model.QuoteRequest{IncludesPhotography: true, IncludesVideography: true, ServiceTier: model.TierPlatinum},
			contains: []string{"Professional retouching", "4K recording", "5+ revisions", "Priority support"},
		},
		{
			name:     "video only",
			req:      model.QuoteRequest{IncludesVideography: true, ServiceTier: model.TierBronze},
			contains: []string{"Basic color correction", "Delivery in 10-14 days", "Email support"},
		},
		{
			name:  "nothing selected",
			req:   model.QuoteRequest{ServiceTier: model.TierGold},
			empty: true,
		},
		{
			name:  "unknown tier",
			req:   model.QuoteRequest{IncludesPhotography: true, ServiceTier: "diamond"},
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveWhatYouGet(tt.req)
			if tt.empty {
				assert.Empty(t, got)
				return
			}
			for _, item := range tt.contains {
				assert.Contains(t, got, item)
			}
		})
	}
}
