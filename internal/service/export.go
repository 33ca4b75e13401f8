package service

import (
	"fmt"
	"io"
	"text/template"

	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/metrics"
)

// DefaultCompanyName heads exported documents unless overridden.
const DefaultCompanyName = "XVAL Production Services"

// ExportRequest is the payload of a document export.
//
// @Description Quote document export payload
type ExportRequest struct {
	Quote      model.QuoteResult  `json:"quote"`
	FormData   model.QuoteRequest `json:"formData"`
	WhatYouGet []string           `json:"whatYouGet"`
}

var documentTemplate = template.Must(template.New("quote").Parse(`
{{.Company}} Quote

Total Cost: ${{.Quote.Total}}

Cost Breakdown:
{{range .Quote.Breakdown}}{{.Description}}: ${{.Amount}}
{{end}}
What You Get:
{{range .WhatYouGet}}- {{.}}
{{end}}`))

// Exporter renders quotes into the plain-text document customers download.
type Exporter struct {
	company string
}

// NewExporter creates an exporter. An empty company falls back to DefaultCompanyName.
func NewExporter(company string) *Exporter {
	if company == "" {
		company = DefaultCompanyName
	}
	return &Exporter{company: company}
}

// Render writes the document for req to w.
func (e *Exporter) Render(w io.Writer, req ExportRequest) error {
	whatYouGet := req.WhatYouGet
	if len(whatYouGet) == 0 {
		whatYouGet = DeriveWhatYouGet(req.FormData)
	}

	err := documentTemplate.Execute(w, struct {
		Company    string
		Quote      model.QuoteResult
		WhatYouGet []string
	}{e.company, req.Quote, whatYouGet})
	if err != nil {
		return fmt.Errorf("render quote document: %w", err)
	}
	metrics.RecordQuoteExport()
	return nil
}

// DeriveWhatYouGet lists the deliverables of the selected tier and services.
// An unknown tier yields nothing.
func DeriveWhatYouGet(req model.QuoteRequest) []string {
	profile, err := TierProfileFor(req.ServiceTier)
	if err != nil || (!req.IncludesPhotography && !req.IncludesVideography) {
		return []string{}
	}

	var items []string
	if req.IncludesPhotography {
		items = append(items, fmt.Sprintf("Up to %d photos per hour", profile.PhotosPerHour))
		items = append(items, profile.PhotoFeatures...)
	}
	if req.IncludesVideography {
		items = append(items, profile.VideoFeatures...)
	}
	items = append(items,
		"Delivery in "+profile.DeliveryTime,
		profile.Revisions+" revisions",
		profile.SupportLevel,
	)
	return items
}
