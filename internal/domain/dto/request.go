// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and carry
// the binding rules for API payloads.
package dto

import (
	"github.com/dklebine/productioncalculator/internal/domain/model"
)

// CalculateQuoteRequest is the JSON body of the estimate and save endpoints.
// Enumerations are checked by the calculator so that each one reports its own error.
//
// @Description Service selections to price
// @Example {"includesPhotography": true, "serviceTier": "gold", "photoRateType": "hourly", "photoDuration": 3, "deliverySpeed": "standard"}
type CalculateQuoteRequest struct {
	model.QuoteRequest
} // @name CalculateQuoteRequest

// ToModel returns the domain request.
func (r *CalculateQuoteRequest) ToModel() model.QuoteRequest {
	return r.QuoteRequest
}

// ExportQuoteRequest is the JSON body of the document export endpoint.
//
// @Description Quote to render as a downloadable document
type ExportQuoteRequest struct {
	// Quote is the computed result to render.
	Quote model.QuoteResult `json:"quote" binding:"required"`
	// FormData is the originating request, used for the summary and default inclusions.
	FormData *model.QuoteRequest `json:"formData,omitempty"`
	// WhatYouGet lists the inclusions shown at the bottom of the document.
	WhatYouGet []string `json:"whatYouGet,omitempty"`
} // @name ExportQuoteRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrQuoteTotalMismatch is returned when an exported quote's total does not match its items.
	ErrQuoteTotalMismatch = &ValidationError{
		Field:   "quote.total",
		Message: "must equal the sum of the breakdown amounts",
	}
	// ErrNegativeAmount is returned when an exported line item carries a negative amount.
	ErrNegativeAmount = &ValidationError{
		Field:   "quote.breakdown",
		Message: "amounts must not be negative",
	}
)

// Validate checks that the quote is internally consistent.
func (r *ExportQuoteRequest) Validate() error {
	for _, item := range r.Quote.Breakdown {
		if item.Amount < 0 {
			return ErrNegativeAmount
		}
	}
	if r.Quote.Total != r.Quote.Sum() {
		return ErrQuoteTotalMismatch
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CoverageLimitsQuery holds the query parameters of the coverage limits endpoint.
type CoverageLimitsQuery struct {
	RateType model.RateType `form:"rate_type"`
	Duration int            `form:"duration" binding:"gte=0,lte=1000000"`
	Days     int            `form:"days" binding:"gte=0,lte=1000000"`
}

// ListQuotesQuery holds the query parameters of the quote history endpoint.
type ListQuotesQuery struct {
	Limit int `form:"limit" binding:"gte=0,lte=500"`
}
