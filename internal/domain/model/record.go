package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuoteRecord is a stored quote together with the request it was computed from.
//
// @Description Historical quote record
type QuoteRecord struct {
	ID        primitive.ObjectID `json:"id" swaggertype:"string" example:"65b6c0f1e4b0a1a2b3c4d5e6"`
	Number    string             `json:"number" example:"Q-20250128-3F2A9C"`
	Request   QuoteRequest       `json:"request"`
	Breakdown []LineItem         `json:"breakdown"`
	TotalCost int64              `json:"totalCost" example:"3400"`
	RequestID string             `json:"requestId,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Result returns the stored quote as a QuoteResult.
func (r QuoteRecord) Result() QuoteResult {
	return QuoteResult{Total: r.TotalCost, Breakdown: r.Breakdown}
}
