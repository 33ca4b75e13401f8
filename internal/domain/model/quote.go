// Package model defines the core domain entities for the quote service.
package model

// Tier is a named service quality level that determines base rates.
type Tier string

// Known service tiers.
const (
	TierPlatinum Tier = "platinum"
	TierGold     Tier = "gold"
	TierBronze   Tier = "bronze"
)

// Tiers lists the known tiers in display order.
var Tiers = []Tier{TierPlatinum, TierGold, TierBronze}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierPlatinum, TierGold, TierBronze:
		return true
	}
	return false
}

// RateType is the pricing basis of a coverage block.
type RateType string

// Known rate modes.
const (
	RateHourly  RateType = "hourly"
	RateHalfDay RateType = "halfDay"
	RateFullDay RateType = "fullDay"
)

// Valid reports whether r is one of the known rate modes.
func (r RateType) Valid() bool {
	switch r {
	case RateHourly, RateHalfDay, RateFullDay:
		return true
	}
	return false
}

// DeliverySpeed is the turnaround option chosen for the final deliverables.
type DeliverySpeed string

// Known delivery speeds.
const (
	DeliveryStandard       DeliverySpeed = "standard"
	DeliveryExpedited      DeliverySpeed = "expedited"
	DeliverySuperExpedited DeliverySpeed = "superExpedited"
)

// Valid reports whether d is one of the known delivery speeds.
func (d DeliverySpeed) Valid() bool {
	switch d {
	case DeliveryStandard, DeliveryExpedited, DeliverySuperExpedited:
		return true
	}
	return false
}

// QuoteRequest is the flat set of service selections a quote is computed from.
// Fields that do not apply to the selected modes are carried but ignored.
//
// @Description Service selections for a production quote
type QuoteRequest struct {
	IncludesPhotography bool `json:"includesPhotography" bson:"includes_photography"`
	IncludesVideography bool `json:"includesVideography" bson:"includes_videography"`
	ServiceTier         Tier `json:"serviceTier" bson:"service_tier" example:"gold"`

	PhotoRateType RateType `json:"photoRateType" bson:"photo_rate_type" example:"hourly"`
	PhotoDuration int      `json:"photoDuration" bson:"photo_duration" example:"3"`
	PhotoDays     int      `json:"photoDays" bson:"photo_days" example:"1"`
	PhotoEdits    int      `json:"photoEdits" bson:"photo_edits" example:"0"`

	VideoRateType RateType `json:"videoRateType" bson:"video_rate_type" example:"fullDay"`
	VideoDuration int      `json:"videoDuration" bson:"video_duration" example:"1"`
	VideoDays     int      `json:"videoDays" bson:"video_days" example:"2"`
	NumReels      int      `json:"numReels" bson:"num_reels" example:"2"`
	ReelDuration  int      `json:"reelDuration" bson:"reel_duration" example:"30"`
	NumRecaps     int      `json:"numRecaps" bson:"num_recaps" example:"1"`
	RecapDuration int      `json:"recapDuration" bson:"recap_duration" example:"90"`

	TravelDistance     int           `json:"travelDistance" bson:"travel_distance" example:"500"`
	ClientCoversTravel bool          `json:"clientCoversTravel" bson:"client_covers_travel"`
	DeliverySpeed      DeliverySpeed `json:"deliverySpeed" bson:"delivery_speed" example:"standard"`
}

// LineItem is one priced component of a quote.
//
// @Description Priced component of a quote
type LineItem struct {
	Description string `json:"description" bson:"description" example:"Gold Photo (3 hours)"`
	Amount      int64  `json:"amount" bson:"amount" example:"300"`
}

// QuoteResult is the total price and its ordered breakdown.
// Total always equals the sum of the breakdown amounts.
//
// @Description Quote total with itemized breakdown
type QuoteResult struct {
	Total     int64      `json:"total" example:"300"`
	Breakdown []LineItem `json:"breakdown"`
}

// Add appends an item and accumulates its amount into the total.
func (r *QuoteResult) Add(description string, amount int64) {
	r.Breakdown = append(r.Breakdown, LineItem{Description: description, Amount: amount})
	r.Total += amount
}

// Sum recomputes the total from the breakdown.
func (r QuoteResult) Sum() int64 {
	var sum int64
	for _, item := range r.Breakdown {
		sum += item.Amount
	}
	return sum
}

// EmptyQuote returns a result with no items and a zero total.
func EmptyQuote() QuoteResult {
	return QuoteResult{Breakdown: []LineItem{}}
}

// Clone returns a copy that shares no memory with r.
func (r QuoteResult) Clone() QuoteResult {
	out := QuoteResult{Total: r.Total, Breakdown: make([]LineItem, len(r.Breakdown))}
	copy(out.Breakdown, r.Breakdown)
	return out
}
