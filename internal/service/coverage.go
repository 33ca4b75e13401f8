package service

import (
	"github.com/dklebine/productioncalculator/internal/domain/model"
)

// Block lengths used to convert day-based coverage into hours.
const (
	HalfDayHours = 6
	FullDayHours = 8
)

const (
	baseReels    = 3
	reelsPerHour = 2
	maxReelsCap  = 20
)

// CoverageHours converts a video booking into shooting hours.
// Unknown rate modes yield zero. Inputs saturate at MaxQuantity.
func CoverageHours(rateType model.RateType, duration, days int) int {
	duration, days = min(duration, MaxQuantity), min(days, MaxQuantity)
	switch rateType {
	case model.RateHourly:
		return duration
	case model.RateHalfDay:
		return HalfDayHours * days
	case model.RateFullDay:
		return FullDayHours * days
	}
	return 0
}

// MaxReels is the number of reels a booking of the given hours can support:
// 3 for the first hour, 2 more per extra hour, at most 20.
func MaxReels(hours int) int {
	switch {
	case hours < 0:
		return 0
	case hours > maxReelsCap:
		return maxReelsCap
	}
	n := baseReels + (hours-1)*reelsPerHour
	if n > maxReelsCap {
		return maxReelsCap
	}
	if n < 0 {
		return 0
	}
	return n
}

// Range is an inclusive form input range.
type Range struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

// FormLimits are the input ranges offered by the quote form.
// ComputeQuote does not enforce them.
type FormLimits struct {
	Duration       Range `json:"duration"`
	Days           Range `json:"days"`
	PhotoEdits     Range `json:"photoEdits"`
	ReelDuration   Range `json:"reelDuration"`
	NumRecaps      Range `json:"numRecaps"`
	RecapDuration  Range `json:"recapDuration"`
	TravelDistance Range `json:"travelDistance"`
}

// DefaultFormLimits returns the ranges of the quote form.
func DefaultFormLimits() FormLimits {
	return FormLimits{
		Duration:       Range{Min: 1, Max: 8, Step: 1},
		Days:           Range{Min: 1, Max: 7, Step: 1},
		PhotoEdits:     Range{Min: 0, Max: 100, Step: 1},
		ReelDuration:   Range{Min: 15, Max: 60, Step: 15},
		NumRecaps:      Range{Min: 0, Max: 5, Step: 1},
		RecapDuration:  Range{Min: 30, Max: 120, Step: 30},
		TravelDistance: Range{Min: 0, Max: TravelDistanceCap, Step: 50},
	}
}

// ClampReels lowers a reel count to what the booked video coverage supports.
func ClampReels(req model.QuoteRequest) int {
	limit := MaxReels(CoverageHours(req.VideoRateType, req.VideoDuration, req.VideoDays))
	if req.NumReels > limit {
		return limit
	}
	return req.NumReels
}
