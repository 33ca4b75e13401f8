package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dklebine/productioncalculator/internal/domain/model"
)

var (
	// ErrInvalidTier is returned when the service tier is not one of the known tiers.
	ErrInvalidTier = errors.New("invalid service tier")
	// ErrInvalidRateType is returned when an included service uses an unknown rate mode.
	ErrInvalidRateType = errors.New("invalid rate type")
	// ErrInvalidDeliverySpeed is returned when the delivery speed is unknown.
	ErrInvalidDeliverySpeed = errors.New("invalid delivery speed")
	// ErrInvalidQuantity is returned for negative or out-of-range counts, durations and distances.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// MaxQuantity bounds every count, duration and distance in a request.
const MaxQuantity = 1_000_000

// FieldError ties a validation failure to the request field that caused it.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v (got %s)", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, value interface{}, err error) *FieldError {
	return &FieldError{Field: field, Value: fmt.Sprint(value), Err: err}
}

// checkQuantity enforces min <= v <= MaxQuantity.
func checkQuantity(field string, v, minimum int) error {
	if v < minimum || v > MaxQuantity {
		return fieldError(field, v, fmt.Errorf("%w: must be between %d and %d", ErrInvalidQuantity, minimum, MaxQuantity))
	}
	return nil
}

// coverage describes one priced coverage block, photo or video.
type coverage struct {
	label         string // "Photo" or "Video Coverage"
	rateField     string
	durationField string
	daysField     string
	rateType      model.RateType
	duration      int
	days          int
}

// coverageItem prices a coverage block with the shared hourly/half-day/full-day rule.
// Only the quantity that applies to the chosen mode is read.
func coverageItem(tierName string, rates model.RateSet, c coverage) (model.LineItem, error) {
	rate, ok := rates.For(c.rateType)
	if !ok {
		return model.LineItem{}, fieldError(c.rateField, c.rateType, ErrInvalidRateType)
	}

	quantity, field, unit := c.days, c.daysField, "full days"
	switch c.rateType {
	case model.RateHourly:
		quantity, field, unit = c.duration, c.durationField, "hours"
	case model.RateHalfDay:
		unit = "half days"
	}
	if err := checkQuantity(field, quantity, 1); err != nil {
		return model.LineItem{}, err
	}

	return model.LineItem{
		Description: fmt.Sprintf("%s %s (%d %s)", tierName, c.label, quantity, unit),
		Amount:      rate * int64(quantity),
	}, nil
}

// ComputeQuote prices a request. It is pure and deterministic: the same request
// always produces the same total and the same ordered breakdown.
//
// Items are appended in this order, each only when its condition holds:
// photo coverage, photo edits, video coverage, reels, recaps, travel, delivery.
func ComputeQuote(req model.QuoteRequest) (model.QuoteResult, error) {
	profile, err := validateSelections(req)
	if err != nil {
		return model.QuoteResult{}, err
	}

	result := model.EmptyQuote()

	if req.IncludesPhotography {
		item, err := coverageItem(profile.Name, profile.Rates.Photography, coverage{
			label:         "Photo",
			rateField:     "photoRateType",
			durationField: "photoDuration",
			daysField:     "photoDays",
			rateType:      req.PhotoRateType,
			duration:      req.PhotoDuration,
			days:          req.PhotoDays,
		})
		if err != nil {
			return model.QuoteResult{}, err
		}
		result.Add(item.Description, item.Amount)

		if err := checkQuantity("photoEdits", req.PhotoEdits, 0); err != nil {
			return model.QuoteResult{}, err
		}
		if req.PhotoEdits > 0 {
			result.Add(
				fmt.Sprintf("Advanced Photo Edits (%d photos)", req.PhotoEdits),
				int64(req.PhotoEdits)*EditPricePerPhoto,
			)
		}
	}

	if req.IncludesVideography {
		item, err := coverageItem(profile.Name, profile.Rates.Videography, coverage{
			label:         "Video Coverage",
			rateField:     "videoRateType",
			durationField: "videoDuration",
			daysField:     "videoDays",
			rateType:      req.VideoRateType,
			duration:      req.VideoDuration,
			days:          req.VideoDays,
		})
		if err != nil {
			return model.QuoteResult{}, err
		}
		result.Add(item.Description, item.Amount)

		if err := addDurationPriced(&result, "Social Media Reels", reelPricing,
			"numReels", req.NumReels, "reelDuration", req.ReelDuration); err != nil {
			return model.QuoteResult{}, err
		}
		if err := addDurationPriced(&result, "Recap Videos", recapPricing,
			"numRecaps", req.NumRecaps, "recapDuration", req.RecapDuration); err != nil {
			return model.QuoteResult{}, err
		}
	}

	if !req.ClientCoversTravel {
		if err := checkQuantity("travelDistance", req.TravelDistance, 0); err != nil {
			return model.QuoteResult{}, err
		}
		if req.TravelDistance > 0 {
			result.Add(
				fmt.Sprintf("Travel (%s miles)", TravelLabel(req.TravelDistance)),
				int64(req.TravelDistance)*TravelPricePerMile,
			)
		}
	}

	if surcharge, ok := deliverySurcharges[req.DeliverySpeed]; ok {
		result.Add(surcharge.label, surcharge.amount)
	}

	return result, nil
}

// validateSelections checks every enum the request is priced by: the tier, the
// delivery speed and the rate mode of each included service.
func validateSelections(req model.QuoteRequest) (model.TierProfile, error) {
	if !req.ServiceTier.Valid() {
		return model.TierProfile{}, fieldError("serviceTier", req.ServiceTier, ErrInvalidTier)
	}
	if !req.DeliverySpeed.Valid() {
		return model.TierProfile{}, fieldError("deliverySpeed", req.DeliverySpeed, ErrInvalidDeliverySpeed)
	}
	if req.IncludesPhotography && !req.PhotoRateType.Valid() {
		return model.TierProfile{}, fieldError("photoRateType", req.PhotoRateType, ErrInvalidRateType)
	}
	if req.IncludesVideography && !req.VideoRateType.Valid() {
		return model.TierProfile{}, fieldError("videoRateType", req.VideoRateType, ErrInvalidRateType)
	}
	return tierProfiles[req.ServiceTier], nil
}

// addDurationPriced appends a count × step-priced item when count > 0.
// The duration is only checked when it is used.
func addDurationPriced(result *model.QuoteResult, label string, pricing stepPricing,
	countField string, count int, durationField string, seconds int) error {
	if err := checkQuantity(countField, count, 0); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	if err := checkQuantity(durationField, seconds, 1); err != nil {
		return err
	}
	result.Add(
		fmt.Sprintf("%s (%d x %ds)", label, count, seconds),
		int64(count)*pricing.unitPrice(seconds),
	)
	return nil
}

// TravelLabel renders a travel distance, using "3000+" for the form's open-ended maximum.
func TravelLabel(miles int) string {
	if miles == TravelDistanceCap {
		return strconv.Itoa(TravelDistanceCap) + "+"
	}
	return strconv.Itoa(miles)
}
