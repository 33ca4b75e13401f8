package model

// RateSet holds the three mutually exclusive prices of one service.
type RateSet struct {
	Hourly  int64 `json:"hourly" example:"100"`
	HalfDay int64 `json:"halfDay" example:"550"`
	FullDay int64 `json:"fullDay" example:"950"`
}

// For returns the price for the given rate mode.
// The second value is false when the mode is unknown.
func (s RateSet) For(rateType RateType) (int64, bool) {
	switch rateType {
	case RateHourly:
		return s.Hourly, true
	case RateHalfDay:
		return s.HalfDay, true
	case RateFullDay:
		return s.FullDay, true
	}
	return 0, false
}

// TierRates groups the photography and videography rates of a tier.
type TierRates struct {
	Photography RateSet `json:"photography"`
	Videography RateSet `json:"videography"`
}

// TierProfile is the customer-facing description of a tier.
//
// @Description Tier catalog entry with rates and included features
type TierProfile struct {
	Tier                Tier      `json:"tier" example:"gold"`
	Name                string    `json:"name" example:"Gold"`
	Description         string    `json:"description"`
	Rates               TierRates `json:"rates"`
	PhotosPerHour       int       `json:"photosPerHour" example:"35"`
	PhotoFeatures       []string  `json:"photoFeatures"`
	VideoFeatures       []string  `json:"videoFeatures"`
	DeliveryTime        string    `json:"deliveryTime" example:"7-10 days"`
	DeliveryDescription string    `json:"deliveryDescription"`
	Revisions           string    `json:"revisions" example:"3"`
	SupportLevel        string    `json:"supportLevel" example:"Standard support"`
}
