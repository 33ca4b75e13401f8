package service

import (
	"fmt"
	"math"

	"github.com/dklebine/productioncalculator/internal/domain/model"
)

// Flat surcharges, in currency units.
const (
	EditPricePerPhoto       int64 = 5
	TravelPricePerMile      int64 = 2
	ExpeditedSurcharge      int64 = 100
	SuperExpeditedSurcharge int64 = 200
)

// TravelDistanceCap is the largest distance the form offers; it is rendered as "3000+".
const TravelDistanceCap = 3000

// durationStep prices one unit whose duration is at most MaxSeconds.
type durationStep struct {
	MaxSeconds int
	UnitPrice  int64
}

// stepPricing is an ascending list of duration thresholds. The first step whose
// MaxSeconds is not exceeded wins; there is no interpolation between steps.
type stepPricing []durationStep

// unitPrice returns the price of one unit of the given duration.
func (p stepPricing) unitPrice(seconds int) int64 {
	for _, step := range p {
		if seconds <= step.MaxSeconds {
			return step.UnitPrice
		}
	}
	return p[len(p)-1].UnitPrice
}

var (
	reelPricing = stepPricing{
		{MaxSeconds: 30, UnitPrice: 100},
		{MaxSeconds: math.MaxInt, UnitPrice: 150},
	}
	recapPricing = stepPricing{
		{MaxSeconds: 60, UnitPrice: 200},
		{MaxSeconds: math.MaxInt, UnitPrice: 300},
	}
)

// deliverySurcharges maps the non-standard speeds to their flat fee and label.
var deliverySurcharges = map[model.DeliverySpeed]struct {
	label  string
	amount int64
}{
	model.DeliveryExpedited:      {label: "Expedited Delivery (3-5 days)", amount: ExpeditedSurcharge},
	model.DeliverySuperExpedited: {label: "Super Expedited Delivery (1-2 days)", amount: SuperExpeditedSurcharge},
}

// tierProfiles is the fixed rate table and catalog. It is only read through
// TierProfileFor and TierCatalog, which hand out copies.
var tierProfiles = map[model.Tier]model.TierProfile{
	model.TierPlatinum: {
		Tier:        model.TierPlatinum,
		Name:        "Platinum",
		Description: "Premium quality with maximum attention to detail",
		Rates: model.TierRates{
			Photography: model.RateSet{Hourly: 150, HalfDay: 650, FullDay: 1099},
			Videography: model.RateSet{Hourly: 200, HalfDay: 850, FullDay: 1400},
		},
		PhotosPerHour:       50,
		PhotoFeatures:       []string{"Professional retouching", "Same-day preview gallery", "Premium editing style", "Rush delivery available"},
		VideoFeatures:       []string{"4K recording", "Professional color grading", "Multi-camera setup", "Same-day highlights"},
		DeliveryTime:        "3-7 days",
		DeliveryDescription: "Fastest turnaround time with luxury standards",
		Revisions:           "5+",
		SupportLevel:        "Priority support",
	},
	model.TierGold: {
		Tier:        model.TierGold,
		Name:        "Gold",
		Description: "High quality with professional standards",
		Rates: model.TierRates{
			Photography: model.RateSet{Hourly: 100, HalfDay: 550, FullDay: 950},
			Videography: model.RateSet{Hourly: 150, HalfDay: 650, FullDay: 1100},
		},
		PhotosPerHour:       35,
		PhotoFeatures:       []string{"Professional editing", "24-hour preview gallery", "Standard editing style", "Standard delivery"},
		VideoFeatures:       []string{"1080p recording", "Standard color grading", "Single-camera setup", "Next-day highlights"},
		DeliveryTime:        "7-10 days",
		DeliveryDescription: "Standard turnaround time with professional standards",
		Revisions:           "3",
		SupportLevel:        "Standard support",
	},
	model.TierBronze: {
		Tier:        model.TierBronze,
		Name:        "Bronze",
		Description: "Quality service with essential features",
		Rates: model.TierRates{
			Photography: model.RateSet{Hourly: 50, HalfDay: 450, FullDay: 850},
			Videography: model.RateSet{Hourly: 100, HalfDay: 450, FullDay: 800},
		},
		PhotosPerHour:       15,
		PhotoFeatures:       []string{"Basic editing", "48-hour preview gallery", "Essential editing style", "Standard delivery"},
		VideoFeatures:       []string{"1080p recording", "Basic color correction", "Single-camera setup", "3-day highlights"},
		DeliveryTime:        "10-14 days",
		DeliveryDescription: "Budget package with no expedited turnaround",
		Revisions:           "1",
		SupportLevel:        "Email support",
	},
}

// TierProfileFor returns a copy of the catalog entry of a tier.
func TierProfileFor(tier model.Tier) (model.TierProfile, error) {
	profile, ok := tierProfiles[tier]
	if !ok {
		return model.TierProfile{}, fmt.Errorf("%w: %q", ErrInvalidTier, tier)
	}
	return copyProfile(profile), nil
}

// TierCatalog returns every tier profile in display order.
func TierCatalog() []model.TierProfile {
	catalog := make([]model.TierProfile, 0, len(model.Tiers))
	for _, tier := range model.Tiers {
		catalog = append(catalog, copyProfile(tierProfiles[tier]))
	}
	return catalog
}

func copyProfile(p model.TierProfile) model.TierProfile {
	p.PhotoFeatures = append([]string(nil), p.PhotoFeatures...)
	p.VideoFeatures = append([]string(nil), p.VideoFeatures...)
	return p
}
