package service

import (
	"fmt"
	"strings"

	"github.com/dklebine/productioncalculator/internal/domain/model"
)

const summarySep = " • "

// Summary holds the one-line descriptions shown next to each section of the quote form.
type Summary struct {
	Service    string `json:"service"`
	Photo      string `json:"photo,omitempty"`
	Video      string `json:"video,omitempty"`
	Additional string `json:"additional"`
}

// Summarize describes a request section by section.
func Summarize(req model.QuoteRequest) Summary {
	return Summary{
		Service:    serviceSummary(req),
		Photo:      photoSummary(req),
		Video:      videoSummary(req),
		Additional: additionalSummary(req),
	}
}

func serviceSummary(req model.QuoteRequest) string {
	var services []string
	if req.IncludesPhotography {
		services = append(services, "Photo")
	}
	if req.IncludesVideography {
		services = append(services, "Video")
	}
	if len(services) == 0 {
		return "No services selected"
	}
	name := string(req.ServiceTier)
	if profile, ok := tierProfiles[req.ServiceTier]; ok {
		name = profile.Name
	}
	return strings.Join(services, " + ") + summarySep + name + " tier"
}

func durationSummary(rateType model.RateType, duration, days int) string {
	if rateType == model.RateHourly {
		return fmt.Sprintf("%dh", duration)
	}
	kind := "full"
	if rateType == model.RateHalfDay {
		kind = "half"
	}
	plural := ""
	if days > 1 {
		plural = "s"
	}
	return fmt.Sprintf("%d %s day%s", days, kind, plural)
}

func photoSummary(req model.QuoteRequest) string {
	if !req.IncludesPhotography {
		return ""
	}
	s := durationSummary(req.PhotoRateType, req.PhotoDuration, req.PhotoDays)
	if req.PhotoEdits > 0 {
		s += fmt.Sprintf("%s%d edits", summarySep, req.PhotoEdits)
	}
	return s
}

func videoSummary(req model.QuoteRequest) string {
	if !req.IncludesVideography {
		return ""
	}
	s := durationSummary(req.VideoRateType, req.VideoDuration, req.VideoDays)
	var extras []string
	if req.NumReels > 0 {
		extras = append(extras, fmt.Sprintf("%d reels", req.NumReels))
	}
	if req.NumRecaps > 0 {
		extras = append(extras, fmt.Sprintf("%d recaps", req.NumRecaps))
	}
	if len(extras) > 0 {
		s += summarySep + strings.Join(extras, ", ")
	}
	return s
}

func additionalSummary(req model.QuoteRequest) string {
	var items []string
	if !req.ClientCoversTravel && req.TravelDistance > 0 {
		items = append(items, TravelLabel(req.TravelDistance)+"mi travel")
	}
	switch req.DeliverySpeed {
	case model.DeliveryExpedited:
		items = append(items, "Expedited delivery")
	case model.DeliverySuperExpedited:
		items = append(items, "Super expedited delivery")
	}
	if len(items) == 0 {
		return "Standard options"
	}
	return strings.Join(items, summarySep)
}
