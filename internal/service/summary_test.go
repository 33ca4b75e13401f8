//go:build !integration

package service

import (
	"testing"

	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		req  model.QuoteRequest
		want Summary
	}{
		{
			name: "nothing selected",
			req: model.QuoteRequest{
				ServiceTier:        model.TierGold,
				ClientCoversTravel: true,
				DeliverySpeed:      model.DeliveryStandard,
			},
			want: Summary{Service: "No services selected", Additional: "Standard options"},
		},
		{
			name: "photo and video",
			req: model.QuoteRequest{
				IncludesPhotography: true,
				IncludesVideography: true,
				ServiceTier:         model.TierGold,
				PhotoRateType:       model.RateHalfDay,
				PhotoDays:           2,
				PhotoEdits:          40,
				VideoRateType:       model.RateFullDay,
				VideoDays:           1,
				NumReels:            2,
				NumRecaps:           1,
				TravelDistance:      500,
				DeliverySpeed:       model.DeliveryExpedited,
			},
			want: Summary{
				Service:    "Photo + Video • Gold tier",
				Photo:      "2 half days • 40 edits",
				Video:      "1 full day • 2 reels, 1 recaps",
				Additional: "500mi travel • Expedited delivery",
			},
		},
		{
			name: "hourly photo at the travel maximum",
			req: model.QuoteRequest{
				IncludesPhotography: true,
				ServiceTier:         model.TierPlatinum,
				PhotoRateType:       model.RateHourly,
				PhotoDuration:       3,
				TravelDistance:      3000,
				DeliverySpeed:       model.DeliverySuperExpedited,
			},
			want: Summary{
				Service:    "Photo • Platinum tier",
				Photo:      "3h",
				Additional: "3000+mi travel • Super expedited delivery",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.req))
		})
	}
}
