package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/service"
)

func newMaxReelsCmd() *cobra.Command {
	var (
		rateType string
		duration int
		days     int
	)

	cmd := &cobra.Command{
		Use:   "max-reels",
		Short: "Show how many reels a video booking supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := model.RateType(rateType)
			if !rt.Valid() {
				return fmt.Errorf("%w: %q", service.ErrInvalidRateType, rateType)
			}
			if duration < 0 || days < 0 {
				return fmt.Errorf("%w: duration and days must not be negative", service.ErrInvalidQuantity)
			}

			hours := service.CoverageHours(rt, duration, days)
			fmt.Fprintf(cmd.OutOrStdout(), "%d hours of coverage supports up to %d reels\n", hours, service.MaxReels(hours))
			return nil
		},
	}

	cmd.Flags().StringVar(&rateType, "rate-type", string(model.RateHourly), "video rate type (hourly, halfDay, fullDay)")
	cmd.Flags().IntVar(&duration, "duration", 1, "hours, for hourly bookings")
	cmd.Flags().IntVar(&days, "days", 1, "days, for half and full day bookings")
	return cmd
}
