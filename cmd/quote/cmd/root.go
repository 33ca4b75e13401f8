// Package cmd provides the commands of the quote CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dklebine/productioncalculator/config"
	"github.com/dklebine/productioncalculator/internal/logger"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type rootOptions struct {
	verbose bool
	company string
}

// NewRootCmd builds the quote command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "quote",
		Short: "Price photo and video production bookings",
		Long: `quote prices photo and video production bookings with the same rules as the quote service.

Examples:
  quote calc --photo --tier gold --photo-rate hourly --photo-duration 3
  quote calc --video --tier platinum --video-rate fullDay --video-days 2 --reels 2 --format json
  quote calc --request booking.json --document
  quote tiers
  quote max-reels --rate-type halfDay --days 2`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logger.InitWithWriter(cmd.ErrOrStderr(), level, true)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&opts.company, "company", config.Load().Export.CompanyName, "company name heading exported documents")

	root.AddCommand(newCalcCmd(opts), newTiersCmd(), newMaxReelsCmd())
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
