package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dklebine/productioncalculator/internal/service"
)

func newTiersCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "List service tiers and their rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := service.TierCatalog()
			out := cmd.OutOrStdout()

			switch format {
			case FormatJSON:
				return writeJSON(out, catalog)
			case FormatText:
			default:
				return fmt.Errorf("unknown format %q, expected text or json", format)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TIER\tPHOTO (H/HALF/FULL)\tVIDEO (H/HALF/FULL)\tDELIVERY\tREVISIONS")
			for _, p := range catalog {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					p.Name,
					rateTriple(p.Rates.Photography.Hourly, p.Rates.Photography.HalfDay, p.Rates.Photography.FullDay),
					rateTriple(p.Rates.Videography.Hourly, p.Rates.Videography.HalfDay, p.Rates.Videography.FullDay),
					p.DeliveryTime,
					p.Revisions,
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format (text, json)")
	return cmd
}

func rateTriple(rates ...int64) string {
	parts := make([]string, len(rates))
	for i, r := range rates {
		parts[i] = fmt.Sprintf("$%d", r)
	}
	return strings.Join(parts, "/")
}
