package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/service"
)

type calcOptions struct {
	root        *rootOptions
	req         model.QuoteRequest
	tier        string
	photoRate   string
	videoRate   string
	delivery    string
	requestFile string
	format      string
	document    bool
}

func newCalcCmd(root *rootOptions) *cobra.Command {
	opts := &calcOptions{root: root}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a quote",
		Long: `Calculate a quote from flags or from a JSON request file.

With --request the file (or - for stdin) holds the same JSON body the
/api/calculate endpoint accepts, and the selection flags are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.req.IncludesPhotography, "photo", false, "include photography")
	f.BoolVar(&opts.req.IncludesVideography, "video", false, "include videography")
	f.StringVarP(&opts.tier, "tier", "t", string(model.TierGold), "service tier (platinum, gold, bronze)")
	f.StringVar(&opts.photoRate, "photo-rate", string(model.RateHourly), "photo rate type (hourly, halfDay, fullDay)")
	f.IntVar(&opts.req.PhotoDuration, "photo-duration", 1, "photo hours, for hourly bookings")
	f.IntVar(&opts.req.PhotoDays, "photo-days", 1, "photo days, for half and full day bookings")
	f.IntVar(&opts.req.PhotoEdits, "photo-edits", 0, "number of advanced photo edits")
	f.StringVar(&opts.videoRate, "video-rate", string(model.RateHourly), "video rate type (hourly, halfDay, fullDay)")
	f.IntVar(&opts.req.VideoDuration, "video-duration", 1, "video hours, for hourly bookings")
	f.IntVar(&opts.req.VideoDays, "video-days", 1, "video days, for half and full day bookings")
	f.IntVar(&opts.req.NumReels, "reels", 0, "number of social media reels")
	f.IntVar(&opts.req.ReelDuration, "reel-duration", 30, "reel length in seconds")
	f.IntVar(&opts.req.NumRecaps, "recaps", 0, "number of recap videos")
	f.IntVar(&opts.req.RecapDuration, "recap-duration", 60, "recap length in seconds")
	f.IntVar(&opts.req.TravelDistance, "travel", 0, "travel distance in miles")
	f.BoolVar(&opts.req.ClientCoversTravel, "client-covers-travel", false, "client pays travel directly")
	f.StringVarP(&opts.delivery, "delivery", "d", string(model.DeliveryStandard), "delivery speed (standard, expedited, superExpedited)")
	f.StringVarP(&opts.requestFile, "request", "r", "", "read the request from a JSON file, - for stdin")
	f.StringVarP(&opts.format, "format", "f", FormatText, "output format (text, json)")
	f.BoolVar(&opts.document, "document", false, "print the exportable quote document instead of the breakdown")

	return cmd
}

func runCalc(cmd *cobra.Command, opts *calcOptions) error {
	if opts.format != FormatText && opts.format != FormatJSON {
		return fmt.Errorf("unknown format %q, expected text or json", opts.format)
	}

	req, err := opts.request(cmd.InOrStdin())
	if err != nil {
		return err
	}

	calculator := service.NewQuoteCalculatorService()
	result, err := calculator.Calculate(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.document {
		return service.NewExporter(opts.root.company).Render(out, service.ExportRequest{Quote: result, FormData: req})
	}
	if opts.format == FormatJSON {
		return writeJSON(out, struct {
			model.QuoteResult
			Summary service.Summary `json:"summary"`
		}{result, service.Summarize(req)})
	}
	return writeBreakdown(out, req, result)
}

func (o *calcOptions) request(stdin io.Reader) (model.QuoteRequest, error) {
	if o.requestFile == "" {
		req := o.req
		req.ServiceTier = model.Tier(o.tier)
		req.PhotoRateType = model.RateType(o.photoRate)
		req.VideoRateType = model.RateType(o.videoRate)
		req.DeliverySpeed = model.DeliverySpeed(o.delivery)
		return req, nil
	}

	r := stdin
	if o.requestFile != "-" {
		f, err := os.Open(o.requestFile)
		if err != nil {
			return model.QuoteRequest{}, fmt.Errorf("open request: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req model.QuoteRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return model.QuoteRequest{}, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}

func writeBreakdown(w io.Writer, req model.QuoteRequest, result model.QuoteResult) error {
	summary := service.Summarize(req)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Services:\t%s\n", summary.Service)
	if summary.Photo != "" {
		fmt.Fprintf(tw, "Photo:\t%s\n", summary.Photo)
	}
	if summary.Video != "" {
		fmt.Fprintf(tw, "Video:\t%s\n", summary.Video)
	}
	fmt.Fprintf(tw, "Additional:\t%s\n", summary.Additional)
	if req.IncludesVideography {
		if supported := service.ClampReels(req); supported < req.NumReels {
			fmt.Fprintf(tw, "Note:\t%d reels requested, the booked coverage supports %d\n", req.NumReels, supported)
		}
	}
	fmt.Fprintln(tw)

	for _, item := range result.Breakdown {
		fmt.Fprintf(tw, "%s\t$%d\n", item.Description, item.Amount)
	}
	fmt.Fprintf(tw, "Total\t$%d\n", result.Total)
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
