//go:build !integration

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/service"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCalc(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr error
	}{
		{
			name: "photo hourly text",
			args: []string{"calc", "--photo", "--tier", "gold", "--photo-duration", "3", "--client-covers-travel"},
			want: []string{"Services:", "Photo • Gold tier", "3h", "Gold Photo (3 hours)", "$300", "Total", "Standard options"},
		},
		{
			name: "video full days with expedited delivery",
			args: []string{"calc", "--video", "--tier", "platinum", "--video-rate", "fullDay", "--video-days", "2", "--client-covers-travel", "--delivery", "expedited"},
			want: []string{"Platinum Video Coverage (2 full days)", "$2800", "Expedited delivery", "$2900"},
		},
		{
			name: "travel is charged unless the client covers it",
			args: []string{"calc", "--photo", "--tier", "bronze", "--photo-rate", "halfDay", "--travel", "100"},
			want: []string{"Travel (100 miles)", "$200", "100mi travel"},
		},
		{
			name: "reels beyond the coverage are flagged but priced",
			args: []string{"calc", "--video", "--video-duration", "2", "--reels", "7", "--client-covers-travel"},
			want: []string{"Note:", "7 reels requested, the booked coverage supports 5", "Social Media Reels (7 x 30s)", "$700"},
		},
		{
			name:    "unknown tier",
			args:    []string{"calc", "--photo", "--tier", "diamond"},
			wantErr: service.ErrInvalidTier,
		},
		{
			name:    "unknown rate type",
			args:    []string{"calc", "--photo", "--photo-rate", "weekly"},
			wantErr: service.ErrInvalidRateType,
		},
		{
			name:    "negative edits",
			args:    []string{"calc", "--photo", "--photo-edits=-1"},
			wantErr: service.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestCalc_JSON(t *testing.T) {
	out, err := execute(t, "", "calc", "--photo", "--photo-duration", "2", "--photo-edits", "10", "--client-covers-travel", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Total     int64            `json:"total"`
		Breakdown []model.LineItem `json:"breakdown"`
		Summary   service.Summary  `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(250), got.Total)
	require.Len(t, got.Breakdown, 2)
	assert.Equal(t, "Advanced Photo Edits (10 photos)", got.Breakdown[1].Description)
	assert.Equal(t, "2h • 10 edits", got.Summary.Photo)
}

func TestCalc_RequestFile(t *testing.T) {
	body := `{"includesPhotography": true, "serviceTier": "gold", "photoRateType": "hourly", "photoDuration": 3, "clientCoversTravel": true, "deliverySpeed": "standard"}`

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "request.json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		out, err := execute(t, "", "calc", "--request", path, "--tier", "bronze")
		require.NoError(t, err)
		assert.Contains(t, out, "Gold Photo (3 hours)")
	})

	t.Run("from stdin", func(t *testing.T) {
		out, err := execute(t, body, "calc", "--request", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "$300")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "", "calc", "--request", filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorContains(t, err, "open request")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := execute(t, "{", "calc", "--request", "-")
		assert.ErrorContains(t, err, "decode request")
	})
}

func TestCalc_Document(t *testing.T) {
	out, err := execute(t, "", "--company", "Acme Films", "calc", "--photo", "--photo-duration", "3", "--client-covers-travel", "--document")
	require.NoError(t, err)

	assert.Contains(t, out, "Acme Films Quote")
	assert.Contains(t, out, "Total Cost: $300")
	assert.Contains(t, out, "Gold Photo (3 hours): $300")
	assert.Contains(t, out, "What You Get:")
}

func TestCalc_UnknownFormat(t *testing.T) {
	_, err := execute(t, "", "calc", "--photo", "--format", "yaml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestTiers(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "", "tiers")
		require.NoError(t, err)
		assert.Contains(t, out, "TIER")
		assert.Contains(t, out, "Platinum")
		assert.Contains(t, out, "$150/$650/$1099")
		assert.Contains(t, out, "Bronze")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "", "tiers", "--format", "json")
		require.NoError(t, err)

		var catalog []model.TierProfile
		require.NoError(t, json.Unmarshal([]byte(out), &catalog))
		assert.Len(t, catalog, 3)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "", "tiers", "--format", "xml")
		assert.Error(t, err)
	})
}

func TestMaxReels(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "one hour", args: []string{"max-reels"}, want: "1 hours of coverage supports up to 3 reels"},
		{name: "four hours", args: []string{"max-reels", "--duration", "4"}, want: "up to 9 reels"},
		{name: "two half days", args: []string{"max-reels", "--rate-type", "halfDay", "--days", "2"}, want: "12 hours of coverage supports up to 20 reels"},
		{name: "unknown rate type", args: []string{"max-reels", "--rate-type", "weekly"}, wantErr: service.ErrInvalidRateType},
		{name: "negative days", args: []string{"max-reels", "--rate-type", "fullDay", "--days=-1"}, wantErr: service.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}
