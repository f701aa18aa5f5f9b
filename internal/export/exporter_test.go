package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"campsim/internal/core/domain"
)

func TestWriteResultsCSV(t *testing.T) {
	cpc := 115.38
	bundle := domain.CampaignResults{
		CampaignID: "c-1",
		Campaign:   domain.Campaign{Name: "Holiday Electronics Push"},
		Simulation: domain.SimulationResult{
			Metrics: domain.CampaignMetrics{
				EstimatedReach:       558,
				EstimatedEngagement:  18,
				EstimatedConversions: 26,
				EstimatedROI:         -14.2,
				CostPerConversion:    &cpc,
			},
			ChannelBreakdown: map[domain.Channel]domain.ChannelResult{
				domain.ChannelGoogleAds: {Spend: 1500, Reach: 300, Conversions: 14, ROI: -10.5},
				domain.ChannelEmail:     {Spend: 1500, Reach: 258, Conversions: 12, ROI: 40},
			},
			Timeline: []domain.TimelinePoint{
				{Day: 1, Reach: 3, Conversions: 0, Spend: 100},
				{Day: 2, Reach: 5, Conversions: 1, Spend: 100},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, bundle))
	out := buf.String()

	require.Contains(t, out, "campaign,Holiday Electronics Push")
	require.Contains(t, out, "estimated_reach,558")
	require.Contains(t, out, "cost_per_conversion,115.38")
	require.Contains(t, out, "estimated_roi_percent,-14.20")

	// channels are sorted by name: email before google-ads
	emailIdx := strings.Index(out, "email,1500.00,258,12,40.00")
	googleIdx := strings.Index(out, "google-ads,1500.00,300,14,-10.50")
	require.GreaterOrEqual(t, emailIdx, 0)
	require.GreaterOrEqual(t, googleIdx, 0)
	require.Less(t, emailIdx, googleIdx)

	require.Contains(t, out, "day,reach,conversions,spend")
	require.Contains(t, out, "2,5,1,100.00")
}

// TestWriteResultsCSVNoConversions: a campaign without conversions has
// no meaningful cost per conversion.
func TestWriteResultsCSVNoConversions(t *testing.T) {
	bundle := domain.CampaignResults{
		Campaign: domain.Campaign{Name: "Organic Only"},
		Simulation: domain.SimulationResult{
			ChannelBreakdown: map[domain.Channel]domain.ChannelResult{
				domain.ChannelSEO: {Spend: 500},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, bundle))
	require.Contains(t, buf.String(), "cost_per_conversion,n/a")
}

// TestWriteResultsCSVParseable: the output must survive a CSV reader
// configured for ragged rows.
func TestWriteResultsCSVParseable(t *testing.T) {
	cpc := 50.0
	bundle := domain.CampaignResults{
		Campaign: domain.Campaign{Name: "Name, with comma"},
		Simulation: domain.SimulationResult{
			Metrics: domain.CampaignMetrics{EstimatedConversions: 10, CostPerConversion: &cpc},
			ChannelBreakdown: map[domain.Channel]domain.ChannelResult{
				domain.ChannelFacebook: {Spend: 500, Reach: 100, Conversions: 10, ROI: 5},
			},
			Timeline: []domain.TimelinePoint{{Day: 1, Reach: 10, Spend: 50}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, bundle))

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"campaign", "Name, with comma"}, records[0])
}
