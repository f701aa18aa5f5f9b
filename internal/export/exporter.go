// Package export renders results bundles into downloadable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"campsim/internal/core/domain"
)

// WriteResultsCSV writes a campaign results bundle as CSV: a metrics
// summary, the per-channel breakdown and the daily timeline, separated
// by blank rows. Channels are sorted by name so output is stable.
func WriteResultsCSV(w io.Writer, bundle domain.CampaignResults) error {
	cw := csv.NewWriter(w)

	m := bundle.Simulation.Metrics
	costPerConversion := "n/a"
	if m.CostPerConversion != nil {
		costPerConversion = formatFloat(*m.CostPerConversion)
	}
	summary := [][]string{
		{"campaign", bundle.Campaign.Name},
		{"estimated_reach", fmt.Sprintf("%d", m.EstimatedReach)},
		{"estimated_engagement", fmt.Sprintf("%d", m.EstimatedEngagement)},
		{"estimated_conversions", fmt.Sprintf("%d", m.EstimatedConversions)},
		{"estimated_roi_percent", formatFloat(m.EstimatedROI)},
		{"cost_per_conversion", costPerConversion},
	}
	if err := cw.WriteAll(summary); err != nil {
		return err
	}

	if err := cw.WriteAll([][]string{{}, {"channel", "spend", "reach", "conversions", "roi_percent"}}); err != nil {
		return err
	}
	channels := make([]domain.Channel, 0, len(bundle.Simulation.ChannelBreakdown))
	for ch := range bundle.Simulation.ChannelBreakdown {
		channels = append(channels, ch)
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })
	for _, ch := range channels {
		r := bundle.Simulation.ChannelBreakdown[ch]
		if err := cw.Write([]string{
			string(ch),
			formatFloat(r.Spend),
			fmt.Sprintf("%d", r.Reach),
			fmt.Sprintf("%d", r.Conversions),
			formatFloat(r.ROI),
		}); err != nil {
			return err
		}
	}

	if err := cw.WriteAll([][]string{{}, {"day", "reach", "conversions", "spend"}}); err != nil {
		return err
	}
	for _, p := range bundle.Simulation.Timeline {
		if err := cw.Write([]string{
			fmt.Sprintf("%d", p.Day),
			fmt.Sprintf("%d", p.Reach),
			fmt.Sprintf("%d", p.Conversions),
			formatFloat(p.Spend),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
