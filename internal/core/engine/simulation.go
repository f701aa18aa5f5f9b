// Package engine implements the deterministic, rule-based forecasting
// and scoring logic. All functions are pure: they operate on their
// arguments and the static reference tables in the domain package, do no
// I/O and hold no state, so they are safe to call concurrently.
package engine

import (
	"math"

	"campsim/internal/core/domain"
)

const (
	// rampDays is the warm-up period of the forecast timeline. Daily
	// reach and conversions scale linearly up to full pro-rata share by
	// this day.
	rampDays = 7

	// maxTimelineDays caps how many timeline points a simulation emits.
	maxTimelineDays = 30
)

// Simulate forecasts reach, engagement, conversions and ROI for the
// campaign. The budget is split equally across active channels; per
// channel outcomes follow the static channel metrics scaled by category
// and demographic multipliers. The returned result is a fresh value and
// is never retained by the engine.
func Simulate(c domain.Campaign) (*domain.SimulationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	active := c.ActiveChannels()
	if len(active) == 0 {
		return nil, domain.ErrNoEligibleChannels
	}

	budgetPerChannel := c.Budget.Total / float64(len(active))
	category := domain.MultiplierFor(c.Product.Category)
	demographic := demographicMultiplier(c.Targeting)

	var (
		totalReach       int
		totalEngagement  int
		totalConversions int
		totalSpend       float64
	)
	breakdown := make(map[domain.Channel]domain.ChannelResult, len(active))

	for _, ch := range active {
		metrics, ok := domain.MetricsFor(ch)
		if !ok {
			continue
		}
		// A zero cost-per-click (organic channels like seo) would divide
		// the budget by zero; no paid reach can be bought there.
		var baseReach float64
		if metrics.CostPerClick > 0 {
			baseReach = (budgetPerChannel / metrics.CostPerClick) * metrics.ReachRate
		}
		reach := int(math.Round(baseReach * category.Reach * demographic))
		engagement := int(math.Round(float64(reach) * metrics.EngagementRate * category.Engagement))
		conversions := int(math.Round(float64(reach) * metrics.ConversionRate * category.Conversion))

		revenue := float64(conversions) * c.Product.Price
		roi := (revenue - budgetPerChannel) / budgetPerChannel * 100

		breakdown[ch] = domain.ChannelResult{
			Spend:       budgetPerChannel,
			Reach:       reach,
			Conversions: conversions,
			ROI:         roi,
		}

		totalReach += reach
		totalEngagement += engagement
		totalConversions += conversions
		totalSpend += budgetPerChannel
	}

	totalRevenue := float64(totalConversions) * c.Product.Price
	overallROI := round2((totalRevenue - totalSpend) / totalSpend * 100)

	var costPerConversion *float64
	if totalConversions > 0 {
		cpc := round2(totalSpend / float64(totalConversions))
		costPerConversion = &cpc
	}

	return &domain.SimulationResult{
		CampaignID: c.ID,
		Metrics: domain.CampaignMetrics{
			EstimatedReach:       totalReach,
			EstimatedEngagement:  totalEngagement,
			EstimatedConversions: totalConversions,
			EstimatedROI:         overallROI,
			CostPerConversion:    costPerConversion,
		},
		ChannelBreakdown: breakdown,
		Timeline:         buildTimeline(c.Budget, totalReach, totalConversions),
	}, nil
}

// demographicMultiplier derives a composite scaling factor from the
// target audience. Age and income contribute fixed factors; each
// targeted interest adds 10%, uncapped.
func demographicMultiplier(t domain.Targeting) float64 {
	multiplier := 1.0

	avgAge := float64(t.AgeRange.Min+t.AgeRange.Max) / 2
	if avgAge < 25 {
		multiplier *= 1.2
	} else if avgAge > 50 {
		multiplier *= 0.8
	}

	switch t.Income {
	case "high":
		multiplier *= 1.3
	case "medium":
		multiplier *= 1.1
	case "low":
		multiplier *= 0.8
	}

	if len(t.Interests) > 0 {
		multiplier *= 1 + float64(len(t.Interests))*0.1
	}
	return multiplier
}

// buildTimeline produces min(duration, 30) daily points. Each day gets a
// constant spend of total/duration, while reach and conversions ramp up
// linearly over the first week before reaching full pro-rata share.
func buildTimeline(b domain.Budget, totalReach, totalConversions int) []domain.TimelinePoint {
	days := b.Duration
	if days > maxTimelineDays {
		days = maxTimelineDays
	}
	dailySpend := b.Total / float64(b.Duration)

	timeline := make([]domain.TimelinePoint, 0, days)
	for day := 1; day <= days; day++ {
		ramp := math.Min(1, float64(day)/rampDays)
		timeline = append(timeline, domain.TimelinePoint{
			Day:         day,
			Reach:       int(math.Round(float64(totalReach) / float64(b.Duration) * ramp)),
			Conversions: int(math.Round(float64(totalConversions) / float64(b.Duration) * ramp)),
			Spend:       dailySpend,
		})
	}
	return timeline
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
