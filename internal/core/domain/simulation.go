package domain

import "time"

// CampaignMetrics aggregates forecasted outcomes across all active
// channels. CostPerConversion is nil when the simulation forecasts zero
// conversions; it is never NaN or infinite.
type CampaignMetrics struct {
	EstimatedReach       int      `json:"estimatedReach"`
	EstimatedEngagement  int      `json:"estimatedEngagement"`
	EstimatedConversions int      `json:"estimatedConversions"`
	EstimatedROI         float64  `json:"estimatedROI"` // percent
	CostPerConversion    *float64 `json:"costPerConversion"`
}

// ChannelResult is the forecasted outcome for one channel.
type ChannelResult struct {
	Spend       float64 `json:"spend"`
	Reach       int     `json:"reach"`
	Conversions int     `json:"conversions"`
	ROI         float64 `json:"roi"`
}

// TimelinePoint is one day of the forecasted campaign timeline.
type TimelinePoint struct {
	Day         int     `json:"day"`
	Reach       int     `json:"reach"`
	Conversions int     `json:"conversions"`
	Spend       float64 `json:"spend"`
}

// SimulationResult is the immutable output of one simulation run. It is
// created fresh on every call and never mutated afterwards.
type SimulationResult struct {
	CampaignID       string                    `json:"campaignId"`
	Metrics          CampaignMetrics           `json:"metrics"`
	ChannelBreakdown map[Channel]ChannelResult `json:"channelBreakdown"`
	Timeline         []TimelinePoint           `json:"timeline"`
}

// CampaignResults bundles a campaign with its simulation output and
// optimization suggestions for persistence.
type CampaignResults struct {
	CampaignID  string                   `json:"campaignId"`
	Campaign    Campaign                 `json:"campaign"`
	Simulation  SimulationResult         `json:"simulation"`
	Suggestions []OptimizationSuggestion `json:"optimization"`
	CreatedAt   time.Time                `json:"createdAt"`
}
