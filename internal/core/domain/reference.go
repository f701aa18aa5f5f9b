package domain

// ChannelMetrics holds the empirical performance constants of a channel.
// Rates are fractions in [0,1]; CostPerClick is in currency units.
type ChannelMetrics struct {
	ReachRate      float64
	EngagementRate float64
	ConversionRate float64
	CostPerClick   float64
}

// channelMetrics is static reference data loaded once at startup and
// never mutated.
var channelMetrics = map[Channel]ChannelMetrics{
	ChannelFacebook:   {ReachRate: 0.12, EngagementRate: 0.018, ConversionRate: 0.009, CostPerClick: 1.72},
	ChannelInstagram:  {ReachRate: 0.08, EngagementRate: 0.058, ConversionRate: 0.007, CostPerClick: 3.56},
	ChannelGoogleAds:  {ReachRate: 0.35, EngagementRate: 0.036, ConversionRate: 0.039, CostPerClick: 2.69},
	ChannelTikTok:     {ReachRate: 0.15, EngagementRate: 0.054, ConversionRate: 0.006, CostPerClick: 1.00},
	ChannelYouTube:    {ReachRate: 0.20, EngagementRate: 0.018, ConversionRate: 0.013, CostPerClick: 3.21},
	ChannelLinkedIn:   {ReachRate: 0.06, EngagementRate: 0.027, ConversionRate: 0.028, CostPerClick: 5.26},
	ChannelTwitter:    {ReachRate: 0.048, EngagementRate: 0.015, ConversionRate: 0.005, CostPerClick: 3.75},
	ChannelEmail:      {ReachRate: 0.85, EngagementRate: 0.21, ConversionRate: 0.18, CostPerClick: 0.10},
	ChannelSEO:        {ReachRate: 0.45, EngagementRate: 0.024, ConversionRate: 0.025, CostPerClick: 0.00},
	ChannelInfluencer: {ReachRate: 0.25, EngagementRate: 0.037, ConversionRate: 0.019, CostPerClick: 4.12},
}

// MetricsFor returns the reference metrics for a channel. The second
// return value is false for unknown channels.
func MetricsFor(ch Channel) (ChannelMetrics, bool) {
	m, ok := channelMetrics[ch]
	return m, ok
}

// CategoryMultiplier scales reach, engagement and conversion for a
// product category.
type CategoryMultiplier struct {
	Reach      float64
	Engagement float64
	Conversion float64
}

var categoryMultipliers = map[string]CategoryMultiplier{
	"electronics": {Reach: 1.1, Engagement: 0.9, Conversion: 1.2},
	"fashion":     {Reach: 1.2, Engagement: 1.4, Conversion: 0.8},
	"health":      {Reach: 0.9, Engagement: 1.1, Conversion: 1.1},
	"home":        {Reach: 0.8, Engagement: 0.8, Conversion: 1.0},
	"sports":      {Reach: 1.0, Engagement: 1.2, Conversion: 0.9},
	"software":    {Reach: 0.7, Engagement: 0.6, Conversion: 1.5},
	"education":   {Reach: 0.6, Engagement: 0.7, Conversion: 1.3},
}

// MultiplierFor returns the category multiplier for the given product
// category. Unknown categories get the neutral multiplier.
func MultiplierFor(category string) CategoryMultiplier {
	if m, ok := categoryMultipliers[category]; ok {
		return m
	}
	return CategoryMultiplier{Reach: 1.0, Engagement: 1.0, Conversion: 1.0}
}
