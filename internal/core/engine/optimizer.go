package engine

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"campsim/internal/core/domain"
)

// roiGapThreshold is the ROI spread, in absolute percentage points,
// between the best and worst channel that triggers a budget
// reallocation suggestion.
const roiGapThreshold = 50

// Suggest derives optimization suggestions from a finished simulation.
// Suggestions come back in generation order: a budget reallocation
// first when the channel ROI spread warrants one, then channel
// additions for unused high-value channels. The impact figures are
// fixed heuristic constants rather than recomputed deltas.
func Suggest(c domain.Campaign, results *domain.SimulationResult) []domain.OptimizationSuggestion {
	suggestions := make([]domain.OptimizationSuggestion, 0, 3)

	type channelPerformance struct {
		channel domain.Channel
		roi     float64
		spend   float64
	}
	ranked := make([]channelPerformance, 0, len(results.ChannelBreakdown))
	for ch, r := range results.ChannelBreakdown {
		ranked = append(ranked, channelPerformance{channel: ch, roi: r.ROI, spend: r.Spend})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].roi != ranked[j].roi {
			return ranked[i].roi > ranked[j].roi
		}
		return ranked[i].channel < ranked[j].channel
	})

	if len(ranked) >= 2 {
		best, worst := ranked[0], ranked[len(ranked)-1]
		if best.roi > worst.roi+roiGapThreshold {
			suggestions = append(suggestions, domain.OptimizationSuggestion{
				Type:        domain.SuggestionBudgetReallocation,
				Title:       "Reallocate Budget to High-Performing Channels",
				Description: fmt.Sprintf("Move 30%% of budget from %s to %s for better ROI", worst.channel, best.channel),
				Impact: domain.SuggestionImpact{
					ROIIncrease:        15,
					ReachIncrease:      8,
					ConversionIncrease: 12,
				},
				Changes: domain.SuggestionChanges{
					FromChannel: worst.channel,
					ToChannel:   best.channel,
					Amount:      math.Round(worst.spend * 0.3),
				},
			})
		}
	}

	unused := c.UnusedChannels()

	if slices.Contains(unused, domain.ChannelGoogleAds) && c.Budget.Total > 500 {
		suggestions = append(suggestions, domain.OptimizationSuggestion{
			Type:        domain.SuggestionChannelAddition,
			Title:       "Add Google Ads for Better Reach",
			Description: "Google Ads typically provides high-intent traffic with good conversion rates",
			Impact: domain.SuggestionImpact{
				ROIIncrease:        12,
				ReachIncrease:      25,
				ConversionIncrease: 18,
			},
			Changes: domain.SuggestionChanges{
				ToChannel: domain.ChannelGoogleAds,
				Amount:    math.Round(c.Budget.Total * 0.25),
			},
		})
	}

	if slices.Contains(unused, domain.ChannelEmail) && c.Product.Price > 50 {
		suggestions = append(suggestions, domain.OptimizationSuggestion{
			Type:        domain.SuggestionChannelAddition,
			Title:       "Add Email Marketing for Higher ROI",
			Description: "Email marketing has the highest ROI and works well for repeat purchases",
			Impact: domain.SuggestionImpact{
				ROIIncrease:        22,
				ReachIncrease:      5,
				ConversionIncrease: 15,
			},
			Changes: domain.SuggestionChanges{
				ToChannel: domain.ChannelEmail,
				Amount:    math.Round(c.Budget.Total * 0.15),
			},
		})
	}

	return suggestions
}
