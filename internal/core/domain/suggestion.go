package domain

// SuggestionType classifies an optimization suggestion.
type SuggestionType string

const (
	SuggestionBudgetReallocation  SuggestionType = "budget_reallocation"
	SuggestionChannelAddition     SuggestionType = "channel_addition"
	SuggestionCreativeImprovement SuggestionType = "creative_improvement"
)

// SuggestionImpact carries estimated percentage improvements. The
// rule-based engine emits fixed heuristic constants here, not values
// recomputed from the recommended change.
type SuggestionImpact struct {
	ROIIncrease        float64 `json:"roiIncrease"`
	ReachIncrease      float64 `json:"reachIncrease"`
	ConversionIncrease float64 `json:"conversionIncrease"`
}

// SuggestionChanges describes the concrete change a suggestion proposes.
type SuggestionChanges struct {
	FromChannel     Channel  `json:"fromChannel,omitempty"`
	ToChannel       Channel  `json:"toChannel,omitempty"`
	Amount          float64  `json:"amount,omitempty"`
	CreativeChanges []string `json:"creativeChanges,omitempty"`
}

// OptimizationSuggestion is one actionable recommendation derived from
// simulation results. Suggestions are emitted in generation order;
// ranking into impact buckets is a display concern.
type OptimizationSuggestion struct {
	Type        SuggestionType    `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Impact      SuggestionImpact  `json:"impact"`
	Changes     SuggestionChanges `json:"changes"`
}
