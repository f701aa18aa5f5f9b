package port

import (
	"context"

	"campsim/internal/core/domain"
)

// OptimizationPlan is the outcome of a budget optimization request. The
// remote ML service fills the prediction fields; the local rule-based
// fallback only produces suggestions and leaves predictions zero with
// Source set accordingly.
type OptimizationPlan struct {
	RecommendedSplit map[domain.Channel]float64      `json:"recommendedSplit,omitempty"`
	PredictedRevenue float64                         `json:"predictedRevenue,omitempty"`
	PredictedROI     float64                         `json:"predictedRoi,omitempty"`
	Confidence       float64                         `json:"confidenceScore,omitempty"`
	Suggestions      []domain.OptimizationSuggestion `json:"suggestions"`
	Source           string                          `json:"source"` // "ml" or "rules"
}

// Optimizer is the strategy port for campaign budget optimization.
// The remote implementation talks to the external ML service; callers
// probe Healthy first and fall back to the rule-based engine when the
// service is unreachable.
type Optimizer interface {
	Healthy(ctx context.Context) bool
	OptimizeBudget(ctx context.Context, c domain.Campaign) (*OptimizationPlan, error)
}

// Scorer is the strategy port for creative scoring. Implementations
// must return scores shaped identically to the rule-based engine so
// callers are unaffected by which backend served the request.
type Scorer interface {
	Healthy(ctx context.Context) bool
	ScoreCreative(ctx context.Context, creative domain.Creative) (*domain.CreativeScore, error)
}
