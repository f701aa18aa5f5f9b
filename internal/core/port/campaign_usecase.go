package port

import (
	"context"

	"campsim/internal/core/domain"
)

// CampaignUseCase defines the business operations around campaigns and
// their simulations. This is the primary inbound port consumed by the
// HTTP layer.
type CampaignUseCase interface {
	// CreateCampaign validates the campaign, assigns an id and creation
	// time, and persists it.
	CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	// GetCampaign returns a stored campaign by id.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListCampaigns returns all stored campaigns, newest first.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// DeleteCampaign removes a campaign together with its results.
	DeleteCampaign(ctx context.Context, id string) error

	// RunSimulation runs the forecasting engine for a stored campaign,
	// derives optimization suggestions and persists the bundle.
	RunSimulation(ctx context.Context, campaignID string) (*domain.CampaignResults, error)
	// GetResults returns the stored results bundle for a campaign.
	GetResults(ctx context.Context, campaignID string) (*domain.CampaignResults, error)
	// Optimize asks the remote ML optimizer for a budget plan, falling
	// back to rule-based suggestions when the service is unavailable.
	Optimize(ctx context.Context, campaignID string) (*OptimizationPlan, error)
}

// CreativeUseCase defines the operations of the creative tester.
type CreativeUseCase interface {
	// Score scores one creative, preferring the remote ML scorer when it
	// is reachable, and records the result in the score history.
	Score(ctx context.Context, creative domain.Creative) (*domain.CreativeScore, error)
	// Suggestions returns template copy ideas for a channel and product.
	Suggestions(ctx context.Context, channel domain.Channel, productName, category string) []string
	// Rank scores a set of creatives and orders them best first.
	Rank(ctx context.Context, creatives []domain.Creative) ([]domain.Creative, error)
	// History returns recent creative score records, newest first.
	History(ctx context.Context, limit int) ([]domain.ScoredCreative, error)
}
