package port

import (
	"context"

	"campsim/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns, their
// results bundles and the creative score history. It is an outbound
// port; implementations must be safe for concurrent use. Lookup methods
// return domain.ErrNotFound when the record does not exist.
type CampaignRepository interface {
	// SaveCampaign inserts or replaces a campaign by id.
	SaveCampaign(ctx context.Context, c domain.Campaign) error
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListCampaigns returns all campaigns, newest first.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// DeleteCampaign removes a campaign and its results bundle.
	DeleteCampaign(ctx context.Context, id string) error

	// SaveResults inserts or replaces the results bundle for a campaign.
	SaveResults(ctx context.Context, bundle domain.CampaignResults) error
	// GetResults returns the results bundle for a campaign.
	GetResults(ctx context.Context, campaignID string) (*domain.CampaignResults, error)

	// SaveCreativeScore appends a record to the creative score history.
	SaveCreativeScore(ctx context.Context, rec domain.ScoredCreative) error
	// ListCreativeScores returns the most recent history records, newest
	// first, up to limit.
	ListCreativeScores(ctx context.Context, limit int) ([]domain.ScoredCreative, error)
}

// ResultsCache is an optional read-through cache in front of the
// repository for results bundles. Get returns (nil, nil) on a miss.
type ResultsCache interface {
	GetResults(ctx context.Context, campaignID string) (*domain.CampaignResults, error)
	SetResults(ctx context.Context, bundle domain.CampaignResults) error
	InvalidateResults(ctx context.Context, campaignID string) error
}
