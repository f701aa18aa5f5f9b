package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campsim/internal/core/domain"
	"campsim/internal/core/engine"
	"campsim/internal/core/port"
)

// CampaignUseCase provides business logic around campaigns: CRUD,
// running the simulation engine and serving optimization plans. It
// orchestrates the repository, an optional results cache and an
// optional remote optimizer.
type CampaignUseCase struct {
	repo      port.CampaignRepository
	cache     port.ResultsCache // may be nil
	optimizer port.Optimizer    // may be nil
}

// NewCampaignUseCase creates a new usecase. cache and optimizer may be
// nil; the usecase then skips caching and always answers optimization
// requests from the rule-based engine.
func NewCampaignUseCase(repo port.CampaignRepository, cache port.ResultsCache, optimizer port.Optimizer) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, cache: cache, optimizer: optimizer}
}

// CreateCampaign validates the campaign, assigns an id and creation
// time, and persists it.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	if err := u.repo.SaveCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("save campaign: %w", err)
	}
	return &c, nil
}

// GetCampaign returns a stored campaign by id.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.repo.GetCampaign(ctx, id)
}

// ListCampaigns returns all stored campaigns, newest first.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx)
}

// DeleteCampaign removes a campaign together with its results bundle
// and any cached copy.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id string) error {
	if err := u.repo.DeleteCampaign(ctx, id); err != nil {
		return err
	}
	if u.cache != nil {
		// cache invalidation is best effort; the entry expires anyway
		_ = u.cache.InvalidateResults(ctx, id)
	}
	return nil
}

// RunSimulation loads the campaign, runs the forecasting engine,
// derives rule-based suggestions and persists the resulting bundle.
func (u *CampaignUseCase) RunSimulation(ctx context.Context, campaignID string) (*domain.CampaignResults, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	result, err := engine.Simulate(*c)
	if err != nil {
		return nil, err
	}

	bundle := domain.CampaignResults{
		CampaignID:  c.ID,
		Campaign:    *c,
		Simulation:  *result,
		Suggestions: engine.Suggest(*c, result),
		CreatedAt:   time.Now().UTC(),
	}
	if err = u.repo.SaveResults(ctx, bundle); err != nil {
		return nil, fmt.Errorf("save results: %w", err)
	}
	if u.cache != nil {
		_ = u.cache.SetResults(ctx, bundle)
	}
	return &bundle, nil
}

// GetResults returns the stored results bundle, consulting the cache
// first when one is configured.
func (u *CampaignUseCase) GetResults(ctx context.Context, campaignID string) (*domain.CampaignResults, error) {
	if u.cache != nil {
		if bundle, err := u.cache.GetResults(ctx, campaignID); err == nil && bundle != nil {
			return bundle, nil
		}
	}
	bundle, err := u.repo.GetResults(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		_ = u.cache.SetResults(ctx, *bundle)
	}
	return bundle, nil
}

// Optimize answers with the remote ML plan when the optimizer is
// configured and reachable; otherwise it falls back to the rule-based
// suggestion engine over the latest simulation, running one if none is
// stored yet.
func (u *CampaignUseCase) Optimize(ctx context.Context, campaignID string) (*port.OptimizationPlan, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if u.optimizer != nil && u.optimizer.Healthy(ctx) {
		if plan, err := u.optimizer.OptimizeBudget(ctx, *c); err == nil {
			return plan, nil
		}
		// remote failure falls through to the local engine
	}

	bundle, err := u.repo.GetResults(ctx, campaignID)
	if errors.Is(err, domain.ErrNotFound) {
		bundle, err = u.RunSimulation(ctx, campaignID)
	}
	if err != nil {
		return nil, err
	}

	return &port.OptimizationPlan{
		Suggestions: engine.Suggest(bundle.Campaign, &bundle.Simulation),
		Source:      "rules",
	}, nil
}
