// Package memory provides an in-memory CampaignRepository used when no
// database is configured. It mirrors the persistence contract of the
// postgres adapter behind a mutex so local and test deployments behave
// the same as production ones.
package memory

import (
	"context"
	"sort"
	"sync"

	"campsim/internal/core/domain"
)

// CampaignRepository is a concurrency-safe in-memory implementation of
// port.CampaignRepository. Values are copied on read so callers can
// never mutate stored state.
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns map[string]domain.Campaign
	results   map[string]domain.CampaignResults
	scores    []domain.ScoredCreative
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		campaigns: make(map[string]domain.Campaign),
		results:   make(map[string]domain.CampaignResults),
	}
}

// SaveCampaign inserts or replaces a campaign by id.
func (r *CampaignRepository) SaveCampaign(_ context.Context, c domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns[c.ID] = c
	return nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// ListCampaigns returns all campaigns, newest first.
func (r *CampaignRepository) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// DeleteCampaign removes a campaign and its results bundle.
func (r *CampaignRepository) DeleteCampaign(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.campaigns, id)
	delete(r.results, id)
	return nil
}

// SaveResults inserts or replaces the results bundle for a campaign.
func (r *CampaignRepository) SaveResults(_ context.Context, bundle domain.CampaignResults) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[bundle.CampaignID] = bundle
	return nil
}

// GetResults returns the results bundle for a campaign.
func (r *CampaignRepository) GetResults(_ context.Context, campaignID string) (*domain.CampaignResults, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bundle, ok := r.results[campaignID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &bundle, nil
}

// SaveCreativeScore appends a record to the creative score history.
func (r *CampaignRepository) SaveCreativeScore(_ context.Context, rec domain.ScoredCreative) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores = append(r.scores, rec)
	return nil
}

// ListCreativeScores returns the most recent history records, newest
// first, up to limit.
func (r *CampaignRepository) ListCreativeScores(_ context.Context, limit int) ([]domain.ScoredCreative, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ScoredCreative, len(r.scores))
	copy(out, r.scores)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
