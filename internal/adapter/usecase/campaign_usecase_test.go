package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"campsim/internal/adapter/memory"
	"campsim/internal/core/domain"
	"campsim/internal/core/port"
)

func validCampaign() domain.Campaign {
	return domain.Campaign{
		Name: "Spring Fitness Launch",
		Product: domain.Product{
			Name:         "FitTracker Pro",
			Category:     "fitness",
			Price:        79,
			TargetMargin: 25,
		},
		Targeting: domain.Targeting{
			AgeRange: domain.AgeRange{Min: 20, Max: 35},
			Gender:   "all",
			Income:   "medium",
		},
		Budget: domain.Budget{Total: 5000, Duration: 14},
		Channels: domain.ChannelPreferences{
			Preferred: []domain.Channel{domain.ChannelInstagram, domain.ChannelTikTok},
		},
	}
}

// fakeOptimizer is a scripted port.Optimizer for fallback tests.
type fakeOptimizer struct {
	healthy bool
	plan    *port.OptimizationPlan
	err     error
	calls   int
}

func (f *fakeOptimizer) Healthy(context.Context) bool { return f.healthy }

func (f *fakeOptimizer) OptimizeBudget(context.Context, domain.Campaign) (*port.OptimizationPlan, error) {
	f.calls++
	return f.plan, f.err
}

func TestCreateCampaign(t *testing.T) {
	uc := NewCampaignUseCase(memory.NewCampaignRepository(), nil, nil)

	created, err := uc.CreateCampaign(context.Background(), validCampaign())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	stored, err := uc.GetCampaign(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Name, stored.Name)
}

func TestCreateCampaignInvalid(t *testing.T) {
	uc := NewCampaignUseCase(memory.NewCampaignRepository(), nil, nil)

	c := validCampaign()
	c.Budget.Total = 0
	_, err := uc.CreateCampaign(context.Background(), c)
	require.Error(t, err)
	require.True(t, domain.IsInvalidInput(err))

	list, err := uc.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestRunSimulationPersistsResults(t *testing.T) {
	repo := memory.NewCampaignRepository()
	uc := NewCampaignUseCase(repo, nil, nil)

	created, err := uc.CreateCampaign(context.Background(), validCampaign())
	require.NoError(t, err)

	bundle, err := uc.RunSimulation(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, bundle.CampaignID)
	require.Len(t, bundle.Simulation.ChannelBreakdown, 2)
	require.Positive(t, bundle.Simulation.Metrics.EstimatedReach)

	stored, err := uc.GetResults(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, bundle.Simulation.Metrics, stored.Simulation.Metrics)
}

func TestRunSimulationUnknownCampaign(t *testing.T) {
	uc := NewCampaignUseCase(memory.NewCampaignRepository(), nil, nil)

	_, err := uc.RunSimulation(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCampaignRemovesResults(t *testing.T) {
	uc := NewCampaignUseCase(memory.NewCampaignRepository(), nil, nil)

	created, err := uc.CreateCampaign(context.Background(), validCampaign())
	require.NoError(t, err)
	_, err = uc.RunSimulation(context.Background(), created.ID)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteCampaign(context.Background(), created.ID))

	_, err = uc.GetCampaign(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.GetResults(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestOptimizeRemote: a healthy remote optimizer serves the plan as is.
func TestOptimizeRemote(t *testing.T) {
	remote := &fakeOptimizer{
		healthy: true,
		plan: &port.OptimizationPlan{
			RecommendedSplit: map[domain.Channel]float64{domain.ChannelInstagram: 3000, domain.ChannelTikTok: 2000},
			PredictedROI:     0.42,
			Confidence:       0.9,
			Source:           "ml",
		},
	}
	uc := NewCampaignUseCase(memory.NewCampaignRepository(), nil, remote)

	created, err := uc.CreateCampaign(context.Background(), validCampaign())
	require.NoError(t, err)

	plan, err := uc.Optimize(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "ml", plan.Source)
	require.Equal(t, 0.42, plan.PredictedROI)
	require.Equal(t, 1, remote.calls)
}

// TestOptimizeFallback: an unhealthy or failing remote falls back to the
// rule-based engine, running a simulation when none is stored.
func TestOptimizeFallback(t *testing.T) {
	tests := []struct {
		name   string
		remote *fakeOptimizer
	}{
		{"no optimizer", nil},
		{"unhealthy", &fakeOptimizer{healthy: false}},
		{"remote error", &fakeOptimizer{healthy: true, err: errors.New("boom")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewCampaignRepository()
			var optimizer port.Optimizer
			if tt.remote != nil {
				optimizer = tt.remote
			}
			uc := NewCampaignUseCase(repo, nil, optimizer)

			created, err := uc.CreateCampaign(context.Background(), validCampaign())
			require.NoError(t, err)

			plan, err := uc.Optimize(context.Background(), created.ID)
			require.NoError(t, err)
			require.Equal(t, "rules", plan.Source)
			require.Zero(t, plan.PredictedROI)

			// the fallback stored the simulation it had to run
			_, err = repo.GetResults(context.Background(), created.ID)
			require.NoError(t, err)
		})
	}
}

// fakeCache records cache traffic for the read-through tests.
type fakeCache struct {
	entries       map[string]domain.CampaignResults
	hits, misses  int
	invalidations int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]domain.CampaignResults{}}
}

func (f *fakeCache) GetResults(_ context.Context, id string) (*domain.CampaignResults, error) {
	bundle, ok := f.entries[id]
	if !ok {
		f.misses++
		return nil, nil
	}
	f.hits++
	return &bundle, nil
}

func (f *fakeCache) SetResults(_ context.Context, bundle domain.CampaignResults) error {
	f.entries[bundle.CampaignID] = bundle
	return nil
}

func (f *fakeCache) InvalidateResults(_ context.Context, id string) error {
	f.invalidations++
	delete(f.entries, id)
	return nil
}

func TestGetResultsReadsThroughCache(t *testing.T) {
	cache := newFakeCache()
	uc := NewCampaignUseCase(memory.NewCampaignRepository(), cache, nil)

	created, err := uc.CreateCampaign(context.Background(), validCampaign())
	require.NoError(t, err)
	bundle, err := uc.RunSimulation(context.Background(), created.ID)
	require.NoError(t, err)

	// simulation already populated the cache
	got, err := uc.GetResults(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, bundle.CampaignID, got.CampaignID)
	require.Equal(t, 1, cache.hits)

	require.NoError(t, uc.DeleteCampaign(context.Background(), created.ID))
	require.Equal(t, 1, cache.invalidations)
	require.Empty(t, cache.entries)
}
