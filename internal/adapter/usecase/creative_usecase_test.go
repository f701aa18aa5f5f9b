package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"campsim/internal/adapter/memory"
	"campsim/internal/core/domain"
)

// fakeScorer is a scripted port.Scorer for remote-first tests.
type fakeScorer struct {
	healthy bool
	score   *domain.CreativeScore
	err     error
	calls   int
}

func (f *fakeScorer) Healthy(context.Context) bool { return f.healthy }

func (f *fakeScorer) ScoreCreative(context.Context, domain.Creative) (*domain.CreativeScore, error) {
	f.calls++
	return f.score, f.err
}

func promoCreative() domain.Creative {
	return domain.Creative{
		Title:        "Buy Now Limited Offer",
		Description:  "Save 20% today on premium headphones",
		CallToAction: "Shop Now",
		Channel:      domain.ChannelFacebook,
	}
}

func TestScoreLocalEngine(t *testing.T) {
	repo := memory.NewCampaignRepository()
	uc := NewCreativeUseCase(repo, nil)

	score, err := uc.Score(context.Background(), promoCreative())
	require.NoError(t, err)
	require.Equal(t, 93, score.Overall)

	history, err := uc.History(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, 93, history[0].Score.Overall)
	require.NotEmpty(t, history[0].ID)
}

func TestScoreRemoteFirst(t *testing.T) {
	remote := &fakeScorer{
		healthy: true,
		score: &domain.CreativeScore{
			Overall:   88,
			Breakdown: domain.ScoreBreakdown{Clarity: 90, Urgency: 80, Relevance: 92, CallToAction: 85},
		},
	}
	uc := NewCreativeUseCase(memory.NewCampaignRepository(), remote)

	score, err := uc.Score(context.Background(), promoCreative())
	require.NoError(t, err)
	require.Equal(t, 88, score.Overall)
	require.Equal(t, 1, remote.calls)
}

// TestScoreRemoteFallback: remote failures degrade to the rule-based
// engine instead of erroring out.
func TestScoreRemoteFallback(t *testing.T) {
	tests := []struct {
		name      string
		remote    *fakeScorer
		wantCalls int
	}{
		{"unhealthy", &fakeScorer{healthy: false}, 0},
		{"remote error", &fakeScorer{healthy: true, err: errors.New("timeout")}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreativeUseCase(memory.NewCampaignRepository(), tt.remote)

			score, err := uc.Score(context.Background(), promoCreative())
			require.NoError(t, err)
			require.Equal(t, 93, score.Overall)
			require.Equal(t, tt.wantCalls, tt.remote.calls)
		})
	}
}

func TestScoreInvalidCreative(t *testing.T) {
	remote := &fakeScorer{healthy: true}
	uc := NewCreativeUseCase(memory.NewCampaignRepository(), remote)

	_, err := uc.Score(context.Background(), domain.Creative{Channel: domain.ChannelEmail})
	require.True(t, domain.IsInvalidInput(err))
	require.Zero(t, remote.calls) // validation happens before any remote call

	history, err := uc.History(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestHistoryLimit(t *testing.T) {
	uc := NewCreativeUseCase(memory.NewCampaignRepository(), nil)

	for i := 0; i < 5; i++ {
		_, err := uc.Score(context.Background(), promoCreative())
		require.NoError(t, err)
	}
	history, err := uc.History(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
}

func TestSuggestionsAndRank(t *testing.T) {
	uc := NewCreativeUseCase(memory.NewCampaignRepository(), nil)

	suggestions := uc.Suggestions(context.Background(), domain.ChannelTikTok, "FitTracker", "fitness")
	require.Len(t, suggestions, 6)

	ranked, err := uc.Rank(context.Background(), []domain.Creative{
		{ID: "a", Title: "Hi", Channel: domain.ChannelTwitter},
		{ID: "b", Title: "Get your free trial today", CallToAction: "Start now", Channel: domain.ChannelFacebook},
	})
	require.NoError(t, err)
	require.Equal(t, "b", ranked[0].ID)
}
