package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campsim/internal/core/domain"
	"campsim/internal/core/engine"
	"campsim/internal/core/port"
)

// CreativeUseCase provides creative scoring with a remote-first,
// rule-based-fallback strategy, template suggestions and the score
// history.
type CreativeUseCase struct {
	repo   port.CampaignRepository
	scorer port.Scorer // may be nil
}

// NewCreativeUseCase creates a new usecase. scorer may be nil, in which
// case all scoring is served by the rule-based engine.
func NewCreativeUseCase(repo port.CampaignRepository, scorer port.Scorer) *CreativeUseCase {
	return &CreativeUseCase{repo: repo, scorer: scorer}
}

// Score scores one creative. When the remote ML scorer is configured
// and reachable it serves the request; any remote failure falls back to
// the deterministic rule-based engine so a score is always produced for
// valid input. The result is appended to the score history.
func (u *CreativeUseCase) Score(ctx context.Context, creative domain.Creative) (*domain.CreativeScore, error) {
	if err := creative.Validate(); err != nil {
		return nil, err
	}

	var score *domain.CreativeScore
	if u.scorer != nil && u.scorer.Healthy(ctx) {
		if remote, err := u.scorer.ScoreCreative(ctx, creative); err == nil {
			score = remote
		}
	}
	if score == nil {
		local, err := engine.ScoreCreative(creative)
		if err != nil {
			return nil, err
		}
		score = &local
	}

	// history is best effort; a storage hiccup must not fail scoring
	_ = u.repo.SaveCreativeScore(ctx, domain.ScoredCreative{
		ID:        uuid.NewString(),
		Creative:  creative,
		Score:     *score,
		CreatedAt: time.Now().UTC(),
	})

	return score, nil
}

// Suggestions returns the template copy ideas for a channel and product.
func (u *CreativeUseCase) Suggestions(_ context.Context, channel domain.Channel, productName, category string) []string {
	return engine.CreativeSuggestions(channel, productName, category)
}

// Rank scores a set of creatives and orders them best first.
func (u *CreativeUseCase) Rank(_ context.Context, creatives []domain.Creative) ([]domain.Creative, error) {
	return engine.RankCreatives(creatives)
}

// History returns recent creative score records, newest first.
func (u *CreativeUseCase) History(ctx context.Context, limit int) ([]domain.ScoredCreative, error) {
	return u.repo.ListCreativeScores(ctx, limit)
}
