package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"campsim/internal/core/domain"
)

// TestScoreCreative checks the composite score for a strong promo
// creative against hand-computed sub-scores.
func TestScoreCreative(t *testing.T) {
	score, err := ScoreCreative(domain.Creative{
		Title:        "Buy Now Limited Offer",
		Description:  "Save 20% today on premium headphones",
		CallToAction: "Shop Now",
		Channel:      domain.ChannelFacebook,
	})
	require.NoError(t, err)

	require.Equal(t, 90, score.Breakdown.Clarity)
	require.Equal(t, 100, score.Breakdown.Urgency)
	require.Equal(t, 85, score.Breakdown.Relevance)
	require.Equal(t, 100, score.Breakdown.CallToAction)
	require.Equal(t, 93, score.Overall)

	require.Equal(t, []string{
		"Strong foundation - consider A/B testing variations to optimize further",
		"Social platforms favor visual storytelling - consider pairing with compelling imagery",
	}, score.Suggestions)
}

// TestScoreCreativeMinimal: a bare one-word title lands on the score
// floors and collects the maximum of three suggestions.
func TestScoreCreativeMinimal(t *testing.T) {
	score, err := ScoreCreative(domain.Creative{Title: "Hi", Channel: domain.ChannelLinkedIn})
	require.NoError(t, err)

	require.Equal(t, 60, score.Breakdown.Clarity) // clamped floor
	require.Equal(t, 45, score.Breakdown.Urgency)
	require.Equal(t, 65, score.Breakdown.Relevance)
	require.Equal(t, 50, score.Breakdown.CallToAction)
	require.Equal(t, 57, score.Overall)

	require.Equal(t, []string{
		"Consider using more conversational language to enhance message clarity and connection",
		"Adding time-sensitive elements like 'limited time' or 'while supplies last' could boost engagement",
		"Highlighting specific benefits and outcomes could strengthen customer appeal",
	}, score.Suggestions)
}

func TestScoreCreativeEmpty(t *testing.T) {
	_, err := ScoreCreative(domain.Creative{Channel: domain.ChannelFacebook})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

// TestScoreCreativeIdempotent: the scorer is pure; repeated calls agree.
func TestScoreCreativeIdempotent(t *testing.T) {
	creative := domain.Creative{
		Title:        "Discover Your Perfect Workout",
		Description:  "Proven results in 30 days, guaranteed",
		CallToAction: "Start your free trial",
		Channel:      domain.ChannelInstagram,
	}
	first, err := ScoreCreative(creative)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ScoreCreative(creative)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestScoreCreativeBounds: sub-scores and the overall stay within
// [0,100] even for keyword-stuffed copy.
func TestScoreCreativeBounds(t *testing.T) {
	stuffed := domain.Creative{
		Title:        "Exclusive Limited Free Guaranteed Instant Proven Secret Amazing Deal",
		Description:  "Act now, hurry, last chance, ending soon! Save 50% off today. " + strings.Repeat("You love your ultimate premium breakthrough solution. ", 5),
		CallToAction: "Buy shop order get download subscribe join start try now",
		Channel:      domain.ChannelGoogleAds,
	}
	score, err := ScoreCreative(stuffed)
	require.NoError(t, err)

	for name, v := range map[string]int{
		"overall":   score.Overall,
		"clarity":   score.Breakdown.Clarity,
		"urgency":   score.Breakdown.Urgency,
		"relevance": score.Breakdown.Relevance,
		"cta":       score.Breakdown.CallToAction,
	} {
		if v < 0 || v > 100 {
			t.Fatalf("%s out of range: %d", name, v)
		}
	}
	require.LessOrEqual(t, len(score.Suggestions), 3)
}

// TestScoreCreativeGoogleAdsHeadline: long headlines on google-ads get
// the headline-length tip when there is room left in the list.
func TestScoreCreativeGoogleAdsHeadline(t *testing.T) {
	score, err := ScoreCreative(domain.Creative{
		Title:        "Premium Wireless Headphones Guaranteed Best Sound",
		Description:  "Get your perfect sound today with free shipping",
		CallToAction: "Shop now and save",
		Channel:      domain.ChannelGoogleAds,
	})
	require.NoError(t, err)

	require.Equal(t, []string{
		"Strong foundation - consider A/B testing variations to optimize further",
		"Optimizing headline length for Google Ads character limits could improve visibility",
	}, score.Suggestions)
}

func TestCreativeSuggestions(t *testing.T) {
	for _, ch := range []domain.Channel{
		domain.ChannelFacebook,
		domain.ChannelInstagram,
		domain.ChannelGoogleAds,
		domain.ChannelLinkedIn,
		domain.ChannelYouTube,
		domain.ChannelTikTok,
	} {
		got := CreativeSuggestions(ch, "FitTracker", "fitness")
		require.Lenf(t, got, 6, "channel %s", ch)
		for _, s := range got {
			require.Containsf(t, s, "FitTracker", "channel %s: %q", ch, s)
		}
	}

	// channels without a dedicated template share the generic list
	generic := CreativeSuggestions(domain.ChannelEmail, "FitTracker", "fitness")
	require.Len(t, generic, 6)
	require.Equal(t, generic, CreativeSuggestions(domain.ChannelSEO, "FitTracker", "fitness"))
	require.Equal(t, "Professional-grade FitTracker - Trusted by industry experts", generic[0])
}

func TestRankCreatives(t *testing.T) {
	weak := domain.Creative{ID: "weak", Title: "Hi", Channel: domain.ChannelTwitter}
	strong := domain.Creative{
		ID:           "strong",
		Title:        "Buy Now Limited Offer",
		Description:  "Save 20% today on premium headphones",
		CallToAction: "Shop Now",
		Channel:      domain.ChannelFacebook,
	}

	ranked, err := RankCreatives([]domain.Creative{weak, strong})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	require.Equal(t, "strong", ranked[0].ID)
	require.Equal(t, "weak", ranked[1].ID)
	require.NotNil(t, ranked[0].Score)
	require.Greater(t, ranked[0].Score.Overall, ranked[1].Score.Overall)

	// input slice is not reordered
	require.Equal(t, "weak", weak.ID)

	_, err = RankCreatives([]domain.Creative{weak, {Channel: domain.ChannelEmail}})
	require.Error(t, err)
}
