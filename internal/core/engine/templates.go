package engine

import (
	"fmt"
	"sort"

	"campsim/internal/core/domain"
)

// CreativeSuggestions fills the per-channel template table with the
// product name and category and returns six ready-to-use copy ideas.
// Unknown channels fall back to a generic list. Deterministic given its
// inputs.
func CreativeSuggestions(channel domain.Channel, productName, category string) []string {
	switch channel {
	case domain.ChannelFacebook:
		return []string{
			fmt.Sprintf("Transform your %s experience with %s - Join 10,000+ satisfied customers", category, productName),
			fmt.Sprintf("%s delivers results. Here's what makes it different from the competition", productName),
			fmt.Sprintf("Limited time: Get %s with free premium features worth $199", productName),
			fmt.Sprintf("Why top professionals choose %s for their %s needs", productName, category),
			fmt.Sprintf("%s reviews are in: 4.9/5 stars from verified customers", productName),
			fmt.Sprintf("Exclusive offer: %s + bonus training materials - Save 40%% today", productName),
		}
	case domain.ChannelInstagram:
		return []string{
			fmt.Sprintf("%s is changing the %s game - See the transformation", productName, category),
			fmt.Sprintf("Before vs After: Real results from %s users in just 30 days", productName),
			fmt.Sprintf("%s featured in top industry publications - Now available to you", productName),
			fmt.Sprintf("Join the %s community - Share your success story", productName),
			fmt.Sprintf("%s: The secret weapon of %s professionals", productName, category),
			fmt.Sprintf("Get %s + exclusive Instagram-only bonus content", productName),
		}
	case domain.ChannelGoogleAds:
		return []string{
			fmt.Sprintf("%s - #1 Rated %s Solution | Free Trial", productName, category),
			fmt.Sprintf("Compare %s vs Competitors - See Why We Win", productName),
			fmt.Sprintf("%s Reviews: 4.8/5 Stars | 30-Day Money Back", productName),
			fmt.Sprintf("Buy %s Today - Fast Shipping & Expert Support", productName),
			fmt.Sprintf("%s Special: Save 35%% + Free Premium Upgrade", productName),
			fmt.Sprintf("Professional %s Tool - %s | Try Risk-Free", category, productName),
		}
	case domain.ChannelLinkedIn:
		return []string{
			fmt.Sprintf("How %s helped industry leaders achieve 300%% ROI", productName),
			fmt.Sprintf("%s: The strategic advantage your team needs", productName),
			fmt.Sprintf("Case Study: %s implementation results at Fortune 500 companies", productName),
			fmt.Sprintf("Professional %s optimization with %s - Request demo", category, productName),
			fmt.Sprintf("%s white paper: Industry best practices and benchmarks", productName),
			fmt.Sprintf("Schedule your %s consultation - Limited slots available", productName),
		}
	case domain.ChannelYouTube:
		return []string{
			fmt.Sprintf("%s Complete Tutorial - Master %s in 30 Minutes", productName, category),
			fmt.Sprintf("%s vs Competition: Unbiased Review & Performance Test", productName),
			fmt.Sprintf("Real Users Review %s - Honest Feedback & Results", productName),
			fmt.Sprintf("%s Setup Guide - From Beginner to Expert", productName),
			fmt.Sprintf("Why I Switched to %s - My Honest Experience", productName),
			fmt.Sprintf("%s Advanced Tips: Get 10x Better Results", productName),
		}
	case domain.ChannelTikTok:
		return []string{
			fmt.Sprintf("POV: You discover %s and your %s life changes forever", productName, category),
			fmt.Sprintf("%s hack that everyone needs to know about", productName),
			fmt.Sprintf("Rating %s features until I find the best one", productName),
			fmt.Sprintf("%s before and after - the results will shock you", productName),
			fmt.Sprintf("Things I wish I knew before buying %s", productName),
			fmt.Sprintf("%s review but make it honest", productName),
		}
	default:
		return []string{
			fmt.Sprintf("Professional-grade %s - Trusted by industry experts", productName),
			fmt.Sprintf("%s: Advanced %s solution with proven results", productName, category),
			fmt.Sprintf("Upgrade your %s workflow with %s - 30-day trial", category, productName),
			fmt.Sprintf("%s delivers measurable improvements in %s performance", productName, category),
			fmt.Sprintf("Join thousands of professionals using %s for %s", productName, category),
			fmt.Sprintf("%s special offer: Full access + expert support included", productName),
		}
	}
}

// RankCreatives scores every creative and returns them ordered by
// overall score descending. Creatives whose copy is entirely empty are
// rejected.
func RankCreatives(creatives []domain.Creative) ([]domain.Creative, error) {
	ranked := make([]domain.Creative, len(creatives))
	copy(ranked, creatives)
	for i := range ranked {
		score, err := ScoreCreative(ranked[i])
		if err != nil {
			return nil, err
		}
		s := score
		ranked[i].Score = &s
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.Overall > ranked[j].Score.Overall
	})
	return ranked, nil
}
