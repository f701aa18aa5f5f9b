package engine

import (
	"math"
	"regexp"
	"strings"

	"campsim/internal/core/domain"
)

// Keyword sets are matched as substrings of the lowercased combined
// copy, mirroring how short marketing phrases are usually written.

var powerWords = []string{
	"exclusive", "limited", "free", "guaranteed", "instant", "proven", "secret",
	"amazing", "breakthrough", "revolutionary", "ultimate", "perfect", "premium",
	"professional", "certified", "trusted", "recommended", "popular", "bestseller",
}

var urgencyWords = []string{
	"now", "today", "immediately", "quickly", "fast", "urgent", "hurry",
	"limited time", "while supplies last", "don't wait", "act now", "expires",
	"deadline", "final", "last chance", "ending soon",
}

var ctaWords = []string{
	"buy", "shop", "order", "get", "download", "subscribe", "join", "start",
	"try", "discover", "learn", "claim", "grab", "secure", "book", "reserve",
	"sign up", "register", "contact", "call", "click", "tap", "visit",
}

var emotionalWords = []string{
	"love", "hate", "fear", "excited", "thrilled", "amazed", "surprised",
	"confident", "proud", "happy", "satisfied", "frustrated", "worried",
	"concerned", "relief", "peace", "comfort", "security", "freedom",
}

var benefitWords = []string{
	"you", "your", "benefit", "advantage", "solution", "result", "best", "better", "improve",
}

// discountPattern recognizes percentage and quantity discounts such as
// "20% off" or "save 10 free".
var discountPattern = regexp.MustCompile(`(?i)\d+%|\d+\s*(off|discount|save|free)`)

// sentencePattern splits copy on sentence terminators.
var sentencePattern = regexp.MustCompile(`[.!?]+`)

// ScoreCreative computes a 0-100 composite score for the creative from
// four weighted sub-scores (clarity 30%, urgency 20%, relevance 30%,
// call-to-action 20%) using lexical heuristics, plus up to three
// prioritized improvement suggestions. It is a pure function of the
// input text.
func ScoreCreative(creative domain.Creative) (domain.CreativeScore, error) {
	if err := creative.Validate(); err != nil {
		return domain.CreativeScore{}, err
	}

	text := strings.ToLower(creative.Title + " " + creative.Description + " " + creative.CallToAction)
	words := strings.Fields(text)
	wordCount := len(words)

	clarity := scoreClarity(text, words, wordCount)
	urgency := scoreUrgency(text)
	relevance := scoreRelevance(text, creative.Title)
	cta := scoreCallToAction(creative.CallToAction)

	overall := int(math.Round(float64(clarity)*0.3 + float64(urgency)*0.2 + float64(relevance)*0.3 + float64(cta)*0.2))

	return domain.CreativeScore{
		Overall: overall,
		Breakdown: domain.ScoreBreakdown{
			Clarity:      clarity,
			Urgency:      urgency,
			Relevance:    relevance,
			CallToAction: cta,
		},
		Suggestions: buildScoreSuggestions(creative, clarity, urgency, relevance, cta, wordCount, overall),
	}, nil
}

// scoreClarity starts at 75 and rewards copy in the 10-40 word sweet
// spot with 2-4 sentences, penalizing very short, very long or
// jargon-heavy text. Clamped to [60,100].
func scoreClarity(text string, words []string, wordCount int) int {
	score := 75

	switch {
	case wordCount < 5:
		score -= 15
	case wordCount > 60:
		score -= 10
	case wordCount >= 10 && wordCount <= 40:
		score += 15
	}

	complexWords := 0
	for _, w := range words {
		if len(w) > 15 {
			complexWords++
		}
	}
	if complexWords > 5 {
		score -= 8
	}

	sentences := 0
	for _, s := range sentencePattern.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences >= 2 && sentences <= 4 {
		score += 10
	}

	return clamp(score, 60, 100)
}

// scoreUrgency starts at 45 and adds 18 per urgency keyword present,
// plus bonuses for discount patterns and time-sensitive language.
func scoreUrgency(text string) int {
	score := 45

	for _, w := range urgencyWords {
		if strings.Contains(text, w) {
			score += 18
		}
	}
	if discountPattern.MatchString(text) {
		score += 25
	}
	if strings.Contains(text, "sale") || strings.Contains(text, "offer") || strings.Contains(text, "deal") {
		score += 15
	}
	if strings.Contains(text, "now") || strings.Contains(text, "today") || strings.Contains(text, "get") {
		score += 10
	}

	return clamp(score, 0, 100)
}

// scoreRelevance starts at 65 and rewards power, emotional and
// benefit-focused language, plus a bonus for a substantive title.
func scoreRelevance(text, title string) int {
	score := 65

	for _, w := range powerWords {
		if strings.Contains(text, w) {
			score += 5
		}
	}
	for _, w := range emotionalWords {
		if strings.Contains(text, w) {
			score += 4
		}
	}
	for _, w := range benefitWords {
		if strings.Contains(text, w) {
			score += 3
		}
	}
	if len(title) > 5 {
		score += 10
	}

	return clamp(score, 0, 100)
}

// scoreCallToAction starts at 50 and is only elevated when the CTA is
// present: bonuses for action verbs, a concise 1-5 word length and an
// imperative opening.
func scoreCallToAction(callToAction string) int {
	score := 50

	if strings.TrimSpace(callToAction) != "" {
		score += 20
		ctaText := strings.ToLower(callToAction)

		for _, w := range ctaWords {
			if strings.Contains(ctaText, w) {
				score += 10
			}
		}

		ctaWordCount := len(strings.Fields(ctaText))
		if ctaWordCount >= 1 && ctaWordCount <= 5 {
			score += 15
		} else if ctaWordCount > 7 {
			score -= 5
		}

		trimmed := strings.TrimSpace(ctaText)
		for _, w := range ctaWords {
			if strings.HasPrefix(trimmed, w) {
				score += 15
				break
			}
		}
	}

	return clamp(score, 0, 100)
}

// buildScoreSuggestions assembles improvement tips in fixed priority
// order and caps the list at three entries.
func buildScoreSuggestions(creative domain.Creative, clarity, urgency, relevance, cta, wordCount, overall int) []string {
	suggestions := make([]string, 0, 8)

	if clarity < 80 {
		suggestions = append(suggestions, "Consider using more conversational language to enhance message clarity and connection")
	}
	if urgency < 60 {
		suggestions = append(suggestions, "Adding time-sensitive elements like 'limited time' or 'while supplies last' could boost engagement")
	}
	if relevance < 75 {
		suggestions = append(suggestions, "Highlighting specific benefits and outcomes could strengthen customer appeal")
	}
	if cta < 70 {
		suggestions = append(suggestions, "Using more direct action verbs in your CTA may improve click-through rates")
	}

	if wordCount < 8 {
		suggestions = append(suggestions, "Adding a few more compelling details could help build stronger interest")
	} else if wordCount > 45 {
		suggestions = append(suggestions, "Streamlining your message might improve mobile readability and engagement")
	}

	if overall >= 70 {
		suggestions = append(suggestions, "Strong foundation - consider A/B testing variations to optimize further")
	}

	if creative.Channel == domain.ChannelFacebook || creative.Channel == domain.ChannelInstagram {
		if len(suggestions) < 3 {
			suggestions = append(suggestions, "Social platforms favor visual storytelling - consider pairing with compelling imagery")
		}
	}
	if creative.Channel == domain.ChannelGoogleAds && len(creative.Title) > 35 {
		suggestions = append(suggestions, "Optimizing headline length for Google Ads character limits could improve visibility")
	}
	if creative.Channel == domain.ChannelLinkedIn && len(suggestions) < 3 {
		suggestions = append(suggestions, "Professional tone with industry-specific benefits tends to perform well on LinkedIn")
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
