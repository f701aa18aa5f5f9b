package domain

import (
	"strings"
	"time"
)

// Creative is a single piece of ad copy targeted at one channel.
type Creative struct {
	ID           string         `json:"id,omitempty"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	CallToAction string         `json:"callToAction"`
	Channel      Channel        `json:"channel"`
	Score        *CreativeScore `json:"score,omitempty"`
}

// Validate checks that the creative carries some copy to score.
func (c Creative) Validate() error {
	if strings.TrimSpace(c.Title) == "" &&
		strings.TrimSpace(c.Description) == "" &&
		strings.TrimSpace(c.CallToAction) == "" {
		return &ValidationError{Field: "creative", Reason: "title, description and call to action are all empty"}
	}
	return nil
}

// ScoreBreakdown holds the four weighted sub-scores, each in [0,100].
type ScoreBreakdown struct {
	Clarity      int `json:"clarity"`
	Urgency      int `json:"urgency"`
	Relevance    int `json:"relevance"`
	CallToAction int `json:"callToAction"`
}

// CreativeScore is the composite scoring result for one creative.
type CreativeScore struct {
	Overall     int            `json:"overall"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	Suggestions []string       `json:"suggestions"`
}

// ScoredCreative is a history record of a scored creative.
type ScoredCreative struct {
	ID        string        `json:"id"`
	Creative  Creative      `json:"creative"`
	Score     CreativeScore `json:"score"`
	CreatedAt time.Time     `json:"createdAt"`
}
