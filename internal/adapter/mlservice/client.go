// Package mlservice is the HTTP client for the external ML scoring and
// optimization service. It implements the port.Optimizer and
// port.Scorer strategy ports; callers probe Healthy and fall back to
// the rule-based engine when the service is down.
package mlservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"campsim/internal/config/configs"
	"campsim/internal/core/domain"
	"campsim/internal/core/port"
)

// Client talks to the ML service over JSON/HTTP with a short timeout
// and a bounded number of retries with quadratic backoff. Responses
// with 4xx status fail fast; 5xx and transport errors are retried.
type Client struct {
	baseURL       string
	client        *http.Client
	retryAttempts int
}

// NewClient builds a client from configuration.
func NewClient(cfg configs.ML) *Client {
	return &Client{
		baseURL:       cfg.BaseURL,
		client:        &http.Client{Timeout: cfg.Timeout},
		retryAttempts: cfg.RetryAttempts,
	}
}

// Healthy probes the service health endpoint. Any transport error or
// non-2xx status reports the service as down.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ml/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

type optimizeRequest struct {
	TotalBudget     float64 `json:"total_budget"`
	AOV             float64 `json:"aov"`
	Age             float64 `json:"age"`
	Gender          string  `json:"gender"`
	IncomeLevel     string  `json:"income_level"`
	CreativeQuality float64 `json:"creative_quality"`
	CampaignDays    int     `json:"campaign_days"`
	TargetMargin    float64 `json:"target_margin"`
}

type optimizeResponse struct {
	RecommendedSplit map[string]float64 `json:"recommended_split"`
	PredictedRevenue float64            `json:"predicted_revenue"`
	PredictedROI     float64            `json:"predicted_roi"`
	ConfidenceScore  float64            `json:"confidence_score"`
}

// mlChannels maps the ML service's channel names onto ours.
var mlChannels = map[string]domain.Channel{
	"instagram": domain.ChannelInstagram,
	"google":    domain.ChannelGoogleAds,
	"tiktok":    domain.ChannelTikTok,
	"facebook":  domain.ChannelFacebook,
	"youtube":   domain.ChannelYouTube,
	"linkedin":  domain.ChannelLinkedIn,
}

// OptimizeBudget asks the ML service for a budget split and converts
// the prediction into an optimization plan. Reallocation suggestions
// are derived by comparing the recommended split against the user's own
// allocation; differences under 5% of the total budget are ignored.
func (c *Client) OptimizeBudget(ctx context.Context, campaign domain.Campaign) (*port.OptimizationPlan, error) {
	req := optimizeRequest{
		TotalBudget:     campaign.Budget.Total,
		AOV:             campaign.Product.Price,
		Age:             float64(campaign.Targeting.AgeRange.Min+campaign.Targeting.AgeRange.Max) / 2,
		Gender:          mlGender(campaign.Targeting.Gender),
		IncomeLevel:     mlIncome(campaign.Targeting.Income),
		CreativeQuality: creativeQuality(campaign.Creatives),
		CampaignDays:    campaign.Budget.Duration,
		TargetMargin:    campaign.Product.TargetMargin / 100,
	}

	var resp optimizeResponse
	if err := c.post(ctx, "/api/ml/campaign/optimize", req, &resp); err != nil {
		return nil, err
	}

	split := make(map[domain.Channel]float64, len(resp.RecommendedSplit))
	for name, amount := range resp.RecommendedSplit {
		if ch, ok := mlChannels[name]; ok {
			split[ch] = amount
		}
	}

	plan := &port.OptimizationPlan{
		RecommendedSplit: split,
		PredictedRevenue: resp.PredictedRevenue,
		PredictedROI:     resp.PredictedROI,
		Confidence:       resp.ConfidenceScore,
		Source:           "ml",
	}

	threshold := campaign.Budget.Total * 0.05
	for ch, optimal := range split {
		current := campaign.Budget.Channels[ch]
		diff := optimal - current
		if math.Abs(diff) <= threshold {
			continue
		}
		share := math.Abs(diff) / campaign.Budget.Total
		s := domain.OptimizationSuggestion{
			Type: domain.SuggestionBudgetReallocation,
			Impact: domain.SuggestionImpact{
				ROIIncrease:        resp.PredictedROI * 100 * share,
				ReachIncrease:      10 * share,
				ConversionIncrease: 8 * share,
			},
			Changes: domain.SuggestionChanges{Amount: math.Abs(diff)},
		}
		if diff > 0 {
			s.Title = fmt.Sprintf("Increase %s budget", ch)
			s.Description = fmt.Sprintf("Increase budget allocation to %s by $%.2f for better ROI", ch, diff)
			s.Changes.ToChannel = ch
		} else {
			s.Title = fmt.Sprintf("Decrease %s budget", ch)
			s.Description = fmt.Sprintf("Reduce budget allocation from %s by $%.2f and reallocate", ch, -diff)
			s.Changes.FromChannel = ch
		}
		plan.Suggestions = append(plan.Suggestions, s)
	}
	return plan, nil
}

// mlGender translates our audience gender onto the model's vocabulary.
func mlGender(gender string) string {
	switch gender {
	case "male":
		return "man"
	case "female":
		return "woman"
	default:
		return "all"
	}
}

// mlIncome translates income targeting; the model only distinguishes
// low from everything else.
func mlIncome(income string) string {
	if income == "low" {
		return "low"
	}
	return "high"
}

// creativeQuality summarizes attached creative scores as a 0-1 factor.
// Unscored creatives count as 70; a campaign without creatives gets a
// neutral 0.7.
func creativeQuality(creatives []domain.Creative) float64 {
	if len(creatives) == 0 {
		return 0.7
	}
	total := 0.0
	for _, cr := range creatives {
		if cr.Score != nil {
			total += float64(cr.Score.Overall)
		} else {
			total += 70
		}
	}
	return total / float64(len(creatives)) / 100
}

type scoreRequest struct {
	Channel     string `json:"channel"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
}

type scoreResponse struct {
	Scores struct {
		Title       float64 `json:"title"`
		Description float64 `json:"description"`
		CTA         float64 `json:"cta"`
		ChannelFit  float64 `json:"channel_fit"`
		Final       float64 `json:"final"`
	} `json:"scores"`
	Feedback     []string            `json:"feedback"`
	Improvements map[string][]string `json:"improvements"`
}

// ScoreCreative asks the ML service to score a creative and maps the
// response onto the same shape the rule-based engine produces.
func (c *Client) ScoreCreative(ctx context.Context, creative domain.Creative) (*domain.CreativeScore, error) {
	channel := string(creative.Channel)
	if creative.Channel == domain.ChannelGoogleAds {
		channel = "google"
	}
	req := scoreRequest{
		Channel:     channel,
		Title:       creative.Title,
		Description: creative.Description,
		CTA:         creative.CallToAction,
	}

	var resp scoreResponse
	if err := c.post(ctx, "/api/ml/creative/score", req, &resp); err != nil {
		return nil, err
	}

	suggestions := append([]string{}, resp.Feedback...)
	suggestions = append(suggestions, resp.Improvements["title"]...)
	suggestions = append(suggestions, resp.Improvements["description"]...)
	suggestions = append(suggestions, resp.Improvements["cta"]...)

	return &domain.CreativeScore{
		Overall: int(math.Round(resp.Scores.Final)),
		Breakdown: domain.ScoreBreakdown{
			Clarity:      int(math.Round(resp.Scores.Title)),
			Urgency:      int(math.Round(resp.Scores.Description)),
			Relevance:    int(math.Round(resp.Scores.ChannelFit)),
			CallToAction: int(math.Round(resp.Scores.CTA)),
		},
		Suggestions: suggestions,
	}, nil
}

// post sends a JSON request and decodes the JSON response, retrying
// server errors with quadratic backoff.
func (c *Client) post(ctx context.Context, path string, body, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("ml service error: %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return fmt.Errorf("ml service rejected request: %d", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if err = json.Unmarshal(data, target); err != nil {
			lastErr = fmt.Errorf("decode response: %w", err)
			continue
		}
		return nil
	}
	return fmt.Errorf("all retry attempts failed, last error: %w", lastErr)
}
