// Package rediscache provides a Redis-backed results cache. Simulation
// output is deterministic, so cached bundles never go stale between
// reruns; the TTL only bounds memory use.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"campsim/internal/core/domain"
)

const keyPrefix = "campsim:results:"

// ResultsCache implements port.ResultsCache on top of go-redis.
type ResultsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultsCache wraps an existing redis client. ttl of zero means
// entries never expire.
func NewResultsCache(client *redis.Client, ttl time.Duration) *ResultsCache {
	return &ResultsCache{client: client, ttl: ttl}
}

// GetResults returns the cached bundle for a campaign, or (nil, nil) on
// a cache miss.
func (c *ResultsCache) GetResults(ctx context.Context, campaignID string) (*domain.CampaignResults, error) {
	data, err := c.client.Get(ctx, keyPrefix+campaignID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var bundle domain.CampaignResults
	if err = json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("unmarshal cached results: %w", err)
	}
	return &bundle, nil
}

// SetResults stores the bundle under its campaign id.
func (c *ResultsCache) SetResults(ctx context.Context, bundle domain.CampaignResults) error {
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	return c.client.Set(ctx, keyPrefix+bundle.CampaignID, data, c.ttl).Err()
}

// InvalidateResults drops the cached bundle for a campaign.
func (c *ResultsCache) InvalidateResults(ctx context.Context, campaignID string) error {
	return c.client.Del(ctx, keyPrefix+campaignID).Err()
}
