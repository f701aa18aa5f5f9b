package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campsim/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool
// for PostgreSQL. Campaigns, results bundles and creative score history
// records are stored as JSONB documents keyed by their generated ids.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// SaveCampaign inserts or replaces a campaign by id.
func (r *CampaignRepository) SaveCampaign(ctx context.Context, c domain.Campaign) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal campaign: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO campaigns (id, name, data, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, data = EXCLUDED.data`,
		c.ID, c.Name, data, c.CreatedAt)
	return err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM campaigns WHERE id = $1`, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var c domain.Campaign
	if err = json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal campaign: %w", err)
	}
	return &c, nil
}

// ListCampaigns returns all campaigns, newest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT data FROM campaigns ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var data []byte
		var c domain.Campaign
		if err := row.Scan(&data); err != nil {
			return c, err
		}
		err := json.Unmarshal(data, &c)
		return c, err
	})
}

// DeleteCampaign removes a campaign. The results bundle goes with it
// via ON DELETE CASCADE.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SaveResults inserts or replaces the results bundle for a campaign.
func (r *CampaignRepository) SaveResults(ctx context.Context, bundle domain.CampaignResults) error {
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO campaign_results (campaign_id, data, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (campaign_id) DO UPDATE SET data = EXCLUDED.data, created_at = EXCLUDED.created_at`,
		bundle.CampaignID, data, bundle.CreatedAt)
	return err
}

// GetResults returns the results bundle for a campaign.
func (r *CampaignRepository) GetResults(ctx context.Context, campaignID string) (*domain.CampaignResults, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM campaign_results WHERE campaign_id = $1`, campaignID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var bundle domain.CampaignResults
	if err = json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}
	return &bundle, nil
}

// SaveCreativeScore appends a record to the creative score history.
func (r *CampaignRepository) SaveCreativeScore(ctx context.Context, rec domain.ScoredCreative) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal creative score: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO creative_scores (id, data, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO NOTHING`,
		rec.ID, data, rec.CreatedAt)
	return err
}

// ListCreativeScores returns the most recent history records, newest
// first, up to limit.
func (r *CampaignRepository) ListCreativeScores(ctx context.Context, limit int) ([]domain.ScoredCreative, error) {
	rows, err := r.pool.Query(ctx, `SELECT data FROM creative_scores ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScoredCreative, error) {
		var data []byte
		var rec domain.ScoredCreative
		if err := row.Scan(&data); err != nil {
			return rec, err
		}
		err := json.Unmarshal(data, &rec)
		return rec, err
	})
}
