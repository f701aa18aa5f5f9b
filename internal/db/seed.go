package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"campsim/internal/core/domain"
)

// Seed inserts demo campaigns so a fresh deployment has something to
// simulate. Existing rows are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	demos := []domain.Campaign{
		{
			Name: "Spring Headphone Launch",
			Product: domain.Product{
				Name:         "AeroBuds Pro",
				Category:     "electronics",
				Price:        99,
				Description:  "Wireless earbuds with adaptive noise cancelling",
				TargetMargin: 40,
			},
			Targeting: domain.Targeting{
				AgeRange:  domain.AgeRange{Min: 18, Max: 34},
				Gender:    "all",
				Interests: []string{"music", "fitness"},
				Location:  []string{"US"},
				Income:    "medium",
			},
			Budget: domain.Budget{Total: 5000, Duration: 30},
			Channels: domain.ChannelPreferences{
				Preferred: []domain.Channel{domain.ChannelInstagram, domain.ChannelTikTok, domain.ChannelGoogleAds},
			},
		},
		{
			Name: "B2B Analytics Suite",
			Product: domain.Product{
				Name:         "InsightGrid",
				Category:     "software",
				Price:        299,
				Description:  "Self-serve analytics for operations teams",
				TargetMargin: 70,
			},
			Targeting: domain.Targeting{
				AgeRange: domain.AgeRange{Min: 28, Max: 55},
				Gender:   "all",
				Income:   "high",
			},
			Budget: domain.Budget{Total: 12000, Duration: 60},
			Channels: domain.ChannelPreferences{
				Preferred: []domain.Channel{domain.ChannelLinkedIn, domain.ChannelGoogleAds, domain.ChannelEmail},
			},
		},
	}

	for i, c := range demos {
		c.ID = uuid.NewString()
		c.CreatedAt = time.Now().UTC().Add(time.Duration(-i) * time.Minute)
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal demo campaign: %w", err)
		}
		_, err = pool.Exec(ctx, `
            INSERT INTO campaigns (id, name, data, created_at)
            SELECT $1, $2, $3, $4
            WHERE NOT EXISTS (SELECT 1 FROM campaigns WHERE name = $2)`,
			c.ID, c.Name, data, c.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}
