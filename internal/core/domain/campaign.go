package domain

import (
	"slices"
	"time"
)

// Campaign represents a hypothetical advertising campaign configured by
// a user. It is the input to the simulation engine.
type Campaign struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Product   Product            `json:"product"`
	Targeting Targeting          `json:"targeting"`
	Budget    Budget             `json:"budget"`
	Channels  ChannelPreferences `json:"channels"`
	Creatives []Creative         `json:"creatives,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Product describes what the campaign advertises.
type Product struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	// TargetMargin is a percentage in [0,100].
	TargetMargin float64 `json:"targetMargin"`
}

// AgeRange bounds the target audience age.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Targeting describes the audience a campaign is aimed at.
type Targeting struct {
	AgeRange  AgeRange `json:"ageRange"`
	Gender    string   `json:"gender"` // male, female, all
	Interests []string `json:"interests"`
	Location  []string `json:"location"`
	Income    string   `json:"income"` // low, medium, high, all
}

// Budget holds the total spend and campaign duration. Channels records
// the user's own allocation per channel; it is informational only, the
// simulation recomputes an equal split over active channels.
type Budget struct {
	Total    float64             `json:"total"`
	Duration int                 `json:"duration"` // days
	Channels map[Channel]float64 `json:"channels,omitempty"`
}

// ChannelPreferences lists channels the user wants to use or exclude.
// Preferred and Avoided must be disjoint.
type ChannelPreferences struct {
	Preferred []Channel `json:"preferred"`
	Avoided   []Channel `json:"avoided"`
}

// ActiveChannels resolves the channels a simulation will spend on:
// the preferred set when non-empty, otherwise every known channel not
// explicitly avoided. Unknown channel identifiers are dropped.
func (c Campaign) ActiveChannels() []Channel {
	if len(c.Channels.Preferred) > 0 {
		active := make([]Channel, 0, len(c.Channels.Preferred))
		for _, ch := range c.Channels.Preferred {
			if KnownChannel(ch) {
				active = append(active, ch)
			}
		}
		return active
	}
	active := make([]Channel, 0, len(allChannels))
	for _, ch := range allChannels {
		if !slices.Contains(c.Channels.Avoided, ch) {
			active = append(active, ch)
		}
	}
	return active
}

// UnusedChannels returns the known channels that appear in neither the
// preferred nor the avoided set. These are candidates for channel
// addition suggestions.
func (c Campaign) UnusedChannels() []Channel {
	unused := make([]Channel, 0, len(allChannels))
	for _, ch := range allChannels {
		if !slices.Contains(c.Channels.Preferred, ch) && !slices.Contains(c.Channels.Avoided, ch) {
			unused = append(unused, ch)
		}
	}
	return unused
}

// Validate checks the campaign for shape and range errors. It returns a
// *ValidationError describing the first violation found, or nil.
func (c Campaign) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "campaign name is required"}
	}
	if len(c.Name) > 100 {
		return &ValidationError{Field: "name", Reason: "campaign name too long"}
	}
	if c.Product.Name == "" {
		return &ValidationError{Field: "product.name", Reason: "product name is required"}
	}
	if c.Product.Price <= 0 {
		return &ValidationError{Field: "product.price", Reason: "price must be positive"}
	}
	if c.Product.TargetMargin < 0 || c.Product.TargetMargin > 100 {
		return &ValidationError{Field: "product.targetMargin", Reason: "target margin must be between 0 and 100"}
	}
	if c.Targeting.AgeRange.Min < 13 {
		return &ValidationError{Field: "targeting.ageRange.min", Reason: "minimum age must be at least 13"}
	}
	if c.Targeting.AgeRange.Max > 90 {
		return &ValidationError{Field: "targeting.ageRange.max", Reason: "maximum age cannot exceed 90"}
	}
	if c.Targeting.AgeRange.Min >= c.Targeting.AgeRange.Max {
		return &ValidationError{Field: "targeting.ageRange", Reason: "minimum age must be below maximum age"}
	}
	if len(c.Targeting.Interests) > 20 {
		return &ValidationError{Field: "targeting.interests", Reason: "too many interests specified"}
	}
	if len(c.Targeting.Location) > 50 {
		return &ValidationError{Field: "targeting.location", Reason: "too many locations specified"}
	}
	if c.Budget.Total <= 0 {
		return &ValidationError{Field: "budget.total", Reason: "budget must be positive"}
	}
	if c.Budget.Total > 1000000 {
		return &ValidationError{Field: "budget.total", Reason: "budget too large"}
	}
	if c.Budget.Duration < 1 {
		return &ValidationError{Field: "budget.duration", Reason: "duration must be positive"}
	}
	if c.Budget.Duration > 365 {
		return &ValidationError{Field: "budget.duration", Reason: "duration cannot exceed 365 days"}
	}
	for _, ch := range c.Channels.Preferred {
		if slices.Contains(c.Channels.Avoided, ch) {
			return &ValidationError{Field: "channels", Reason: "channel " + string(ch) + " is both preferred and avoided"}
		}
	}
	return nil
}
