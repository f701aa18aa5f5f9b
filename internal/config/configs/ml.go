package configs

import "time"

// ML configures the client for the external ML scoring/optimization
// service. An empty BaseURL disables the remote path entirely and every
// request is served by the rule-based engines.
type ML struct {
	// BaseURL is the root of the ML service, e.g. http://localhost:8000.
	BaseURL string `env:"BASE_URL"`
	// Timeout bounds every request to the service, including the health
	// probe. Keep it short so a dead service does not stall callers
	// before the local fallback kicks in.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"2s"`
	// RetryAttempts is the number of tries for scoring and optimization
	// calls. Server errors are retried, client errors are not.
	RetryAttempts int `env:"RETRY_ATTEMPTS" envDefault:"3"`
}

// Enabled reports whether a remote ML service is configured.
func (c ML) Enabled() bool {
	return c.BaseURL != ""
}
