package configs

import "time"

// Redis configures the optional results cache. An empty Addr disables
// caching; reads then always hit the repository.
type Redis struct {
	// Addr is the host:port of the Redis server, e.g. localhost:6379.
	Addr string `env:"ADDRESS"`
	// Password is optional.
	Password string `env:"PASSWORD"`
	// DB selects the Redis logical database.
	DB int `env:"DB" envDefault:"0"`
	// TTL bounds how long cached results bundles live. Zero keeps them
	// until invalidated.
	TTL time.Duration `env:"TTL" envDefault:"24h"`
}

// Enabled reports whether a cache server is configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
