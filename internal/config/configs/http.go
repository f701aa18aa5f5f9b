package configs

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. AllowedOrigins feeds the CORS
// middleware; the results dashboard is a browser application served
// from a different origin.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// AllowedOrigins lists the origins permitted by CORS. Defaults to
	// any origin, which suits local development.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}
