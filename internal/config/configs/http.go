package configs

// HTTP defines configuration for the HTTP server. Port is the TCP port to
// bind; AllowedOrigins lists the dashboard origins permitted by CORS.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// AllowedOrigins is a comma separated list of origins allowed to call
	// the API from a browser.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}
