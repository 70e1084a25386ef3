package config

import (
	"github.com/caarlos0/env/v11"

	"campaign-insights/internal/config/configs"
)

// Config is the environment driven configuration shared by the server and
// insightsctl. Each section reads the variables under its envPrefix; the
// configs package documents defaults.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the dashboard API listener.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Dataset selects the record source and snapshot lifetime.
	Dataset configs.Dataset `envPrefix:"DATASET_"`

	// S3 is read when Dataset.Source is "s3".
	S3 configs.S3 `envPrefix:"S3_"`

	// Redis configures the shared snapshot cache.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Psql is read when Dataset.Source is "postgres".
	Psql configs.Postgres `envPrefix:"PSQL_"`
}

// Load parses the environment into a Config, applying defaults for unset
// variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
