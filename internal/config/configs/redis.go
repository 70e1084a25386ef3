package configs

import "time"

// Redis configures the optional shared snapshot cache. When Enabled, loaded
// datasets are stored under Key for TTL so other processes skip the source.
type Redis struct {
	Enabled  bool          `env:"ENABLED" envDefault:"false"`
	Addr     string        `env:"ADDR" envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	Key      string        `env:"KEY" envDefault:"campaign-insights:dataset"`
	TTL      time.Duration `env:"TTL" envDefault:"15m"`
}
