package configs

import "time"

// Source kinds accepted by Dataset.Source.
const (
	SourceFile     = "file"
	SourceS3       = "s3"
	SourcePostgres = "postgres"
)

// Dataset selects where campaign records are loaded from and how long a
// loaded snapshot is reused.
type Dataset struct {
	// Source is one of "file", "s3" or "postgres".
	Source string `env:"SOURCE" envDefault:"file"`
	// Path is the CSV file read by the file source.
	Path string `env:"PATH" envDefault:"data/processed/marketingcampaigns_clean.csv"`
	// TTL is how long a snapshot is served before reloading. Zero keeps it
	// until an explicit reload.
	TTL time.Duration `env:"TTL" envDefault:"10m"`
	// VariantFile is an optional YAML variant profile.
	VariantFile string `env:"VARIANT_FILE"`
	// Convention is the export header spelling when no profile is given.
	Convention string `env:"CONVENTION" envDefault:"snake"`
	// Locale is the BCP 47 tag used to format summary text.
	Locale string `env:"LOCALE" envDefault:"en"`
}
