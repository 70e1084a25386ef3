package configs

// S3 locates the CSV object read by the s3 dataset source.
type S3 struct {
	Bucket  string `env:"BUCKET"`
	Key     string `env:"KEY"`
	Region  string `env:"REGION" envDefault:"us-east-1"`
	Profile string `env:"PROFILE"`
}
