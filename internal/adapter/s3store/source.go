package s3store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
)

// ObjectGetter is the subset of the S3 client used by Source.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Source implements port.DatasetSource for a CSV object stored in S3.
type Source struct {
	client ObjectGetter
	bucket string
	key    string
	opts   dataset.Options
}

// NewSource returns a source reading s3://bucket/key with client.
func NewSource(client ObjectGetter, bucket, key string, opts dataset.Options) *Source {
	return &Source{client: client, bucket: bucket, key: key, opts: opts}
}

// NewClient builds an S3 client from the default credential chain. profile
// selects a shared config profile when non-empty.
func NewClient(ctx context.Context, region, profile string) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// Load downloads the object and parses it.
func (s *Source) Load(ctx context.Context) (*dataset.Dataset, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, &domain.DataLoadError{Source: s.String(), Err: fmt.Errorf("getting object: %w", err)}
	}
	defer out.Body.Close()
	return dataset.Parse(out.Body, s.String(), s.opts)
}

func (s *Source) String() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}
