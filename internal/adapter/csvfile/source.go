package csvfile

import (
	"context"

	"campaign-insights/internal/core/dataset"
)

// Source implements port.DatasetSource for a comma separated file on the
// local filesystem.
type Source struct {
	path string
	opts dataset.Options
}

// NewSource returns a source reading path.
func NewSource(path string, opts dataset.Options) *Source {
	return &Source{path: path, opts: opts}
}

// Load reads and parses the file. The context is not consulted; the read is
// a single bounded local operation.
func (s *Source) Load(_ context.Context) (*dataset.Dataset, error) {
	return dataset.Load(s.path, s.opts)
}

func (s *Source) String() string { return "file://" + s.path }
