package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-insights/internal/core/dataset"
	"campaign-insights/internal/core/domain"
)

func TestSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.csv")
	body := "Campaign Name,Channel,Type,Target Audience,Start Date,End Date,Budget,Revenue,Net Profit,ROI,Conversion Rate\n" +
		"Podcast Run,podcast,awareness,B2C,2023-05-01,2023-05-31,400,800,400,1,0.05\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	src := NewSource(path, dataset.Options{Convention: domain.ConventionTitle})
	assert.Equal(t, "file://"+path, src.String())

	d, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, domain.ConventionTitle, d.Convention())
	assert.Equal(t, path, d.Source())
}

func TestSourceLoadMissing(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "missing.csv"), dataset.Options{})
	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataLoad)
}
