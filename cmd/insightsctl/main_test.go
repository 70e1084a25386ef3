package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../internal/core/dataset/testdata/campaigns.csv"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--csv", fixture))
	err := cmd.Execute()
	return out.String(), err
}

func TestTopCommand(t *testing.T) {
	out, err := execute(t, "top", "-n", "2", "--value", "ROI")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "# 4 campaigns"))
	assert.Contains(t, lines[2], "Organic Push")
	assert.Contains(t, lines[2], "0.90")
	assert.Contains(t, lines[3], "Spring Mail")
}

func TestDescribeCommandWithFilter(t *testing.T) {
	out, err := execute(t, "describe", "revenue", "--channel", "email")
	require.NoError(t, err)

	assert.Contains(t, out, "# 2 campaigns")
	assert.Contains(t, out, "500.00")
}

func TestDescribeCommandEmptySelection(t *testing.T) {
	out, err := execute(t, "describe", "roi", "--channel=")
	require.NoError(t, err)

	assert.Contains(t, out, "# 0 campaigns")
	assert.Contains(t, out, "NaN")
}

func TestDomainsCommand(t *testing.T) {
	out, err := execute(t, "domains")
	require.NoError(t, err)

	assert.Contains(t, out, "5 records")
	assert.Contains(t, out, "email, organic, paid, Email")
	assert.Contains(t, out, "2023-01-10 .. 2023-12-01")
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	_, err := execute(t, "export", "--type", "seo", "-o", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "Organic Push,organic,seo"))
}

func TestExportCommandTitleConvention(t *testing.T) {
	out, err := execute(t, "export", "-o", "-", "--convention", "title", "--audience", "B2B", "--roi-min", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Campaign Name,Channel,Type,Target Audience"))
	assert.True(t, strings.HasPrefix(lines[1], "Spring Mail"))
}

func TestInvalidArguments(t *testing.T) {
	_, err := execute(t, "top", "--value", "channel")
	assert.Error(t, err)

	_, err = execute(t, "describe", "colour")
	assert.Error(t, err)

	_, err = execute(t, "top", "--date-from", "soon")
	assert.Error(t, err)
}

func TestSessionFinishLogsToSessionLogger(t *testing.T) {
	var logs bytes.Buffer
	s := &session{
		logger: slog.New(slog.NewTextHandler(&logs, nil)),
		close:  func() error { return errors.New("pool already closed") },
	}
	s.finish()

	assert.Contains(t, logs.String(), "closing dataset source")
	assert.Contains(t, logs.String(), "pool already closed")
}
