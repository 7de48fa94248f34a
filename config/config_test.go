package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseData(t *testing.T) {
	t.Setenv("BUCKET_NAME", "documents")

	file, err := parseData([]byte(`
summarizer:
  type: bedrock
  region: us-east-1
  timeout: 5m
  max_tokens: 1024
  limit: 5

storage:
  bucket: ${BUCKET_NAME}
  url: http://localhost:4566

exporter:
  chrome: /usr/bin/chromium
  sandbox: false

document:
  attribution: Generated by the team

broker:
  role: arn:aws:iam::123456789012:role/transcribe
  duration: 15m

pipeline:
  concurrency: 4
`))

	require.NoError(t, err)

	require.Equal(t, "bedrock", file.Summarizer.Type)
	require.Equal(t, 5*time.Minute, file.Summarizer.Timeout)
	require.Equal(t, 1024, file.Summarizer.MaxTokens)
	require.Equal(t, 5, *file.Summarizer.Limit)

	require.Equal(t, "documents", file.Storage.Bucket)
	require.Equal(t, "http://localhost:4566", file.Storage.URL)

	require.False(t, *file.Exporter.Sandbox)
	require.Equal(t, "Generated by the team", file.Document.Attribution)

	require.NotNil(t, file.Broker)
	require.Equal(t, 15*time.Minute, file.Broker.Duration)

	require.Equal(t, 4, file.Pipeline.Concurrency)
}

func TestParseDataUnknownField(t *testing.T) {
	_, err := parseData([]byte(`
storage:
  bucket: documents
  buckets: typo
`))

	require.Error(t, err)
}

func TestParseDataEmpty(t *testing.T) {
	_, err := parseData(nil)
	require.Error(t, err)
}

func TestCreateSummarizerInvalidType(t *testing.T) {
	_, err := createSummarizer(summarizerConfig{Type: "unknown"})
	require.ErrorContains(t, err, "invalid summarizer type")
}

func TestCreateStorageRequiresBucket(t *testing.T) {
	_, err := createStorage(storageConfig{})
	require.Error(t, err)
}

func TestCreateLimiter(t *testing.T) {
	require.Nil(t, createLimiter(nil))

	limit := 3
	l := createLimiter(&limit)

	require.NotNil(t, l)
	require.Equal(t, 3, l.Burst())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/etc/briefing/config.yaml")
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("DEBUG", "true")

	e, err := LoadEnvironment()
	require.NoError(t, err)

	require.Equal(t, "/etc/briefing/config.yaml", e.ConfigFile)
	require.Equal(t, ":9090", e.Address)
	require.True(t, e.Debug)
	require.Equal(t, "briefing", e.ServiceName)
}
