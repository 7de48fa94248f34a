package otel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogProtocol(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "GRPC")
	t.Setenv("OTEL_EXPORTER_OTLP_LOGS_PROTOCOL", "")
	require.Equal(t, "grpc", logProtocol())

	t.Setenv("OTEL_EXPORTER_OTLP_LOGS_PROTOCOL", "http/protobuf")
	require.Equal(t, "http/protobuf", logProtocol())
}
