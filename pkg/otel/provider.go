package otel

import (
	"context"
	"errors"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

// Setup routes the default slog logger through the OpenTelemetry log
// pipeline. The returned function flushes pending records.
func Setup(ctx context.Context, serviceName, serviceVersion string) (func(context.Context) error, error) {
	resource, err := sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewSchemaless(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)

	if err != nil && !errors.Is(err, sdkresource.ErrSchemaURLConflict) {
		return nil, err
	}

	provider, err := setupLogger(ctx, resource)

	if err != nil {
		return nil, err
	}

	return provider.Shutdown, nil
}

