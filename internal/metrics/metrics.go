// Package metrics tracks per-tool usage counters and exports them via
// OpenTelemetry with a Prometheus reader, mirroring the usage-tracking
// requirement the proxy's call_tool path carries on every invocation.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Recorder records tool_success/tool_failure counters labelled by tool
// name, category, and (for failures) error kind.
type Recorder struct {
	provider *sdkmetric.MeterProvider
	success  metric.Int64Counter
	failure  metric.Int64Counter
}

// New builds a Recorder backed by a Prometheus exporter. New itself only
// sets up the counters and serves no /metrics endpoint; cmd/kodegend does
// not serve one either.
func New() (*Recorder, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("metrics: create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	meter := provider.Meter("github.com/kodegen/mcp-stdio-gateway/internal/proxy")

	success, err := meter.Int64Counter(
		"tool_success",
		metric.WithDescription("count of tool_call invocations that completed successfully"),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: create tool_success counter: %w", err)
	}

	failure, err := meter.Int64Counter(
		"tool_failure",
		metric.WithDescription("count of tool_call invocations that returned an error"),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: create tool_failure counter: %w", err)
	}

	return &Recorder{provider: provider, success: success, failure: failure}, nil
}

// RecordSuccess increments the success counter for a (tool, category) pair.
func (r *Recorder) RecordSuccess(ctx context.Context, tool, category string) {
	if r == nil {
		return
	}
	r.success.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("category", category),
	))
}

// RecordFailure increments the failure counter for a (tool, category, kind)
// triple.
func (r *Recorder) RecordFailure(ctx context.Context, tool, category, kind string) {
	if r == nil {
		return
	}
	r.failure.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("category", category),
		attribute.String("kind", kind),
	))
}

// Shutdown flushes and releases exporter resources.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
