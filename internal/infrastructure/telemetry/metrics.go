package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bibbank/loancalc/internal/domain/port"
)

const meterName = "github.com/bibbank/loancalc"

// Metrics implements port.Metrics with OpenTelemetry instruments. Exported
// through Prometheus they appear as loancalc_operations_total,
// loancalc_operation_duration_seconds and loancalc_validation_failures_total.
type Metrics struct {
	operations metric.Int64Counter
	duration   metric.Float64Histogram
	validation metric.Int64Counter
}

var _ port.Metrics = (*Metrics)(nil)

// NewMetrics creates the instruments on a meter from provider.
func NewMetrics(provider metric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter(meterName)

	operations, err := meter.Int64Counter("loancalc.operations",
		metric.WithDescription("Engine operations by outcome."))
	if err != nil {
		return nil, fmt.Errorf("operations counter: %w", err)
	}
	duration, err := meter.Float64Histogram("loancalc.operation.duration",
		metric.WithDescription("Engine operation latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1))
	if err != nil {
		return nil, fmt.Errorf("duration histogram: %w", err)
	}
	validation, err := meter.Int64Counter("loancalc.validation.failures",
		metric.WithDescription("Rejected requests by error code."))
	if err != nil {
		return nil, fmt.Errorf("validation counter: %w", err)
	}

	return &Metrics{operations: operations, duration: duration, validation: validation}, nil
}

// RecordOperation counts one operation and observes its latency.
func (m *Metrics) RecordOperation(ctx context.Context, operation string, outcome port.Outcome, elapsed time.Duration) {
	op := attribute.String("operation", operation)
	m.operations.Add(ctx, 1, metric.WithAttributes(op, attribute.String("outcome", string(outcome))))
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(op))
}

// RecordValidationFailure counts one rejected request.
func (m *Metrics) RecordValidationFailure(ctx context.Context, operation, code string) {
	m.validation.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("code", code),
	))
}
