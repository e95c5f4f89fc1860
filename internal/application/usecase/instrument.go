package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bibbank/loancalc/internal/domain/event"
	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/internal/domain/port"
)

const instrumentationName = "github.com/bibbank/loancalc/internal/application/usecase"

// Operation names used for spans, metrics and logs.
const (
	OpCalculateLoan    = "CalculateLoan"
	OpCalculatePenalty = "CalculatePenalty"
	OpQuoteSettlement  = "QuoteSettlement"
)

func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// observe closes out one use case run: it records the outcome metric, marks
// the span and logs validation failures.
func observe(ctx context.Context, span trace.Span, metrics port.Metrics, op string, start time.Time, err error) {
	elapsed := time.Since(start)

	var vErr *model.ValidationError
	switch {
	case err == nil:
		metrics.RecordOperation(ctx, op, port.OutcomeSuccess, elapsed)
		slog.DebugContext(ctx, "operation completed", "operation", op, "duration", elapsed)
	case errors.As(err, &vErr):
		metrics.RecordOperation(ctx, op, port.OutcomeInvalid, elapsed)
		metrics.RecordValidationFailure(ctx, op, string(vErr.Code))
		span.SetStatus(codes.Error, vErr.Error())
		slog.WarnContext(ctx, "request rejected",
			"operation", op, "code", vErr.Code, "field", vErr.Field, "reason", vErr.Message)
	default:
		metrics.RecordOperation(ctx, op, port.OutcomeError, elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "operation failed", "operation", op, "error", err)
	}
}

// publish hands events to the publisher. Failures are logged and swallowed:
// a calculation response never depends on event delivery.
func publish(ctx context.Context, publisher port.EventPublisher, evts ...event.Event) {
	if err := publisher.Publish(ctx, evts...); err != nil {
		slog.WarnContext(ctx, "event publish failed", "events", len(evts), "error", err)
	}
}
