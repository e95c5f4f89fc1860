package port

import (
	"context"
	"time"

	"github.com/bibbank/loancalc/internal/domain/event"
)

// EventPublisher announces domain events to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.Event) error
}

// Outcome labels the result of one operation for metrics.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeInvalid Outcome = "invalid"
	OutcomeError   Outcome = "error"
)

// Metrics records operation counts and latencies.
type Metrics interface {
	RecordOperation(ctx context.Context, operation string, outcome Outcome, elapsed time.Duration)
	RecordValidationFailure(ctx context.Context, operation, code string)
}
