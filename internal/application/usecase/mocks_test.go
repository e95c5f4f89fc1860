package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/bibbank/loancalc/internal/domain/event"
	"github.com/bibbank/loancalc/internal/domain/port"
)

// --- Mock implementations ---

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, evts ...event.Event) error
	publishedEvents []event.Event
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.Event) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type operationRecord struct {
	operation string
	outcome   port.Outcome
}

type mockMetrics struct {
	mu         sync.Mutex
	operations []operationRecord
	failures   []string
}

func (m *mockMetrics) RecordOperation(_ context.Context, operation string, outcome port.Outcome, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operations = append(m.operations, operationRecord{operation: operation, outcome: outcome})
}

func (m *mockMetrics) RecordValidationFailure(_ context.Context, _ string, code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, code)
}
