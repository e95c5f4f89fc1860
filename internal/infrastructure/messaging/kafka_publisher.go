package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sony/gobreaker"

	"github.com/bibbank/loancalc/internal/domain/event"
	"github.com/bibbank/loancalc/internal/domain/port"
	"github.com/bibbank/loancalc/pkg/events"
	pkgkafka "github.com/bibbank/loancalc/pkg/kafka"
)

// ErrPublisherUnavailable is returned while the circuit breaker is open.
var ErrPublisherUnavailable = errors.New("event publisher unavailable")

// MessageProducer is the slice of pkg/kafka.Producer the publisher needs.
type MessageProducer interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

// KafkaEventPublisher implements port.EventPublisher by writing enveloped
// events to one Kafka topic, keyed by event subject.
type KafkaEventPublisher struct {
	producer MessageProducer
	topic    string
	breaker  *gobreaker.CircuitBreaker
	logger   *slog.Logger
}

var _ port.EventPublisher = (*KafkaEventPublisher)(nil)

// NewKafkaEventPublisher creates a publisher targeting the given producer and topic.
func NewKafkaEventPublisher(producer MessageProducer, topic string, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: producer,
		topic:    topic,
		breaker:  newCircuitBreaker("kafka:"+topic, logger),
		logger:   logger,
	}
}

// Publish serialises and sends events to Kafka.
func (p *KafkaEventPublisher) Publish(ctx context.Context, evts ...event.Event) error {
	messages := make([]pkgkafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := events.Marshal(evt)
		if err != nil {
			return err
		}

		p.logger.DebugContext(ctx, "publishing event",
			"event_type", evt.EventType(),
			"subject_id", evt.SubjectID(),
			"topic", p.topic,
			"payload_size", len(payload),
		)

		messages = append(messages, pkgkafka.Message{
			Key:   []byte(evt.SubjectID()),
			Value: payload,
			Headers: map[string]string{
				"event_type":   evt.EventType(),
				"event_id":     evt.EventID(),
				"content-type": "application/json",
			},
		})
	}

	if len(messages) == 0 {
		return nil
	}

	_, err := p.breaker.Execute(func() (any, error) {
		return nil, p.producer.Publish(ctx, p.topic, messages...)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %v", ErrPublisherUnavailable, err)
	case err != nil:
		return fmt.Errorf("publish events to topic %s: %w", p.topic, err)
	}
	return nil
}

// NoopPublisher discards events. It stands in when no broker is configured.
type NoopPublisher struct{}

var _ port.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, ...event.Event) error { return nil }
