package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is a fact announced to other systems.
type Event interface {
	EventID() string
	EventType() string
	SubjectID() string
	OccurredAt() time.Time
}

// BaseEvent provides a default implementation of Event. Embed it in concrete
// events; its fields are carried by the envelope, not the event payload.
type BaseEvent struct {
	id         string
	eventType  string
	subjectID  string
	occurredAt time.Time
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType, subjectID string) BaseEvent {
	return BaseEvent{
		id:         uuid.NewString(),
		eventType:  eventType,
		subjectID:  subjectID,
		occurredAt: time.Now().UTC(),
	}
}

// EventID returns the unique identifier for this event.
func (e BaseEvent) EventID() string { return e.id }

// EventType returns the type name of this event.
func (e BaseEvent) EventType() string { return e.eventType }

// SubjectID returns the identifier of the thing the event is about.
func (e BaseEvent) SubjectID() string { return e.subjectID }

// OccurredAt returns the time at which this event occurred.
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }

// Envelope is the wire form of an event.
type Envelope struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	SubjectID  string          `json:"subjectId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

// Marshal wraps e in an Envelope and encodes it as JSON. The event value
// itself becomes the envelope data.
func Marshal(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", e.EventType(), err)
	}
	return json.Marshal(Envelope{
		ID:         e.EventID(),
		Type:       e.EventType(),
		SubjectID:  e.SubjectID(),
		OccurredAt: e.OccurredAt(),
		Data:       data,
	})
}
