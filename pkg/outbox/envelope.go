package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
)

const currentVersion = 1

// PayloadEnvelope is what outbox_events.payload holds and what subscribers of
// the catalogue topic receive. EventType and AggregateID repeat the row
// columns so a message can be routed without its Pub/Sub attributes.
type PayloadEnvelope struct {
	Version     int                       `json:"version"`
	EventID     string                    `json:"eventId"`
	EventType   enums.OutboxEventType     `json:"eventType,omitempty"`
	Aggregate   enums.OutboxAggregateType `json:"aggregateType,omitempty"`
	AggregateID string                    `json:"aggregateId,omitempty"`
	OccurredAt  time.Time                 `json:"occurredAt"`
	Source      string                    `json:"source,omitempty"`
	Data        json.RawMessage           `json:"data"`
}

func newEnvelope(event DomainEvent, data json.RawMessage) PayloadEnvelope {
	occurred := event.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}
	version := event.Version
	if version == 0 {
		version = currentVersion
	}
	env := PayloadEnvelope{
		Version:    version,
		EventID:    uuid.NewString(),
		EventType:  event.EventType,
		Aggregate:  event.AggregateType,
		OccurredAt: occurred,
		Source:     event.Source,
		Data:       data,
	}
	if event.AggregateID != uuid.Nil {
		env.AggregateID = event.AggregateID.String()
	}
	return env
}
