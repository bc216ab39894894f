package enums

import "fmt"

// OutboxAggregateType names the entity an outbox event is about.
type OutboxAggregateType string

const (
	AggregateProject       OutboxAggregateType = "project"
	AggregateCandidate     OutboxAggregateType = "catalogue_candidate"
	AggregateConfirmedItem OutboxAggregateType = "confirmed_item"
)

var validAggregateTypes = []OutboxAggregateType{
	AggregateProject,
	AggregateCandidate,
	AggregateConfirmedItem,
}

// IsValid reports whether the value matches a known aggregate type.
func (a OutboxAggregateType) IsValid() bool {
	for _, candidate := range validAggregateTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseOutboxAggregateType converts raw input into OutboxAggregateType.
func ParseOutboxAggregateType(value string) (OutboxAggregateType, error) {
	for _, candidate := range validAggregateTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid aggregate type %q", value)
}

// OutboxEventType names a catalogue domain event.
type OutboxEventType string

const (
	EventItemCreated       OutboxEventType = "item_created"
	EventCandidatePromoted OutboxEventType = "candidate_promoted"
	EventLotAssigned       OutboxEventType = "lot_assigned"
	EventItemDeleted       OutboxEventType = "item_deleted"
	EventProjectClosed     OutboxEventType = "project_closed"
	EventProjectDeleted    OutboxEventType = "project_deleted"
)

var validOutboxEventTypes = []OutboxEventType{
	EventItemCreated,
	EventCandidatePromoted,
	EventLotAssigned,
	EventItemDeleted,
	EventProjectClosed,
	EventProjectDeleted,
}

// IsValid reports whether the value matches a known event type.
func (e OutboxEventType) IsValid() bool {
	for _, candidate := range validOutboxEventTypes {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseOutboxEventType converts raw input into OutboxEventType.
func ParseOutboxEventType(value string) (OutboxEventType, error) {
	for _, candidate := range validOutboxEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid event type %q", value)
}
