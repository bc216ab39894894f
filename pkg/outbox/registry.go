package outbox

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
)

type decoderFunc func(payload json.RawMessage) (interface{}, error)

type registryKey struct {
	eventType enums.OutboxEventType
	version   int
}

type DecoderRegistry struct {
	mtx      sync.RWMutex
	registry map[registryKey]decoderFunc
}

func NewDecoderRegistry() *DecoderRegistry {
	return &DecoderRegistry{registry: make(map[registryKey]decoderFunc)}
}

// NewCatalogueRegistry returns a registry that knows every catalogue event at
// version 1.
func NewCatalogueRegistry() *DecoderRegistry {
	r := NewDecoderRegistry()
	r.Register(enums.EventItemCreated, 1, decodeAs[ItemCreatedEvent])
	r.Register(enums.EventCandidatePromoted, 1, decodeAs[CandidatePromotedEvent])
	r.Register(enums.EventLotAssigned, 1, decodeAs[LotAssignedEvent])
	r.Register(enums.EventItemDeleted, 1, decodeAs[ItemDeletedEvent])
	r.Register(enums.EventProjectClosed, 1, decodeAs[ProjectClosedEvent])
	r.Register(enums.EventProjectDeleted, 1, decodeAs[ProjectDeletedEvent])
	return r
}

func (r *DecoderRegistry) Register(eventType enums.OutboxEventType, version int, decoder decoderFunc) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.registry[registryKey{eventType: eventType, version: version}] = decoder
}

func (r *DecoderRegistry) Decode(eventType enums.OutboxEventType, version int, payload json.RawMessage) (interface{}, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	if decoder, ok := r.registry[registryKey{eventType: eventType, version: version}]; ok {
		return decoder(payload)
	}
	return nil, fmt.Errorf("decoder not registered for %s@v%d", eventType, version)
}

// DecodeEnvelope unwraps a stored outbox payload and decodes its data. An
// envelope whose own event type disagrees with the row is rejected.
func (r *DecoderRegistry) DecodeEnvelope(eventType enums.OutboxEventType, raw json.RawMessage) (PayloadEnvelope, interface{}, error) {
	var env PayloadEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return PayloadEnvelope{}, nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.EventType != "" && env.EventType != eventType {
		return env, nil, fmt.Errorf("envelope event type %s does not match row type %s", env.EventType, eventType)
	}
	data, err := r.Decode(eventType, env.Version, env.Data)
	if err != nil {
		return env, nil, err
	}
	return env, data, nil
}

func decodeAs[T any](payload json.RawMessage) (interface{}, error) {
	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}
