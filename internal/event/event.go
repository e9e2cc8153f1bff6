package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
)

// Type names an event stream, e.g. "wheel.spin_completed"
type Type string

// Wheel event types
const (
	WheelSpinCompleted Type = domain.EventTypeWheelSpinCompleted
	WheelConfigUpdated Type = domain.EventTypeWheelConfigUpdated
)

// Metadata keys
const (
	MetaHouseholdID = "household_id"
	MetaOccurredAt  = "occurred_at"
)

// Event is one message on the bus. Payload is a domain payload struct when
// published in-process; DecodePayload also accepts its JSON map form.
type Event struct {
	Version  string         `json:"version"`
	Type     Type           `json:"type"`
	Payload  any            `json:"payload"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// HouseholdID returns the household the event concerns, if recorded
func (e Event) HouseholdID() string {
	id, _ := e.Metadata[MetaHouseholdID].(string)
	return id
}

func newEvent(t Type, householdID string, at time.Time, payload any) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
		Metadata: map[string]any{
			MetaHouseholdID: householdID,
			MetaOccurredAt:  at.Unix(),
		},
	}
}

// NewWheelSpinCompletedEvent describes a committed spin
func NewWheelSpinCompletedEvent(record domain.SpinRecord, remaining int) Event {
	return newEvent(WheelSpinCompleted, record.HouseholdID, record.SpunAt, domain.WheelSpinCompletedPayload{
		UserID:         record.UserID,
		HouseholdID:    record.HouseholdID,
		TaskID:         record.TaskID,
		RewardType:     record.RewardType,
		RewardValue:    record.RewardValue,
		RemainingSpins: remaining,
		SpunAt:         record.SpunAt,
	})
}

// NewWheelConfigUpdatedEvent describes an admin change. change is one of the
// ChangeXxx values used as a metrics label.
func NewWheelConfigUpdatedEvent(householdID, updatedBy, change string) Event {
	return newEvent(WheelConfigUpdated, householdID, time.Now(), domain.WheelConfigUpdatedPayload{
		HouseholdID: householdID,
		UpdatedBy:   updatedBy,
		Change:      change,
	})
}

// Handler consumes one event
type Handler func(ctx context.Context, event Event) error

// Bus delivers events to subscribers
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus runs subscribers synchronously on the publishing goroutine
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewMemoryBus creates an empty bus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish calls every handler for the event type, even after one fails, and
// joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(ErrFmtHandlersFailed, len(errs), event.Type, errors.Join(errs...))
}

// Subscribe adds handler for eventType
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
