package metrics

import (
	"context"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/event"
	"github.com/osse101/ChoreWheel_Go/internal/logger"
)

// EventMetricsCollector subscribes to wheel events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to the wheel event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.WheelSpinCompleted,
		event.WheelConfigUpdated,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.WheelSpinCompleted:
		payload, err := event.DecodePayload[domain.WheelSpinCompletedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		WheelSpins.WithLabelValues(string(payload.RewardType)).Inc()
		switch payload.RewardType {
		case domain.RewardPoints, domain.RewardDoublePoints:
			WheelPointsAwarded.Add(float64(payload.RewardValue.Points))
		}

	case event.WheelConfigUpdated:
		payload, err := event.DecodePayload[domain.WheelConfigUpdatedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		WheelConfigUpdates.WithLabelValues(payload.Change).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordSpinRejection counts a refused spin by reason
func RecordSpinRejection(reason string) {
	WheelSpinRejections.WithLabelValues(reason).Inc()
}
