package metrics

import (
	"context"
	"strconv"

	"github.com/ufoaiorg/ufoai-sub020/internal/event"
	"github.com/ufoaiorg/ufoai-sub020/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.ItemMoved,
		event.LoadoutGenerated,
		event.InventoryReleased,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ItemMoved:
		var p event.ItemMovedPayloadV1
		if p, err = event.DecodePayload[event.ItemMovedPayloadV1](evt.Payload); err == nil {
			ItemMoves.WithLabelValues(p.Outcome).Inc()
			TUSpent.Add(float64(p.TUSpent))
		}
	case event.LoadoutGenerated:
		var p event.LoadoutGeneratedPayloadV1
		if p, err = event.DecodePayload[event.LoadoutGeneratedPayloadV1](evt.Payload); err == nil {
			LoadoutsGenerated.WithLabelValues(p.Team, strconv.FormatBool(p.Armed)).Inc()
			LoadoutItemsPacked.Observe(float64(len(p.Items)))
		}
	case event.InventoryReleased:
		var p event.InventoryReleasedPayloadV1
		if p, err = event.DecodePayload[event.InventoryReleasedPayloadV1](evt.Payload); err == nil {
			NodesReleased.Add(float64(p.Freed))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
