package metrics

import (
	"context"
	"strconv"

	"github.com/veylan/EmberArmory_Go/internal/event"
	"github.com/veylan/EmberArmory_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all economy events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.TypeUserRegistered,
		event.TypeUserTierUp,
		event.TypeItemPurchased,
		event.TypeFundsReceived,
		event.TypeGasDistributed,
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

	switch p := evt.Payload.(type) {
	case event.UserRegisteredPayloadV1:
		UsersRegistered.Inc()

	case event.UserTierUpPayloadV1:
		RankUpgrades.WithLabelValues(strconv.Itoa(p.NewRank)).Inc()
		EmbersMinted.Add(float64(p.Reward))

	case event.ItemPurchasedPayloadV1:
		ItemsPurchased.WithLabelValues(
			strconv.Itoa(p.ItemID),
			strconv.Itoa(p.Tier),
		).Inc()
		EmbersSpent.Add(float64(p.Cost))

	case event.FundsReceivedPayloadV1:
		GasDeposited.Add(float64(p.Amount))

	case event.GasDistributedPayloadV1:
		GasDistributed.Add(float64(p.Amount))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
