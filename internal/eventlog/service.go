package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/veylan/EmberArmory_Go/internal/event"
	"github.com/veylan/EmberArmory_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all economy events
	Subscribe(bus event.Bus) error

	// GetEvents retrieves events based on filter criteria
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// GetEventsByAddress retrieves events for a specific address
	GetEventsByAddress(ctx context.Context, address string, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.TypeUserRegistered,
		event.TypeUserTierUp,
		event.TypeItemPurchased,
		event.TypeFundsReceived,
		event.TypeGasDistributed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent persists an event to the database. Typed payloads are flattened
// to a map via JSON so the log stays queryable without knowing every shape.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(evt.Payload)
	if err != nil {
		log.Error("Failed to marshal event payload", "error", err, "type", evt.Type)
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Debug("Event payload is not an object, skipping log", "type", evt.Type)
		return nil
	}
	payload["version"] = evt.Version

	var address *string
	if addr := event.AddressOf(evt); addr != "" {
		address = &addr
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), address, payload); err != nil {
		log.Error("Failed to log event to database", "error", err, "type", evt.Type)
		return err
	}

	log.Debug("Event logged to database", "type", evt.Type)
	return nil
}

// GetEvents retrieves events based on filter criteria
func (s *service) GetEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultQueryLimit
	}
	return s.repo.GetEvents(ctx, filter)
}

// GetEventsByAddress retrieves events for a specific address
func (s *service) GetEventsByAddress(ctx context.Context, address string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultQueryLimit
	}
	return s.repo.GetEventsByAddress(ctx, address, limit)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
