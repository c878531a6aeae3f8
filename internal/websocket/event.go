package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to the entity
type EventType string

const (
	EventTypeRefreshed EventType = "refreshed"
	EventTypeExpired   EventType = "expired"
	EventTypeClosed    EventType = "closed"
)

// EntityType represents the type of entity the event is about.
// Store entities are named after the store that changed.
type EntityType string

const (
	EntityTypeAccounts      EntityType = "accounts"
	EntityTypeTransactions  EntityType = "transactions"
	EntityTypeBudgets       EntityType = "budgets"
	EntityTypeCategories    EntityType = "categories"
	EntityTypeExchangeRates EntityType = "exchange_rates"
	EntityTypeSession       EntityType = "session"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "budgets.refreshed"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "budgets"
	Payload   interface{} `json:"payload"`   // Event data, may be nil
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// StoreRefreshed creates a <store>.refreshed event. Clients re-read the
// store over HTTP; the payload only carries the store's status.
func StoreRefreshed(storeName string, payload interface{}) Event {
	return NewEvent(EventTypeRefreshed, EntityType(storeName), payload)
}

// SessionExpired creates a session.expired event
func SessionExpired() Event {
	return NewEvent(EventTypeExpired, EntityTypeSession, nil)
}

// SessionClosed creates a session.closed event
func SessionClosed() Event {
	return NewEvent(EventTypeClosed, EntityTypeSession, nil)
}
