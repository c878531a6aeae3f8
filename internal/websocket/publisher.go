package websocket

// EventPublisher defines the interface for publishing events to WebSocket clients
type EventPublisher interface {
	// Publish sends an event to all clients attached to the specified session
	Publish(sessionID string, event Event)
	// CloseSession sends a final event and disconnects the session's clients
	CloseSession(sessionID string, final Event)
}

// Ensure Hub implements EventPublisher
var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting the event to the session
func (h *Hub) Publish(sessionID string, event Event) {
	h.Broadcast(sessionID, event)
}

// NoOpPublisher is a publisher that does nothing (for testing or when WebSocket is disabled)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(sessionID string, event Event) {}

// CloseSession does nothing
func (n *NoOpPublisher) CloseSession(sessionID string, final Event) {}
