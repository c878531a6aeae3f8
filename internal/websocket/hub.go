package websocket

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	// ErrClientClosed is returned when attempting to send to a closed client
	ErrClientClosed = errors.New("client is closed")
	// ErrClientStalled is returned when a client's queue is full; the client is shut down
	ErrClientStalled = errors.New("client send queue is full")
)

// ClientInterface defines the interface that clients must implement
type ClientInterface interface {
	ID() string
	SessionID() string
	Send(data []byte) error
	Finish(final []byte, reason string) error
}

// Hub manages WebSocket connections organized by session
// It is safe for concurrent use
type Hub struct {
	// sessions maps session ID to a map of client ID to client
	sessions map[string]map[string]ClientInterface
	mu       sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]map[string]ClientInterface),
	}
}

// Register adds a client to the hub under its session
func (h *Hub) Register(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessionID := client.SessionID()
	clientID := client.ID()

	if h.sessions[sessionID] == nil {
		h.sessions[sessionID] = make(map[string]ClientInterface)
	}

	h.sessions[sessionID][clientID] = client

	log.Debug().
		Str("session_id", sessionID).
		Str("client_id", clientID).
		Msg("WebSocket client registered")
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessionID := client.SessionID()
	clientID := client.ID()

	if clients, ok := h.sessions[sessionID]; ok {
		if _, exists := clients[clientID]; exists {
			delete(clients, clientID)

			if len(clients) == 0 {
				delete(h.sessions, sessionID)
			}

			log.Debug().
				Str("session_id", sessionID).
				Str("client_id", clientID).
				Msg("WebSocket client unregistered")
		}
	}
}

// Broadcast sends an event to all clients attached to a session
func (h *Hub) Broadcast(sessionID string, event Event) {
	data, err := event.ToJSON()
	if err != nil {
		log.Error().
			Err(err).
			Str("session_id", sessionID).
			Str("event_type", event.Type).
			Msg("Failed to serialize event")
		return
	}

	clients := h.clients(sessionID)
	if len(clients) == 0 {
		return
	}

	for _, client := range clients {
		go func(c ClientInterface) {
			if err := c.Send(data); err != nil {
				log.Warn().
					Err(err).
					Str("session_id", sessionID).
					Str("client_id", c.ID()).
					Msg("Failed to send to client")
			}
		}(client)
	}

	log.Debug().
		Str("session_id", sessionID).
		Str("event_type", event.Type).
		Int("client_count", len(clients)).
		Msg("Broadcast event")
}

// CloseSession delivers a final event to every client of the session
// and disconnects them. Used on logout and when the backend rejects the token.
func (h *Hub) CloseSession(sessionID string, final Event) {
	h.mu.Lock()
	clients := h.sessions[sessionID]
	delete(h.sessions, sessionID)
	h.mu.Unlock()

	if len(clients) == 0 {
		return
	}

	data, err := final.ToJSON()
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to serialize event")
	}
	for _, client := range clients {
		_ = client.Finish(data, final.Type)
	}

	log.Debug().
		Str("session_id", sessionID).
		Str("event_type", final.Type).
		Int("client_count", len(clients)).
		Msg("Closed session clients")
}

// clients copies the session's clients so sends happen without the lock
func (h *Hub) clients(sessionID string) []ClientInterface {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients := h.sessions[sessionID]
	out := make([]ClientInterface, 0, len(clients))
	for _, client := range clients {
		out = append(out, client)
	}
	return out
}

// ClientCount returns the number of clients attached to a session
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.sessions[sessionID]; ok {
		return len(clients)
	}
	return 0
}

// TotalClientCount returns the total number of connected clients across all sessions
func (h *Hub) TotalClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, clients := range h.sessions {
		total += len(clients)
	}
	return total
}
