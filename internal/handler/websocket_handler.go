package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/middleware"
	"github.com/dafibh/fortuna/ledger-gateway/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler handles WebSocket connections
type WebSocketHandler struct {
	hub            *websocket.Hub
	resolver       middleware.SessionResolver
	allowedOrigins map[string]bool
	upgrader       ws.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(hub *websocket.Hub, resolver middleware.SessionResolver, allowedOrigins []string) *WebSocketHandler {
	// Build origin lookup map
	originMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originMap[origin] = true
	}

	h := &WebSocketHandler{
		hub:            hub,
		resolver:       resolver,
		allowedOrigins: originMap,
	}

	h.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h
}

// checkOrigin validates the request origin against allowed origins
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// Non-browser clients send no Origin
		return true
	}

	if h.allowedOrigins[origin] {
		return true
	}

	log.Warn().
		Str("origin", origin).
		Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// HandleWS godoc
// @Summary Open the notification socket
// @Description Upgrade to a WebSocket that receives the session's store events
// @Tags session
// @Param token query string true "Access token"
// @Success 101
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /ws [get]
func (h *WebSocketHandler) HandleWS(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		log.Debug().Msg("WebSocket connection rejected: missing token")
		return NewUnauthorizedError(c, "missing token")
	}

	sess, err := h.resolver.Attach(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			log.Debug().Err(err).Msg("WebSocket connection rejected: invalid token")
			return NewUnauthorizedError(c, "invalid token")
		}
		log.Error().Err(err).Msg("WebSocket connection rejected: session unavailable")
		return NewBadGatewayError(c, "Could not reach the accounting backend")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return err
	}

	client := websocket.NewClient(conn, sess.ID, h.hub)
	h.hub.Register(client)

	log.Info().
		Str("session_id", sess.ID).
		Str("client_id", client.ID()).
		Msg("WebSocket client connected")

	go client.WritePump()
	go client.ReadPump()

	return nil
}
