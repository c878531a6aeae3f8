package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionCounter reports how many sessions are open
type SessionCounter interface {
	Count() int
}

// HealthHandler answers liveness checks
type HealthHandler struct {
	sessions SessionCounter
	hub      ClientCounter
}

// ClientCounter reports how many WebSocket clients are connected
type ClientCounter interface {
	TotalClientCount() int
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(sessions SessionCounter, hub ClientCounter) *HealthHandler {
	return &HealthHandler{sessions: sessions, hub: hub}
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
	Clients  int    `json:"clients"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Sessions: h.sessions.Count(),
		Clients:  h.hub.TotalClientCount(),
	})
}
