package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/dafibh/fortuna/ledger-gateway/internal/testutil"
	"github.com/dafibh/fortuna/ledger-gateway/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver is a test double for session resolution
type stubResolver struct {
	sess *session.Session
	err  error
}

func (s *stubResolver) Attach(ctx context.Context, token string) (*session.Session, error) {
	return s.sess, s.err
}

var testAllowedOrigins = []string{"http://localhost:3000", "https://ledger-gateway.app"}

func TestWebSocketHandler_HandleWS_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		resolveErr error
		wantStatus int
	}{
		{"missing token", "/api/v1/ws", nil, http.StatusUnauthorized},
		{"rejected token", "/api/v1/ws?token=bad", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"backend down", "/api/v1/ws?token=ok", &domain.APIError{Kind: domain.ErrorKindTransport, Err: errors.New("connection refused")}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := websocket.NewHub()
			h := NewWebSocketHandler(hub, &stubResolver{err: tt.resolveErr}, testAllowedOrigins)

			c, rec := newJSONContext(http.MethodGet, tt.target, "")
			require.NoError(t, h.HandleWS(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, 0, hub.TotalClientCount())
		})
	}
}

func TestWebSocketHandler_HandleWS_ValidToken_NoUpgrade(t *testing.T) {
	f := newHandlerFixture(t)
	sess := f.login(t)
	hub := websocket.NewHub()
	h := NewWebSocketHandler(hub, &stubResolver{sess: sess}, testAllowedOrigins)

	// Request with valid token but not a WebSocket upgrade request
	c, _ := newJSONContext(http.MethodGet, "/api/v1/ws?token=valid", "")

	// gorilla/websocket fails the upgrade without the upgrade headers
	assert.Error(t, h.HandleWS(c))
	assert.Equal(t, 0, hub.TotalClientCount())
}

func TestWebSocketHandler_CheckOrigin(t *testing.T) {
	h := NewWebSocketHandler(websocket.NewHub(), &stubResolver{}, testAllowedOrigins)

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"no origin", "", true},
		{"allowed origin", "http://localhost:3000", true},
		{"another allowed origin", "https://ledger-gateway.app", true},
		{"disallowed origin", "https://evil.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, h.checkOrigin(req))
		})
	}
}

func TestWebSocketHandler_ReceivesSessionEvents(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.AddUser(testEmail, testPassword, "")
	hub := websocket.NewHub()
	manager := session.NewManager(session.Options{BaseURL: fb.URL(), Timeout: 5 * time.Second, Publisher: hub})
	t.Cleanup(manager.Stop)

	sess, err := manager.Login(context.Background(), domain.Credentials{Username: testEmail, Password: testPassword})
	require.NoError(t, err)

	e := echo.New()
	e.GET("/api/v1/ws", NewWebSocketHandler(hub, manager, testAllowedOrigins).HandleWS)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws?token=" + sess.Token()
	conn, _, err := ws.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return hub.ClientCount(sess.ID) == 1 }, 2*time.Second, 10*time.Millisecond)

	// A store refresh is pushed to the session's clients
	sess.Categories.Fetch(context.Background())
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var refreshed websocket.Event
	require.NoError(t, conn.ReadJSON(&refreshed))
	assert.Equal(t, "categories.refreshed", refreshed.Type)

	// Logout sends the final event and disconnects
	require.NoError(t, manager.Logout(sess.ID))
	var closed websocket.Event
	require.NoError(t, conn.ReadJSON(&closed))
	assert.Equal(t, "session.closed", closed.Type)
	assert.Equal(t, 0, hub.ClientCount(sess.ID))

	_, _, err = conn.ReadMessage()
	assert.True(t, ws.IsCloseError(err, ws.CloseNormalClosure), "expected a normal closure, got %v", err)
}
