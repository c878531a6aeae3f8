package websocket

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// closeGrace bounds how long a finished client waits for the peer to
	// answer its close frame.
	closeGrace = time.Second

	queueSize = 64

	// Peers never send data frames
	readLimit = 512
)

// Client is one connection subscribed to a session's events. The connection
// is push-only: the read side only answers pings and notices the peer leaving.
//
// A client ends in one of two ways. Finish queues a final event and closes
// with a normal closure once everything queued before it has been written.
// Close drops the connection at once.
type Client struct {
	id        string
	sessionID string
	conn      *websocket.Conn
	hub       *Hub

	mu         sync.Mutex
	queue      chan []byte
	closing    bool
	closeFrame []byte

	readDone chan struct{}
	connOnce sync.Once
}

// NewClient wraps an upgraded connection for the given session
func NewClient(conn *websocket.Conn, sessionID string, hub *Hub) *Client {
	return &Client{
		id:        uuid.NewString(),
		sessionID: sessionID,
		conn:      conn,
		hub:       hub,
		queue:     make(chan []byte, queueSize),
		readDone:  make(chan struct{}),
	}
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) SessionID() string {
	return c.sessionID
}

// Send queues an event frame. A client whose queue is full is considered
// stalled and is shut down with CloseTryAgainLater.
func (c *Client) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closing {
		return ErrClientClosed
	}
	select {
	case c.queue <- data:
		return nil
	default:
		c.shutdownLocked(websocket.CloseTryAgainLater, "client too slow")
		return ErrClientStalled
	}
}

// Finish queues final as the last frame, then closes the connection with a
// normal closure carrying reason. A nil final only closes.
func (c *Client) Finish(final []byte, reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closing {
		return ErrClientClosed
	}
	if final != nil {
		select {
		case c.queue <- final:
		default:
			log.Warn().Str("client_id", c.id).Str("session_id", c.sessionID).Msg("Final event dropped, queue full")
		}
	}
	c.shutdownLocked(websocket.CloseNormalClosure, reason)
	return nil
}

// Close drops the connection without draining the queue
func (c *Client) Close() error {
	c.mu.Lock()
	if !c.closing {
		c.shutdownLocked(websocket.CloseGoingAway, "")
	}
	c.mu.Unlock()
	return c.closeConn()
}

// IsClosed reports whether the client accepts no more events
func (c *Client) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closing
}

// shutdownLocked stops accepting events; WritePump drains the queue and
// then sends closeFrame. c.mu must be held.
func (c *Client) shutdownLocked(code int, reason string) {
	c.closing = true
	c.closeFrame = websocket.FormatCloseMessage(code, reason)
	close(c.queue)
}

func (c *Client) closeConn() error {
	var err error
	c.connOnce.Do(func() {
		err = c.conn.Close()
	})
	return err
}

// ReadPump keeps the read side alive for pongs and close frames and
// discards anything else. Run it in its own goroutine.
func (c *Client) ReadPump() {
	defer func() {
		close(c.readDone)
		c.hub.Unregister(c)
		_ = c.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Str("client_id", c.id).Str("session_id", c.sessionID).Msg("WebSocket peer left")
			}
			return
		}
	}
}

// WritePump writes queued events and keepalive pings. When the queue is
// closed it sends the close frame and waits for the peer's answer before
// dropping the connection. Run it in its own goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.closeConn()
	}()

	for {
		select {
		case message, ok := <-c.queue:
			if !ok {
				c.writeClose()
				return
			}
			if err := c.write(websocket.TextMessage, message); err != nil {
				log.Warn().Err(err).Str("client_id", c.id).Str("session_id", c.sessionID).Msg("WebSocket write error")
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) write(messageType int, data []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(messageType, data)
}

func (c *Client) writeClose() {
	c.mu.Lock()
	frame := c.closeFrame
	c.mu.Unlock()

	if err := c.write(websocket.CloseMessage, frame); err != nil {
		return
	}
	select {
	case <-c.readDone:
	case <-time.After(closeGrace):
	}
}
