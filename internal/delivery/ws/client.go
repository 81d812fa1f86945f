package ws

import (
	"log/slog"
	"sync"
	"time"

	"restops/config"
	domainerrors "restops/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// client is one upgraded connection. It implements service.Connection.
// Frames are queued on send and written by writePump only.
type client struct {
	id     string
	conn   *websocket.Conn
	cfg    config.WebSocketConfig
	logger *slog.Logger

	send chan []byte
	done chan struct{}

	closeOnce   sync.Once
	mu          sync.Mutex
	closed      bool
	closeReason string
}

func newClient(conn *websocket.Conn, cfg config.WebSocketConfig, logger *slog.Logger) *client {
	return &client{
		id:     uuid.NewString(),
		conn:   conn,
		cfg:    cfg,
		logger: logger,
		send:   make(chan []byte, cfg.SendBufferSize),
		done:   make(chan struct{}),
	}
}

func (c *client) ID() string {
	return c.id
}

// Send queues an event. It fails once the connection is closing or when the
// peer is too slow to drain its buffer.
func (c *client) Send(event string, payload any) error {
	return c.reply(event, "", payload)
}

func (c *client) reply(event, ref string, payload any) error {
	frame, err := encodeFrame(event, ref, payload)
	if err != nil {
		return domainerrors.ErrInternalError.WithDetails("encode " + event + ": " + err.Error())
	}

	// Enqueue under mu so no frame lands after Close, which the write pump
	// would never flush.
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domainerrors.ErrTransportUnavailable.WithDetails("connection closed")
	}

	select {
	case c.send <- frame:
		return nil
	default:
		return domainerrors.ErrTransportUnavailable.WithDetails("send buffer full")
	}
}

// Close asks the write pump to flush queued frames and close with reason.
func (c *client) Close(reason string) {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.closeReason = reason
		c.mu.Unlock()
		close(c.done)
	})
}

func (c *client) reason() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closeReason
}

// readPump delivers inbound frames to handle in arrival order until the peer
// goes away or the connection is closed.
func (c *client) readPump(handle func(raw []byte)) {
	defer c.Close("")

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				c.logger.Debug("WebSocket read failed", slog.Any("error", err))
			}

			return
		}
		handle(raw)
	}
}

// writePump is the only writer of conn.
func (c *client) writePump() {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame := <-c.send:
			if err := c.write(websocket.TextMessage, frame); err != nil {
				c.Close("")

				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.Close("")

				return
			}
		case <-c.done:
			c.flush()
			_ = c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, c.reason()))

			return
		}
	}
}

// flush writes whatever is still queued.
func (c *client) flush() {
	for {
		select {
		case frame := <-c.send:
			if err := c.write(websocket.TextMessage, frame); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (c *client) write(messageType int, data []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))

	return c.conn.WriteMessage(messageType, data)
}
