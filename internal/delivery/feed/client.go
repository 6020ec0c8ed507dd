package feed

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	sendBuffer   = 32
	writeWait    = 10 * time.Second
	maxReadBytes = 512
)

// Client is a WebSocket connection subscribed to one collection.
type Client struct {
	conn         *websocket.Conn
	collection   string
	pingInterval time.Duration
	send         chan []byte
	quit         chan struct{}
	closeOnce    sync.Once
	logger       *slog.Logger
}

// NewClient wraps an upgraded connection.
func NewClient(conn *websocket.Conn, collection string, pingInterval time.Duration, logger *slog.Logger) *Client {
	return &Client{
		conn:         conn,
		collection:   collection,
		pingInterval: pingInterval,
		send:         make(chan []byte, sendBuffer),
		quit:         make(chan struct{}),
		logger:       logger,
	}
}

func (c *Client) Collection() string { return c.collection }

func (c *Client) Enqueue(payload []byte) bool {
	select {
	case <-c.quit:
		return false
	default:
	}

	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() { close(c.quit) })
}

// Serve registers the client and blocks until the peer disconnects or the hub drops it.
func (c *Client) Serve(hub *Hub) {
	if !hub.Register(c) {
		_ = c.conn.Close()

		return
	}

	go c.writePump()
	c.readPump()
	hub.Unregister(c)
}

// readPump discards client frames; it exists to process pongs and notice disconnects.
func (c *Client) readPump() {
	c.conn.SetReadLimit(maxReadBytes)
	if c.pingInterval > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(2 * c.pingInterval))
		c.conn.SetPongHandler(func(string) error {
			return c.conn.SetReadDeadline(time.Now().Add(2 * c.pingInterval))
		})
	}

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("Change feed client read failed", slog.Any("error", err))
			}

			return
		}
	}
}

func (c *Client) writePump() {
	var tick <-chan time.Time
	if c.pingInterval > 0 {
		ticker := time.NewTicker(c.pingInterval)
		defer ticker.Stop()
		tick = ticker.C
	}
	defer c.conn.Close()

	for {
		select {
		case <-c.quit:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))

			return
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.logger.Debug("Change feed client write failed", slog.Any("error", err))
				c.Close()

				return
			}
		case <-tick:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.Close()

				return
			}
		}
	}
}
