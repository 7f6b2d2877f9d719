package websocket

import (
	"context"
	"time"

	"github.com/coder/websocket"

	"github.com/breadbun407/WordScrawl/pkg/logger"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Send pings to peer with this period
	pingPeriod = 30 * time.Second

	// Maximum message size allowed from peer (intents are tiny)
	maxMessageSize = 1024

	// Per-client outbound buffer
	sendBufferSize = 64
)

// Client represents a single WebSocket connection
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	log  *logger.Logger
}

// NewClient creates a new client instance
func NewClient(id string, conn *websocket.Conn, log *logger.Logger) *Client {
	return &Client{
		id:   id,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		log:  log,
	}
}

// ID returns the connection identifier
func (c *Client) ID() string {
	return c.id
}

// enqueue hands an already-marshaled event to the write pump. Returns
// false when the buffer is full; the event is dropped in that case.
func (c *Client) enqueue(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// readPump reads client intents until the connection dies and hands
// each raw frame to receive. It runs in the connection's handler
// goroutine; returning means the client is gone.
func (c *Client) readPump(ctx context.Context, receive func(connID string, data []byte)) {
	defer c.conn.Close(websocket.StatusNormalClosure, "")

	c.conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				c.log.Debug("client disconnected normally", "conn_id", c.id)
			} else {
				c.log.Debug("websocket read ended", "conn_id", c.id, "error", err)
			}
			return
		}

		receive(c.id, data)
	}
}

// writePump pumps queued events to the WebSocket connection and keeps
// it alive with periodic pings. Runs in a per-connection goroutine.
func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				// Gateway removed this client
				c.conn.Close(websocket.StatusNormalClosure, "connection closed")
				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, data)
			cancel()

			if err != nil {
				c.log.Debug("failed to write to client", "conn_id", c.id, "error", err)
				return
			}

		case <-ticker.C:
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(writeCtx)
			cancel()

			if err != nil {
				c.log.Debug("failed to ping client", "conn_id", c.id, "error", err)
				return
			}

		case <-ctx.Done():
			return
		}
	}
}
