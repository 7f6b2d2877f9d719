package websocket

import (
	"encoding/json"
	"sync"

	"github.com/coder/websocket"

	"github.com/breadbun407/WordScrawl/internal/sprint"
	"github.com/breadbun407/WordScrawl/pkg/logger"
)

// Gateway fans coordinator events out to live connections. It resolves
// room membership through the connection registry and performs no
// mutation of room state. Delivery to a connection that is gone or too
// slow is silently dropped; disconnect races are expected.
type Gateway struct {
	mu       sync.RWMutex
	clients  map[string]*Client
	registry *sprint.Registry
	log      *logger.Logger

	sent    int64
	dropped int64
}

func NewGateway(registry *sprint.Registry, log *logger.Logger) *Gateway {
	return &Gateway{
		clients:  make(map[string]*Client),
		registry: registry,
		log:      log,
	}
}

// Add makes a connection reachable for fan-out
func (g *Gateway) Add(client *Client) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clients[client.id] = client
}

// Remove forgets a connection and releases its write pump. Safe to
// call for connections the gateway never saw.
func (g *Gateway) Remove(connID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if client, ok := g.clients[connID]; ok {
		delete(g.clients, connID)
		close(client.send)
	}
}

// ToConnection delivers an event to a single connection
func (g *Gateway) ToConnection(connID string, event sprint.Event) {
	data, ok := g.marshal(event)
	if !ok {
		return
	}
	g.deliver(data, event.Type, connID)
}

// ToRoom delivers an event to every connection in the room
func (g *Gateway) ToRoom(roomID string, event sprint.Event) {
	data, ok := g.marshal(event)
	if !ok {
		return
	}
	g.deliver(data, event.Type, g.registry.ConnectionsInRoom(roomID)...)
}

// ToRoomExcept delivers an event to every connection in the room
// except the one given, typically the sender
func (g *Gateway) ToRoomExcept(roomID, exceptConnID string, event sprint.Event) {
	data, ok := g.marshal(event)
	if !ok {
		return
	}

	var targets []string
	for _, id := range g.registry.ConnectionsInRoom(roomID) {
		if id != exceptConnID {
			targets = append(targets, id)
		}
	}
	g.deliver(data, event.Type, targets...)
}

// CloseAll tells every live connection the server is going away.
// Used during graceful shutdown.
func (g *Gateway) CloseAll() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id, client := range g.clients {
		client.conn.Close(websocket.StatusGoingAway, "server shutting down")
		delete(g.clients, id)
		close(client.send)
	}

	g.log.Info("gateway closed",
		"events_sent", g.sent,
		"events_dropped", g.dropped,
	)
}

// marshal encodes an event once per broadcast
func (g *Gateway) marshal(event sprint.Event) ([]byte, bool) {
	data, err := json.Marshal(event)
	if err != nil {
		g.log.Error("failed to marshal event", "type", event.Type, "error", err)
		return nil, false
	}
	return data, true
}

func (g *Gateway) deliver(data []byte, eventType sprint.EventType, connIDs ...string) {
	// Full lock: delivery counters are mutated, and enqueue must not
	// race a concurrent Remove closing the client's channel.
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range connIDs {
		client, ok := g.clients[id]
		if !ok {
			// Connection closed between resolve and delivery
			continue
		}
		if client.enqueue(data) {
			g.sent++
		} else {
			g.dropped++
			g.log.Warn("client buffer full, dropping event",
				"conn_id", id,
				"type", eventType,
			)
		}
	}
}
