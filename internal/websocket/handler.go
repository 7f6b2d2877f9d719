package websocket

import (
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/breadbun407/WordScrawl/internal/sprint"
	"github.com/breadbun407/WordScrawl/pkg/logger"
)

// Handler accepts WebSocket connections and routes client intents to
// the coordinator. Each accepted connection gets a generated ID that
// ties together the registry entry, the gateway client, and every
// coordinator operation the connection performs.
type Handler struct {
	coordinator *sprint.Coordinator
	gateway     *Gateway
	registry    *sprint.Registry
	log         *logger.Logger
}

func NewHandler(coordinator *sprint.Coordinator, gateway *Gateway, registry *sprint.Registry, log *logger.Logger) *Handler {
	return &Handler{
		coordinator: coordinator,
		gateway:     gateway,
		registry:    registry,
		log:         log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleConnection)
}

// HandleConnection upgrades the request and serves the connection
// until the client goes away, then runs the implicit leave.
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // tighten in prod!
	})
	if err != nil {
		h.log.Warn("websocket accept failed", "remote_addr", r.RemoteAddr, "error", err)
		return
	}

	connID := uuid.NewString()
	client := NewClient(connID, conn, h.log)

	h.registry.Register(connID)
	h.gateway.Add(client)

	h.log.Info("websocket connected",
		"conn_id", connID,
		"remote_addr", r.RemoteAddr,
	)

	ctx := r.Context()
	go client.writePump(ctx)
	client.readPump(ctx, h.dispatch)

	// Connection is gone: leave first so the participant-left event
	// only targets the remaining members, then release the client.
	h.coordinator.Leave(connID)
	h.gateway.Remove(connID)

	h.log.Info("websocket disconnected", "conn_id", connID)
}

// dispatch decodes one client frame and applies it. Malformed input is
// answered with an error event to the sender only and never mutates
// room state.
func (h *Handler) dispatch(connID string, data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		h.gateway.ToConnection(connID, sprint.NewError("bad_message", "message must be valid JSON"))
		return
	}

	switch msg.Type {
	case sprint.EventJoinRoom:
		var payload JoinRoomData
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			h.gateway.ToConnection(connID, sprint.NewError("bad_payload", "invalid join-room payload"))
			return
		}
		if err := h.coordinator.Join(connID, payload.RoomID, payload.Username); err != nil {
			h.gateway.ToConnection(connID, sprint.NewError("join_rejected", err.Error()))
		}

	case sprint.EventWordCountUpdate:
		var payload WordCountUpdateData
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			h.gateway.ToConnection(connID, sprint.NewError("bad_payload", "word count must be a non-negative integer"))
			return
		}
		if err := h.coordinator.UpdateProgress(connID, payload.WordCount); err != nil {
			h.gateway.ToConnection(connID, sprint.NewError("update_rejected", err.Error()))
		}

	case sprint.EventStartSprint:
		h.coordinator.StartSprint(connID)

	default:
		h.log.Debug("unknown message type", "conn_id", connID, "type", msg.Type)
	}
}
