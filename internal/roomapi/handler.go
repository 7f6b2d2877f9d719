// Package roomapi exposes a small read-only REST surface over live
// rooms, so views can fetch current state without holding a socket.
package roomapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/breadbun407/WordScrawl/internal/sprint"
	"github.com/breadbun407/WordScrawl/pkg/httputil"
	"github.com/breadbun407/WordScrawl/pkg/logger"
)

type Handler struct {
	coordinator *sprint.Coordinator
	log         *logger.Logger
}

func NewHandler(coordinator *sprint.Coordinator, log *logger.Logger) *Handler {
	return &Handler{coordinator: coordinator, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/{roomID}", httputil.Handler(h.HandleGetRoom, h.log.Logger))
}

// HandleGetRoom returns the current snapshot of a live room
func (h *Handler) HandleGetRoom(w http.ResponseWriter, r *http.Request) error {
	roomID := chi.URLParam(r, "roomID")
	if roomID == "" {
		return httputil.BadRequest("roomID is required")
	}

	snap, ok := h.coordinator.Snapshot(roomID)
	if !ok {
		return httputil.NotFound("Room not found")
	}

	h.log.Debug("room snapshot served",
		"room_id", roomID,
		"participant_count", len(snap.Participants),
	)

	return httputil.RespondJSON(w, http.StatusOK, snap)
}
