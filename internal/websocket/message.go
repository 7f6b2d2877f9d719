package websocket

import (
	"encoding/json"

	"github.com/breadbun407/WordScrawl/internal/sprint"
)

// ClientMessage represents any message from a client. The payload is
// left raw until the type is known.
type ClientMessage struct {
	Type sprint.EventType `json:"type"`
	Data json.RawMessage  `json:"data,omitempty"`
}

// JoinRoomData is the payload for join-room
type JoinRoomData struct {
	RoomID   string `json:"roomId"`
	Username string `json:"username"`
}

// WordCountUpdateData is the payload for word-count-update
type WordCountUpdateData struct {
	WordCount int `json:"wordCount"`
}
