package sprint

// EventType names a logical message exchanged with clients
type EventType string

const (
	// Client -> server
	EventJoinRoom        EventType = "join-room"
	EventWordCountUpdate EventType = "word-count-update"
	EventStartSprint     EventType = "start-sprint"

	// Server -> client
	EventRoomJoined         EventType = "room-joined"
	EventParticipantJoined  EventType = "participant-joined"
	EventParticipantUpdated EventType = "participant-updated"
	EventSprintStarted      EventType = "sprint-started"
	EventSprintEnded        EventType = "sprint-ended"
	EventParticipantLeft    EventType = "participant-left"
	EventError              EventType = "error"
)

// Event is the base structure for all messages sent to clients
type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data,omitempty"`
}

// Broadcaster delivers coordinator events to some subset of the
// connections associated with a room. Implemented by the websocket
// gateway; pure fan-out, no mutation of room state.
type Broadcaster interface {
	ToConnection(connID string, event Event)
	ToRoom(roomID string, event Event)
	ToRoomExcept(roomID, exceptConnID string, event Event)
}

// ParticipantSnapshot is the client-facing view of one participant
type ParticipantSnapshot struct {
	Name      string `json:"name"`
	WordCount int    `json:"wordCount"`
}

// RoomSnapshot is the full client-facing view of a room. StartTime is
// unix milliseconds and null until the sprint starts.
type RoomSnapshot struct {
	ID           string                `json:"id"`
	Participants []ParticipantSnapshot `json:"participants"`
	Status       Status                `json:"status"`
	Duration     int                   `json:"duration"`
	Prompt       string                `json:"prompt"`
	StartTime    *int64                `json:"startTime"`
}

// ParticipantJoinedData notifies existing members about a new joiner
type ParticipantJoinedData struct {
	Username     string                `json:"username"`
	Participants []ParticipantSnapshot `json:"participants"`
}

// ParticipantUpdatedData carries a fresh word count for one member
type ParticipantUpdatedData struct {
	Username     string                `json:"username"`
	WordCount    int                   `json:"wordCount"`
	Participants []ParticipantSnapshot `json:"participants"`
}

// SprintStartedData marks the waiting -> active transition
type SprintStartedData struct {
	Status    Status `json:"status"`
	StartTime int64  `json:"startTime"`
}

// SprintEndedData marks the active -> finished transition
type SprintEndedData struct {
	Status       Status                `json:"status"`
	Participants []ParticipantSnapshot `json:"participants"`
}

// ParticipantLeftData notifies remaining members about a leaver
type ParticipantLeftData struct {
	Username     string                `json:"username"`
	Participants []ParticipantSnapshot `json:"participants"`
}

// ErrorData is sent to a single connection that violated the
// client contract; it never reflects a state change.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewRoomJoined creates the acknowledgment for a joining connection
func NewRoomJoined(snap RoomSnapshot) Event {
	return Event{Type: EventRoomJoined, Data: snap}
}

// NewParticipantJoined creates a participant joined event
func NewParticipantJoined(username string, participants []ParticipantSnapshot) Event {
	return Event{
		Type: EventParticipantJoined,
		Data: ParticipantJoinedData{
			Username:     username,
			Participants: participants,
		},
	}
}

// NewParticipantUpdated creates a word count update event
func NewParticipantUpdated(username string, wordCount int, participants []ParticipantSnapshot) Event {
	return Event{
		Type: EventParticipantUpdated,
		Data: ParticipantUpdatedData{
			Username:     username,
			WordCount:    wordCount,
			Participants: participants,
		},
	}
}

// NewSprintStarted creates a sprint started event
func NewSprintStarted(status Status, startTime int64) Event {
	return Event{
		Type: EventSprintStarted,
		Data: SprintStartedData{
			Status:    status,
			StartTime: startTime,
		},
	}
}

// NewSprintEnded creates a sprint ended event
func NewSprintEnded(status Status, participants []ParticipantSnapshot) Event {
	return Event{
		Type: EventSprintEnded,
		Data: SprintEndedData{
			Status:       status,
			Participants: participants,
		},
	}
}

// NewParticipantLeft creates a participant left event
func NewParticipantLeft(username string, participants []ParticipantSnapshot) Event {
	return Event{
		Type: EventParticipantLeft,
		Data: ParticipantLeftData{
			Username:     username,
			Participants: participants,
		},
	}
}

// NewError creates an error event
func NewError(code, message string) Event {
	return Event{
		Type: EventError,
		Data: ErrorData{
			Code:    code,
			Message: message,
		},
	}
}
