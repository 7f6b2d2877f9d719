// Package sprint implements the room/session coordinator for timed
// collaborative writing sprints: room lifecycle, participant tracking,
// sprint timing, and the events broadcast to connected clients.
package sprint

import (
	"errors"
	"sync"
	"time"

	"github.com/breadbun407/WordScrawl/pkg/logger"
)

var (
	ErrEmptyRoomID      = errors.New("room id must not be empty")
	ErrEmptyUsername    = errors.New("username must not be empty")
	ErrInvalidWordCount = errors.New("word count must be non-negative")
)

// Metrics counts coordinator activity since process start
type Metrics struct {
	RoomsCreated    int64
	RoomsDeleted    int64
	SprintsStarted  int64
	SprintsFinished int64
}

// Coordinator is the single authority over all room state. Every
// mutating operation runs under one mutex, so no two operations on the
// same room are ever applied concurrently and the broadcast order per
// room matches the order of accepted operations. The sprint deadline
// timer re-enters through the same lock and checks room existence
// first, so a room deleted before its deadline fires is a no-op.
type Coordinator struct {
	mu        sync.Mutex
	store     *Store
	registry  *Registry
	broadcast Broadcaster
	defaults  RoomDefaults
	metrics   Metrics
	log       *logger.Logger
}

func NewCoordinator(store *Store, registry *Registry, broadcast Broadcaster, defaults RoomDefaults, log *logger.Logger) *Coordinator {
	return &Coordinator{
		store:     store,
		registry:  registry,
		broadcast: broadcast,
		defaults:  defaults,
		log:       log,
	}
}

// Join admits a connection into a room, creating the room on first
// sight of the ID. Re-joining with a name already present in the room
// neither duplicates the participant nor resets their word count.
// Joining an active or finished room is allowed; the joiner simply
// observes that status in the snapshot.
func (c *Coordinator) Join(connID, roomID, username string) error {
	if roomID == "" {
		return ErrEmptyRoomID
	}
	if username == "" {
		return ErrEmptyUsername
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	room, created := c.store.GetOrCreate(roomID, c.defaults)
	if created {
		c.metrics.RoomsCreated++
		c.log.Info("room created",
			"room_id", roomID,
			"duration_min", room.Duration,
		)
	}

	c.registry.Associate(connID, roomID, username)

	if p := room.participant(username); p != nil {
		// Same name re-joining, possibly from a new connection.
		p.connID = connID
	} else {
		room.Participants = append(room.Participants, &Participant{
			Name:   username,
			connID: connID,
		})
	}

	c.log.Info("participant joined",
		"room_id", roomID,
		"username", username,
		"participant_count", len(room.Participants),
	)

	c.broadcast.ToConnection(connID, NewRoomJoined(room.snapshot()))
	c.broadcast.ToRoomExcept(roomID, connID, NewParticipantJoined(username, room.participantSnapshots()))

	return nil
}

// UpdateProgress overwrites the word count of the participant bound to
// the connection. Last write wins per participant. Unresolvable
// connections and vanished rooms or participants are silent no-ops;
// a negative count is a caller contract violation and changes nothing.
func (c *Coordinator) UpdateProgress(connID string, wordCount int) error {
	if wordCount < 0 {
		return ErrInvalidWordCount
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ref, ok := c.registry.Lookup(connID)
	if !ok {
		return nil
	}
	room, ok := c.store.Get(ref.RoomID)
	if !ok {
		return nil
	}
	p := room.participant(ref.Username)
	if p == nil {
		return nil
	}

	p.WordCount = wordCount

	c.broadcast.ToRoom(ref.RoomID, NewParticipantUpdated(ref.Username, wordCount, room.participantSnapshots()))

	return nil
}

// StartSprint moves a waiting room to active, stamps the start time,
// and schedules the one-shot end-of-sprint deadline. Any member may
// start the sprint. Calling it on a room that is already active or
// finished is a no-op; the timer is never restarted.
func (c *Coordinator) StartSprint(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ref, ok := c.registry.Lookup(connID)
	if !ok {
		return
	}
	room, ok := c.store.Get(ref.RoomID)
	if !ok {
		return
	}
	if room.Status != StatusWaiting {
		return
	}

	room.Status = StatusActive
	room.StartTime = time.Now().UnixMilli()
	c.metrics.SprintsStarted++

	c.log.Info("sprint started",
		"room_id", room.ID,
		"started_by", ref.Username,
		"duration_min", room.Duration,
	)

	// The started broadcast goes out while the lock is held, so even a
	// zero-minute sprint transitions through active before the deadline
	// callback can take the lock and finish it.
	c.broadcast.ToRoom(room.ID, NewSprintStarted(room.Status, room.StartTime))

	roomID := room.ID
	room.timer = time.AfterFunc(time.Duration(room.Duration)*time.Minute, func() {
		c.endSprint(roomID)
	})
}

// endSprint is the deadline callback. The room may have been deleted
// since the timer was scheduled; that is expected, not an error.
func (c *Coordinator) endSprint(roomID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.store.Get(roomID)
	if !ok {
		return
	}
	if room.Status != StatusActive {
		return
	}

	room.Status = StatusFinished
	room.timer = nil
	c.metrics.SprintsFinished++

	c.log.Info("sprint ended",
		"room_id", roomID,
		"participant_count", len(room.Participants),
	)

	c.broadcast.ToRoom(roomID, NewSprintEnded(room.Status, room.participantSnapshots()))
}

// Leave removes the participant bound to the connection from their
// room, triggered by disconnect. The leaver is unregistered before the
// fan-out, so the participant-left event reaches only the remaining
// members. A room left with no participants is deleted and its pending
// deadline stopped.
func (c *Coordinator) Leave(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ref, ok := c.registry.Unregister(connID)
	if !ok {
		return
	}
	room, ok := c.store.Get(ref.RoomID)
	if !ok {
		return
	}
	p := room.participant(ref.Username)
	if p == nil {
		return
	}
	if p.connID != connID {
		// The name re-joined from a newer connection; this disconnect
		// is stale and must not evict the live participant.
		c.log.Debug("stale disconnect ignored",
			"room_id", ref.RoomID,
			"username", ref.Username,
			"conn_id", connID,
		)
		return
	}

	room.removeParticipant(ref.Username)

	c.log.Info("participant left",
		"room_id", ref.RoomID,
		"username", ref.Username,
		"remaining", len(room.Participants),
	)

	c.broadcast.ToRoom(ref.RoomID, NewParticipantLeft(ref.Username, room.participantSnapshots()))

	if len(room.Participants) == 0 {
		c.store.Delete(ref.RoomID)
		c.metrics.RoomsDeleted++
		c.log.Info("room deleted", "room_id", ref.RoomID)
	}
}

// Snapshot returns the current client-facing view of a room
func (c *Coordinator) Snapshot(roomID string) (RoomSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.store.Get(roomID)
	if !ok {
		return RoomSnapshot{}, false
	}
	return room.snapshot(), true
}

// Metrics returns a copy of the activity counters
func (c *Coordinator) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics
}

// Shutdown stops every pending sprint deadline and logs the final
// activity counters. Room state is ephemeral and simply dropped.
func (c *Coordinator) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Each(func(room *Room) {
		room.stopTimer()
	})

	c.log.Info("coordinator shut down",
		"live_rooms", c.store.Len(),
		"rooms_created", c.metrics.RoomsCreated,
		"rooms_deleted", c.metrics.RoomsDeleted,
		"sprints_started", c.metrics.SprintsStarted,
		"sprints_finished", c.metrics.SprintsFinished,
	)
}
