package sprint

import "time"

// Status describes where a room is in the sprint lifecycle.
// It only ever moves forward: waiting -> active -> finished.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// RoomDefaults are applied to rooms created on first join
type RoomDefaults struct {
	DurationMinutes int
	Prompt          string
}

// Participant is one named writer inside a room. Names are unique per
// room and act as the join key.
type Participant struct {
	Name      string
	WordCount int

	// connID points back at the connection that most recently joined
	// under this name. Used only to resolve disconnects: a leave from
	// an older connection for this name is stale and ignored.
	connID string
}

// Room holds the live state of one sprint session. It is owned by the
// Store and only ever mutated by the Coordinator, which serializes all
// operations, so the struct itself carries no lock.
type Room struct {
	ID           string
	Participants []*Participant
	Status       Status
	Duration     int // sprint length in minutes, fixed at creation
	Prompt       string
	StartTime    int64 // unix milliseconds, 0 while waiting

	// timer is the pending end-of-sprint deadline. Nil until the
	// sprint starts; stopped when the room is deleted.
	timer *time.Timer
}

func newRoom(id string, defaults RoomDefaults) *Room {
	return &Room{
		ID:           id,
		Participants: make([]*Participant, 0, 4),
		Status:       StatusWaiting,
		Duration:     defaults.DurationMinutes,
		Prompt:       defaults.Prompt,
	}
}

// participant returns the member with the given name, or nil
func (r *Room) participant(name string) *Participant {
	for _, p := range r.Participants {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// removeParticipant drops the member with the given name, preserving
// the join order of everyone else
func (r *Room) removeParticipant(name string) bool {
	for i, p := range r.Participants {
		if p.Name == name {
			r.Participants = append(r.Participants[:i], r.Participants[i+1:]...)
			return true
		}
	}
	return false
}

// stopTimer cancels a pending deadline if one is scheduled
func (r *Room) stopTimer() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// participantSnapshots copies the member list in join order
func (r *Room) participantSnapshots() []ParticipantSnapshot {
	out := make([]ParticipantSnapshot, len(r.Participants))
	for i, p := range r.Participants {
		out[i] = ParticipantSnapshot{Name: p.Name, WordCount: p.WordCount}
	}
	return out
}

// snapshot builds the full client-facing view of the room
func (r *Room) snapshot() RoomSnapshot {
	snap := RoomSnapshot{
		ID:           r.ID,
		Participants: r.participantSnapshots(),
		Status:       r.Status,
		Duration:     r.Duration,
		Prompt:       r.Prompt,
	}
	if r.StartTime != 0 {
		st := r.StartTime
		snap.StartTime = &st
	}
	return snap
}
