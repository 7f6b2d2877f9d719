package sprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() RoomDefaults {
	return RoomDefaults{DurationMinutes: 25, Prompt: "Write something."}
}

func TestStoreGetOrCreate(t *testing.T) {
	s := NewStore()

	room, created := s.GetOrCreate("room-1", testDefaults())
	require.True(t, created)
	assert.Equal(t, "room-1", room.ID)
	assert.Equal(t, StatusWaiting, room.Status)
	assert.Equal(t, 25, room.Duration)
	assert.Equal(t, "Write something.", room.Prompt)
	assert.Empty(t, room.Participants)
	assert.Zero(t, room.StartTime)

	same, created := s.GetOrCreate("room-1", testDefaults())
	assert.False(t, created)
	assert.Same(t, room, same)
	assert.Equal(t, 1, s.Len())
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	s.GetOrCreate("room-1", testDefaults())

	s.Delete("room-1")

	_, ok := s.Get("room-1")
	assert.False(t, ok)
	assert.Zero(t, s.Len())

	// Deleting an absent room is fine
	s.Delete("room-1")
}

func TestStoreRecreateIsFresh(t *testing.T) {
	s := NewStore()

	room, _ := s.GetOrCreate("room-1", testDefaults())
	room.Status = StatusFinished
	room.Participants = append(room.Participants, &Participant{Name: "alice", WordCount: 99})

	s.Delete("room-1")

	fresh, created := s.GetOrCreate("room-1", testDefaults())
	require.True(t, created)
	assert.Equal(t, StatusWaiting, fresh.Status)
	assert.Empty(t, fresh.Participants)
}
