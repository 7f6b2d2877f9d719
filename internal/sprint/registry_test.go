package sprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookupUnknownConnection(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Lookup("nope")
	assert.False(t, ok)
}

func TestRegistryLookupUnassociatedConnection(t *testing.T) {
	r := NewRegistry()
	r.Register("c1")

	// Registered but never joined a room: valid, inert state
	_, ok := r.Lookup("c1")
	assert.False(t, ok)
}

func TestRegistryAssociateAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("c1")
	r.Associate("c1", "room-1", "alice")

	ref, ok := r.Lookup("c1")
	require.True(t, ok)
	assert.Equal(t, "room-1", ref.RoomID)
	assert.Equal(t, "alice", ref.Username)
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("c1")
	r.Associate("c1", "room-1", "alice")

	ref, ok := r.Unregister("c1")
	require.True(t, ok)
	assert.Equal(t, "room-1", ref.RoomID)
	assert.Equal(t, "alice", ref.Username)

	_, ok = r.Lookup("c1")
	assert.False(t, ok)

	// Second unregister of the same connection is a stale disconnect
	_, ok = r.Unregister("c1")
	assert.False(t, ok)
}

func TestRegistryUnregisterUnassociated(t *testing.T) {
	r := NewRegistry()
	r.Register("c1")

	_, ok := r.Unregister("c1")
	assert.False(t, ok)
}

func TestRegistryConnectionsInRoom(t *testing.T) {
	r := NewRegistry()
	r.Register("c1")
	r.Register("c2")
	r.Register("c3")
	r.Register("c4")
	r.Associate("c1", "room-1", "alice")
	r.Associate("c2", "room-1", "bob")
	r.Associate("c3", "room-2", "carol")

	ids := r.ConnectionsInRoom("room-1")
	assert.ElementsMatch(t, []string{"c1", "c2"}, ids)

	assert.Empty(t, r.ConnectionsInRoom("room-3"))
}
