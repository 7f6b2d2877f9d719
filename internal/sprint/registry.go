package sprint

import "sync"

// Ref identifies the room membership of a connection
type Ref struct {
	RoomID   string
	Username string
}

func (ref Ref) associated() bool {
	return ref.RoomID != ""
}

// Registry maps live connection IDs to their room and participant
// identity. Connections exist in the table before they join a room;
// looking one of those up yields "not found", which callers must treat
// as a valid, inert state rather than an error.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]Ref
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]Ref)}
}

// Register adds a connection with no room association yet
func (r *Registry) Register(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[connID] = Ref{}
}

// Associate binds a connection to a room and participant name,
// replacing any previous association
func (r *Registry) Associate(connID, roomID, username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[connID] = Ref{RoomID: roomID, Username: username}
}

// Lookup resolves a connection to its room membership. The second
// return is false for unknown connections and for connections that
// never joined a room.
func (r *Registry) Lookup(connID string) (Ref, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ref, ok := r.conns[connID]
	if !ok || !ref.associated() {
		return Ref{}, false
	}
	return ref, true
}

// Unregister removes a connection from the table and returns the
// association it held, if any
func (r *Registry) Unregister(connID string) (Ref, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ref, ok := r.conns[connID]
	if !ok {
		return Ref{}, false
	}
	delete(r.conns, connID)
	if !ref.associated() {
		return Ref{}, false
	}
	return ref, true
}

// ConnectionsInRoom lists the IDs of every connection currently
// associated with the room
func (r *Registry) ConnectionsInRoom(roomID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, ref := range r.conns {
		if ref.RoomID == roomID {
			ids = append(ids, id)
		}
	}
	return ids
}
