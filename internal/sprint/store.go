package sprint

// Store is the in-memory collection of live rooms, keyed by room ID.
// It starts empty at process start and is intentionally ephemeral.
//
// The Store does no locking of its own: the Coordinator is its only
// caller and serializes every access under its own mutex.
type Store struct {
	rooms map[string]*Room
}

func NewStore() *Store {
	return &Store{rooms: make(map[string]*Room)}
}

// Get returns the room with the given ID if it exists
func (s *Store) Get(id string) (*Room, bool) {
	room, ok := s.rooms[id]
	return room, ok
}

// GetOrCreate returns the existing room or creates a fresh waiting
// room with the given defaults. The second return reports whether a
// new room was created.
func (s *Store) GetOrCreate(id string, defaults RoomDefaults) (*Room, bool) {
	if room, ok := s.rooms[id]; ok {
		return room, false
	}
	room := newRoom(id, defaults)
	s.rooms[id] = room
	return room, true
}

// Delete removes a room, stopping its pending deadline first
func (s *Store) Delete(id string) {
	if room, ok := s.rooms[id]; ok {
		room.stopTimer()
		delete(s.rooms, id)
	}
}

// Len reports how many rooms are currently live
func (s *Store) Len() int {
	return len(s.rooms)
}

// Each calls fn for every live room
func (s *Store) Each(fn func(*Room)) {
	for _, room := range s.rooms {
		fn(room)
	}
}
