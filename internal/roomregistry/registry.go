package roomregistry

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry is the cross-room shared structure: a RoomId -> *Room map
// supporting concurrent insert/lookup/delete/enumerate, grounded on the
// teacher's global `games map[uint]*Game` but guarded by a real mutex —
// the teacher's version is mutated from multiple connection goroutines
// without one.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// NewRoomID mints a UUID-grade RoomId. Never collides, even across
// deletions, per the data-model invariant.
func NewRoomID() string {
	return uuid.New().String()
}

// Create mints a fresh id, passes it to build, inserts the resulting Room
// under that id, and returns the Room (whose ID field carries the id).
func (r *Registry) Create(build func(id string) *Room) *Room {
	id := NewRoomID()
	room := build(id)
	r.mu.Lock()
	r.rooms[id] = room
	r.mu.Unlock()
	return room
}

// Get looks up a room by id.
func (r *Registry) Get(id string) (*Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	return room, ok
}

// Delete removes a room from the registry and closes its actor. Intended
// to be called exactly once, when the room's last user has left.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	room, ok := r.rooms[id]
	if ok {
		delete(r.rooms, id)
	}
	r.mu.Unlock()
	if ok {
		room.Close()
	}
}

// All returns a snapshot slice of every current room, for REST
// enumeration and the janitor's staleness sweep.
func (r *Registry) All() []*Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	return out
}

// Exists reports whether a room id is currently registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[id]
	return ok
}

// EvictEmpty removes and closes every room that has zero members right
// now and was created at least olderThan before now, returning how many
// were evicted. Primarily a belt-and-suspenders
// safety net run by the janitor: the Session Router already deletes a
// room synchronously the moment its last user disconnects (§4.4), so
// under normal operation this finds nothing.
func (r *Registry) EvictEmpty(olderThan time.Duration, now time.Time) int {
	var stale []string
	r.mu.RLock()
	for id, room := range r.rooms {
		if room.UserCount() == 0 && now.Sub(room.CreatedAt) >= olderThan {
			stale = append(stale, id)
		}
	}
	r.mu.RUnlock()

	for _, id := range stale {
		r.Delete(id)
	}
	return len(stale)
}
