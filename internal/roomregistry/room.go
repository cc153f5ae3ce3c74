// Package roomregistry owns the map from RoomId to Room and the per-room
// actor that serializes every mutation against that room's state, per the
// chosen concurrency realization in SPEC_FULL.md §7.
package roomregistry

import (
	"sync"
	"time"

	"doodleserver/internal/drawinglog"
	"doodleserver/internal/gamefsm"
	"doodleserver/internal/model"
	"doodleserver/internal/timersvc"
)

// mailboxSize bounds how many pending commands a room will queue before
// Submit starts blocking the caller. Generous enough that a burst of
// draw events from one drawer never needs to block the transport's read
// pump under normal load.
const mailboxSize = 256

// Room is a single game room: its membership, its Drawing Log, its Game,
// and the single-goroutine actor that guarantees no two operations on
// this room interleave.
type Room struct {
	ID        string
	Name      string
	CreatedAt time.Time

	Log  *drawinglog.Log
	Game *gamefsm.Game

	// PendingTimer holds the inter-round / game-end schedule so a
	// terminal transition (disconnect emptying the room, a new round
	// starting early) can cancel a superseded delay.
	PendingTimer *timersvc.Handle

	mu     sync.Mutex
	users  []*model.User
	byID   map[string]*model.User
	mailbox chan func()
	closed bool
}

// NewRoom constructs a Room and starts its actor goroutine.
func NewRoom(id, name string, log *drawinglog.Log, game *gamefsm.Game, now time.Time) *Room {
	r := &Room{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		Log:       log,
		Game:      game,
		byID:      make(map[string]*model.User),
		mailbox:   make(chan func(), mailboxSize),
	}
	go r.run()
	return r
}

func (r *Room) run() {
	for cmd := range r.mailbox {
		cmd()
	}
}

// Submit enqueues fn to run serially on this room's actor goroutine. It
// is safe to call from any goroutine (the transport's per-connection read
// pump, a fired timer callback, the disconnect scanner). Submissions
// after the room has been closed are dropped silently — by the time a
// room closes it has no members left to generate further events.
func (r *Room) Submit(fn func()) {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return
	}
	// Close() can race a concurrent Submit past the closed check above
	// (it last resorts to closing the channel itself); recover rather than
	// let a send-on-closed-channel panic take the whole process down.
	defer func() { recover() }()
	r.mailbox <- fn
}

// Close stops the actor goroutine. Must only be called once the Registry
// has already removed this room (so no new Submit calls can race past
// the closed check above in a way that reorders behind Close).
func (r *Room) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()
	if r.PendingTimer != nil {
		r.PendingTimer.Cancel()
	}
	if r.Game != nil && r.Game.RoundEndTimer != nil {
		r.Game.RoundEndTimer.Cancel()
	}
	close(r.mailbox)
}

// AddUser appends a user to the room's membership, unique by id. Callers
// run this from within a Submit'd command, so no additional locking is
// required for the slice/map themselves — but Users()/UserCount() below
// are read from other goroutines (REST introspection, the disconnect
// scanner), hence the mutex guarding the membership view.
func (r *Room) AddUser(u *model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[u.UserID]; exists {
		return
	}
	r.users = append(r.users, u)
	r.byID[u.UserID] = u
}

// RemoveUser removes a user by id, reporting whether it was present.
func (r *Room) RemoveUser(id string) (removed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, u := range r.users {
		if u.UserID == id {
			r.users = append(r.users[:i:i], r.users[i+1:]...)
			break
		}
	}
	return true
}

// User looks up a member by id.
func (r *Room) User(id string) (*model.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	return u, ok
}

// Users returns a copy of the current membership in insertion order.
func (r *Room) Users() []*model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.User, len(r.users))
	copy(out, r.users)
	return out
}

// UserCount reports the current membership size.
func (r *Room) UserCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// UserIDs returns the ids of the current membership, in insertion order —
// used for fan-out broadcasts.
func (r *Room) UserIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.users))
	for i, u := range r.users {
		ids[i] = u.UserID
	}
	return ids
}
