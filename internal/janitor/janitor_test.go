package janitor

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"doodleserver/internal/drawinglog"
	"doodleserver/internal/gamefsm"
	"doodleserver/internal/model"
	"doodleserver/internal/roomregistry"
	"doodleserver/internal/timing"
	"doodleserver/internal/wordbank"
)

func seedEmptyRoomAt(registry *roomregistry.Registry, createdAt time.Time) *roomregistry.Room {
	bank := wordbank.New([]wordbank.Word{{Text: "apple"}})
	return registry.Create(func(id string) *roomregistry.Room {
		game := gamefsm.New(bank, timing.RealClock{}, timing.NewLockedRand())
		return roomregistry.NewRoom(id, "room", drawinglog.New(), game, createdAt)
	})
}

func TestSweepEvictsOnlyRoomsOlderThanStaleAfter(t *testing.T) {
	registry := roomregistry.New()
	now := time.Now()
	stale := seedEmptyRoomAt(registry, now.Add(-staleAfter-time.Minute))
	fresh := seedEmptyRoomAt(registry, now)

	j := New(registry, func() time.Time { return now }, zap.NewNop())
	j.sweep()

	if registry.Exists(stale.ID) {
		t.Fatal("sweep should have evicted the stale empty room")
	}
	if !registry.Exists(fresh.ID) {
		t.Fatal("sweep should not evict a freshly created empty room")
	}
}

func TestSweepLeavesOccupiedRoomsAlone(t *testing.T) {
	registry := roomregistry.New()
	now := time.Now()
	room := seedEmptyRoomAt(registry, now.Add(-2*staleAfter))
	room.AddUser(&model.User{UserID: "u1", Username: "alice", Color: "#fff"})

	j := New(registry, func() time.Time { return now }, zap.NewNop())
	j.sweep()

	if !registry.Exists(room.ID) {
		t.Fatal("sweep should never evict a room with members, regardless of age")
	}
}

func TestStartAndStop(t *testing.T) {
	registry := roomregistry.New()
	j := New(registry, time.Now, zap.NewNop())
	if err := j.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	j.Stop()
}
