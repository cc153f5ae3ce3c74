package router

import (
	"encoding/json"

	"doodleserver/internal/transport"
)

type clearCanvasPayload struct {
	RoomID string `json:"roomId"`
}

// handleClearCanvas implements spec §4.1 clear-canvas. Per the decided
// Open Question (§9), the server honors a clear from any member,
// including a non-drawer during an active round — the discrepancy with
// the client UI's own permission check is preserved rather than papered
// over, as spec.md instructs.
func (rt *Router) handleClearCanvas(conn transport.ConnID, raw json.RawMessage) {
	var p clearCanvasPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.RoomID == "" {
		return
	}
	room, ok := rt.registry.Get(p.RoomID)
	if !ok {
		return
	}
	userID := string(conn)

	room.Submit(func() {
		if _, exists := room.User(userID); !exists {
			return
		}
		room.Log.Clear()
		rt.broadcastToRoom(room, "canvas-cleared", nil, "")
	})
}
