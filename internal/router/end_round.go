package router

import (
	"encoding/json"

	"doodleserver/internal/transport"
)

type endRoundPayload struct {
	RoomID string `json:"roomId"`
}

// handleEndRound implements spec §4.1 end-round: manual round
// termination, equivalent to the scheduled timer firing early. Idempotent
// per spec §8: a no-op while no round is active (Game.EndRound already
// encodes this).
func (rt *Router) handleEndRound(conn transport.ConnID, raw json.RawMessage) {
	var p endRoundPayload
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
		result, ok := rt.endActiveRound(room)
		if !ok {
			return
		}
		rt.finishRound(room, result)
	})
}
