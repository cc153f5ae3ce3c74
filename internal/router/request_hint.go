package router

import (
	"encoding/json"

	"doodleserver/internal/transport"
)

type requestHintPayload struct {
	RoomID string `json:"roomId"`
}

// hintRevealCount is how many fresh positions a single request-hint call
// reveals. Spec §4.2 samples fresh positions independently per call with
// no accumulation across calls (decided Open Question, see DESIGN.md),
// so this is the "one random character position" spec §4.1 describes.
const hintRevealCount = 1

// handleRequestHint implements spec §4.1 request-hint: ignored unless a
// round is active, broadcast to every guesser but not the drawer (who
// already knows the word).
func (rt *Router) handleRequestHint(conn transport.ConnID, raw json.RawMessage) {
	var p requestHintPayload
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
		hint, err := room.Game.RequestHint(hintRevealCount)
		if err != nil {
			return
		}
		drawerConn := transport.ConnID(room.Game.CurrentDrawerID)
		rt.broadcastToRoom(room, "hint-revealed", map[string]any{"hint": hint}, drawerConn)
	})
}
