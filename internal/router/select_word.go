package router

import (
	"encoding/json"
	"time"

	"doodleserver/internal/transport"
)

type selectWordPayload struct {
	RoomID string `json:"roomId"`
	Word   string `json:"word"`
}

// handleSelectWord implements spec §4.1/§4.2 select-word. Only the
// current drawer may call it, only with one of the offered options, and
// only while no round is already active — the REDESIGN FLAG applied per
// DESIGN.md: a second select-word while isRoundActive is rejected rather
// than silently re-arming the round-end timer.
func (rt *Router) handleSelectWord(conn transport.ConnID, raw json.RawMessage) {
	var p selectWordPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.RoomID == "" {
		return
	}
	room, ok := rt.registry.Get(p.RoomID)
	if !ok {
		return
	}
	userID := string(conn)

	room.Submit(func() {
		result, err := room.Game.SelectWord(userID, p.Word)
		if err != nil {
			return
		}

		rt.emitToOne(conn, "word-selected", map[string]any{"word": result.Word})
		rt.broadcastToRoom(room, "word-selected", map[string]any{
			"maskedWord": result.MaskedWord,
			"wordLength": result.WordLength,
		}, conn)

		rt.scheduleEndRound(room, time.Duration(result.DrawTime)*time.Second)
	})
}
