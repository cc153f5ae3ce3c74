package router

import (
	"encoding/json"

	"go.uber.org/zap"

	"doodleserver/internal/gamefsm"
	"doodleserver/internal/transport"
)

type startGamePayload struct {
	RoomID   string `json:"roomId"`
	Settings struct {
		Rounds   int `json:"rounds"`
		DrawTime int `json:"drawTime"`
	} `json:"settings"`
}

// handleStartGame implements spec §4.1 start-game. Invalid settings or
// an already-active game are silent no-ops (Game.Start already encodes
// both rules); only a genuine Idle -> active transition clears the
// Drawing Log and kicks off the wordSelectDelay countdown to the first
// round.
func (rt *Router) handleStartGame(conn transport.ConnID, raw json.RawMessage) {
	var p startGamePayload
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

		wasActive := room.Game.IsActive
		settings := gamefsm.Settings{Rounds: p.Settings.Rounds, DrawTime: p.Settings.DrawTime}
		if settings.Rounds == 0 && settings.DrawTime == 0 {
			settings = gamefsm.DefaultSettings()
		}

		if err := room.Game.Start(settings); err != nil {
			return
		}
		if wasActive {
			return
		}

		room.Log.Clear()
		rt.broadcastToRoom(room, "canvas-cleared", nil, "")
		rt.broadcastToRoom(room, "game-started", map[string]any{
			"rounds":   room.Game.TotalRounds,
			"drawTime": room.Game.DrawTime,
		}, "")

		rt.logger.Info("game started", zap.String("roomId", room.ID), zap.Int("rounds", room.Game.TotalRounds), zap.Int("drawTime", room.Game.DrawTime))

		rt.schedulePending(room, wordSelectDelay, func() { rt.runStartRound(room) })
	})
}
