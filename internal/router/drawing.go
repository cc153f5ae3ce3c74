package router

import (
	"encoding/json"

	"doodleserver/internal/model"
	"doodleserver/internal/transport"
)

type drawingDataWire struct {
	Type      model.DrawingEventType `json:"type"`
	Points    []model.Point          `json:"points"`
	Color     string                 `json:"color"`
	LineWidth float64                `json:"lineWidth"`
}

type drawingPayload struct {
	RoomID      string          `json:"roomId"`
	DrawingData drawingDataWire `json:"drawingData"`
}

// handleDrawing implements spec §4.1 drawing: while a round is active,
// only the current drawer's strokes are accepted; otherwise any member
// may draw (e.g. lobby doodling before a game starts). Accepted strokes
// are appended to the Drawing Log and broadcast to everyone but the
// sender, who already rendered it locally.
func (rt *Router) handleDrawing(conn transport.ConnID, raw json.RawMessage) {
	var p drawingPayload
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
		if room.Game.IsRoundActive && room.Game.CurrentDrawerID != userID {
			return
		}

		room.Log.Append(model.DrawingEvent{
			Type:      p.DrawingData.Type,
			Points:    p.DrawingData.Points,
			Color:     p.DrawingData.Color,
			LineWidth: p.DrawingData.LineWidth,
			UserID:    userID,
			Timestamp: rt.clock.Now(),
		})

		rt.broadcastToRoom(room, "drawing", map[string]any{
			"drawingData": p.DrawingData,
			"userId":      userID,
		}, conn)
	})
}
