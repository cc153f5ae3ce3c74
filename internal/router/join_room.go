package router

import (
	"encoding/json"

	"go.uber.org/zap"

	"doodleserver/internal/model"
	"doodleserver/internal/transport"
)

type joinRoomPayload struct {
	RoomID   string `json:"roomId"`
	Username string `json:"username"`
}

// handleJoinRoom implements spec §4.1 join-room. Joining is idempotent
// on a duplicate connection id (round-trip property, spec §8): if the
// connection is already a member, it just gets the room-joined snapshot
// again without a duplicate user-joined broadcast.
func (rt *Router) handleJoinRoom(conn transport.ConnID, raw json.RawMessage) {
	var p joinRoomPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		rt.emitError(conn, "malformed join-room payload")
		return
	}
	p.Username = trimmed(p.Username)
	if p.RoomID == "" || p.Username == "" {
		rt.emitError(conn, "roomId and username are required")
		return
	}

	room, ok := rt.registry.Get(p.RoomID)
	if !ok {
		rt.emitError(conn, "room not found")
		return
	}

	userID := string(conn)
	room.Submit(func() {
		if _, exists := room.User(userID); !exists {
			now := rt.clock.Now()
			color := model.Palette[rt.rng.Intn(len(model.Palette))]
			u := &model.User{UserID: userID, Username: p.Username, Color: color, JoinedAt: now}
			room.AddUser(u)
			room.Game.AddPlayer(userID, p.Username)
			rt.broadcastToRoom(room, "user-joined", map[string]any{"user": toUserWire(u)}, conn)
			rt.logger.Info("user joined room", zap.String("roomId", room.ID), zap.String("userId", userID))
		}

		u, _ := room.User(userID)
		rt.emitToOne(conn, "room-joined", map[string]any{
			"roomId":      room.ID,
			"roomName":    room.Name,
			"user":        toUserWire(u),
			"users":       usersWire(room.Users()),
			"drawingData": room.Log.Events(),
			"gameState":   gameStateSnapshot(room.Game),
		})
	})
}
