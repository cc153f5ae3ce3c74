package router

import (
	"encoding/json"

	"go.uber.org/zap"

	"doodleserver/internal/drawinglog"
	"doodleserver/internal/gamefsm"
	"doodleserver/internal/model"
	"doodleserver/internal/roomregistry"
	"doodleserver/internal/transport"
)

type createRoomPayload struct {
	RoomName string `json:"roomName"`
	Username string `json:"username"`
}

// handleCreateRoom implements spec §4.1 create-room: mints a RoomId,
// builds an empty Room with the originator as its first member (drawn a
// palette color) and its first Game player, and replies room-created to
// the originator only.
func (rt *Router) handleCreateRoom(conn transport.ConnID, raw json.RawMessage) {
	var p createRoomPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		rt.emitError(conn, "malformed create-room payload")
		return
	}
	p.RoomName = trimmed(p.RoomName)
	p.Username = trimmed(p.Username)
	if p.RoomName == "" || p.Username == "" {
		rt.emitError(conn, "roomName and username are required")
		return
	}

	userID := string(conn)
	now := rt.clock.Now()
	color := model.Palette[rt.rng.Intn(len(model.Palette))]
	user := &model.User{UserID: userID, Username: p.Username, Color: color, JoinedAt: now}

	room := rt.registry.Create(func(id string) *roomregistry.Room {
		r := roomregistry.NewRoom(id, p.RoomName, drawinglog.New(), gamefsm.New(rt.bank, rt.clock, rt.rng), now)
		r.AddUser(user)
		r.Game.AddPlayer(userID, p.Username)
		return r
	})

	rt.logger.Info("room created", zap.String("roomId", room.ID), zap.String("userId", userID))

	rt.emitToOne(conn, "room-created", map[string]any{
		"roomId":   room.ID,
		"roomName": room.Name,
		"user":     toUserWire(user),
	})
}
