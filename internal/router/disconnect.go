package router

import (
	"go.uber.org/zap"

	"doodleserver/internal/roomregistry"
	"doodleserver/internal/transport"
)

// HandleDisconnect implements spec §4.4: on transport-level disconnect,
// scan every room for a member with this connection id (at most one
// match, since a UserId appears in at most one room per the data-model
// invariant) and reconcile it. This is registered with the transport as
// its DisconnectHandler.
func (rt *Router) HandleDisconnect(conn transport.ConnID) {
	userID := string(conn)
	for _, room := range rt.registry.All() {
		room := room // pre-1.22 loop-var capture: each closure must see its own room
		room.Submit(func() { rt.reconcileDeparture(room, userID) })
	}
}

// reconcileDeparture removes userID from room if present, broadcasts
// user-left, force-ends the round if the departing user was the current
// drawer, and deletes the room once it's empty — all per spec §4.4.
func (rt *Router) reconcileDeparture(room *roomregistry.Room, userID string) {
	u, ok := room.User(userID)
	if !ok {
		return
	}

	wasDrawer := room.Game.RemovePlayer(userID)
	room.RemoveUser(userID)

	rt.broadcastToRoom(room, "user-left", map[string]any{"user": toUserWire(u)}, "")
	rt.logger.Info("user left room", zap.String("roomId", room.ID), zap.String("userId", userID))

	if wasDrawer {
		if result, ok := rt.endDrawerDeparture(room); ok {
			rt.finishRound(room, result)
		}
	}

	if room.UserCount() == 0 {
		rt.registry.Delete(room.ID)
		rt.logger.Info("room destroyed, last user left", zap.String("roomId", room.ID))
	}
}
