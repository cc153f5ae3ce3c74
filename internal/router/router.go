// Package router implements the session/event router: per-connection
// dispatch, room fan-out, and disconnect reclamation described in
// spec.md §4.1/§4.4. Handlers are split one-file-per-event across this
// package (grounded on the teacher's bribe/actions/*.go layout), each a
// method on Router so they share the registry/transport/timer
// collaborators directly rather than through an extra adapter layer.
package router

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"doodleserver/internal/gamefsm"
	"doodleserver/internal/model"
	"doodleserver/internal/roomregistry"
	"doodleserver/internal/timersvc"
	"doodleserver/internal/timing"
	"doodleserver/internal/transport"
	"doodleserver/internal/wordbank"
)

// Transport is the narrow send-side capability the router needs. It is
// satisfied by *transport.Hub in production and by a fake in tests, so
// this package never imports gorilla/websocket.
type Transport interface {
	EmitToOne(conn transport.ConnID, event string, payload any)
}

// Router owns dispatch of inbound events to room state and fan-out of
// resulting broadcasts. It holds no per-room state itself — every
// mutation happens inside a closure submitted to the target Room's actor.
type Router struct {
	logger    *zap.Logger
	transport Transport
	registry  *roomregistry.Registry
	bank      *wordbank.Bank
	clock     timing.Clock
	rng       timing.Rand
	timers    *timersvc.Service
}

// New builds a Router wired to its collaborators.
func New(logger *zap.Logger, tr Transport, registry *roomregistry.Registry, bank *wordbank.Bank, clock timing.Clock, rng timing.Rand, timers *timersvc.Service) *Router {
	return &Router{
		logger:    logger,
		transport: tr,
		registry:  registry,
		bank:      bank,
		clock:     clock,
		rng:       rng,
		timers:    timers,
	}
}

// HandleInbound is registered with the transport as its InboundHandler.
// It switches on the event name the transport already decoded; each
// handler unmarshals its own payload shape out of raw.
func (rt *Router) HandleInbound(conn transport.ConnID, event string, raw json.RawMessage) {
	switch event {
	case "create-room":
		rt.handleCreateRoom(conn, raw)
	case "join-room":
		rt.handleJoinRoom(conn, raw)
	case "drawing":
		rt.handleDrawing(conn, raw)
	case "clear-canvas":
		rt.handleClearCanvas(conn, raw)
	case "chat-message":
		rt.handleChatMessage(conn, raw)
	case "start-game":
		rt.handleStartGame(conn, raw)
	case "select-word":
		rt.handleSelectWord(conn, raw)
	case "request-hint":
		rt.handleRequestHint(conn, raw)
	case "end-round":
		rt.handleEndRound(conn, raw)
	default:
		rt.logger.Debug("dropping unrecognized inbound event", zap.String("event", event), zap.String("connId", string(conn)))
	}
}

// emitToOne implements spec §4.1's emitToOne(conn, event, payload) primitive.
func (rt *Router) emitToOne(conn transport.ConnID, event string, payload any) {
	rt.transport.EmitToOne(conn, event, payload)
}

// emitError wraps emitToOne for the §7 "Invalid input"/"Not found" error event.
func (rt *Router) emitError(conn transport.ConnID, message string) {
	rt.emitToOne(conn, "error", map[string]any{"error": message})
}

// broadcastToRoom implements spec §4.1's broadcastToRoom(roomId, event,
// payload, exclude?) primitive: it fans a payload out to every member of
// room except the one named by exclude (pass "" to exclude no one).
func (rt *Router) broadcastToRoom(room *roomregistry.Room, event string, payload any, exclude transport.ConnID) {
	for _, id := range room.UserIDs() {
		if transport.ConnID(id) == exclude {
			continue
		}
		rt.transport.EmitToOne(transport.ConnID(id), event, payload)
	}
}

// userWire is the wire shape of a User in every outbound payload that
// names one.
type userWire struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Color    string `json:"color"`
}

func toUserWire(u *model.User) userWire {
	return userWire{ID: u.UserID, Username: u.Username, Color: u.Color}
}

func usersWire(users []*model.User) []userWire {
	out := make([]userWire, len(users))
	for i, u := range users {
		out[i] = toUserWire(u)
	}
	return out
}

// gameStateWire is the snapshot a joiner receives so it can render the
// current lobby/round state without needing the secret word.
type gameStateWire struct {
	IsActive        bool                       `json:"isActive"`
	IsRoundActive   bool                       `json:"isRoundActive"`
	CurrentRound    int                        `json:"currentRound"`
	TotalRounds     int                        `json:"totalRounds"`
	DrawTime        int                        `json:"drawTime"`
	CurrentDrawerID string                     `json:"currentDrawerId"`
	Players         []gamefsm.LeaderboardEntry `json:"players"`
}

func gameStateSnapshot(g *gamefsm.Game) gameStateWire {
	return gameStateWire{
		IsActive:        g.IsActive,
		IsRoundActive:   g.IsRoundActive,
		CurrentRound:    g.CurrentRound,
		TotalRounds:     g.TotalRounds,
		DrawTime:        g.DrawTime,
		CurrentDrawerID: g.CurrentDrawerID,
		Players:         g.Leaderboard(),
	}
}

// nullableString renders an empty string as JSON null rather than "" —
// used for round-ended's word field when a round ends before any word
// was ever selected (drawer departure during WaitingForWord).
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func trimmed(s string) string { return strings.TrimSpace(s) }
