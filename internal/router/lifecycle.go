package router

import (
	"time"

	"go.uber.org/zap"

	"doodleserver/internal/gamefsm"
	"doodleserver/internal/roomregistry"
	"doodleserver/internal/transport"
)

// interRoundDelay is the pause between a round ending and the next one
// starting (or the game ending), per spec §4.2.
const interRoundDelay = 5 * time.Second

// allGuessedDelay is the pause after the last non-drawer guesses correctly
// before the round is ended, letting the final correct-guess broadcast
// visibly arrive first (spec §4.2/§4.3).
const allGuessedDelay = 2 * time.Second

// wordSelectDelay is the pause after start-game before the first
// startRound runs (spec §4.1).
const wordSelectDelay = 3 * time.Second

// endActiveRound cancels the Game's scheduled round-end timer (if any,
// idempotently) and ends the current round via the manual/natural path.
// Every caller that can end a round this way funnels through here so
// cancellation discipline (spec §4.5/§9) never needs repeating.
func (rt *Router) endActiveRound(room *roomregistry.Room) (gamefsm.RoundEndResult, bool) {
	if room.Game.RoundEndTimer != nil {
		room.Game.RoundEndTimer.Cancel()
		room.Game.RoundEndTimer = nil
	}
	return room.Game.EndRound()
}

// endDrawerDeparture is endActiveRound's counterpart for the drawer
// disconnect path, which must also fire out of WaitingForWord (spec
// §4.2 "Drawer departure mid-round").
func (rt *Router) endDrawerDeparture(room *roomregistry.Room) (gamefsm.RoundEndResult, bool) {
	if room.Game.RoundEndTimer != nil {
		room.Game.RoundEndTimer.Cancel()
		room.Game.RoundEndTimer = nil
	}
	return room.Game.ForceEndRoundForDrawerDeparture()
}

// scheduleEndRound arranges for the active round to end after delay,
// cancelling whatever round-end timer is already pending first (e.g. the
// full drawTime timer, when every non-drawer guesses early) so only one
// timer can ever end a given round.
func (rt *Router) scheduleEndRound(room *roomregistry.Room, delay time.Duration) {
	if room.Game.RoundEndTimer != nil {
		room.Game.RoundEndTimer.Cancel()
	}
	handle := rt.timers.After(delay, func() {
		room.Submit(func() {
			result, ok := rt.endActiveRound(room)
			if !ok {
				return
			}
			rt.finishRound(room, result)
		})
	})
	room.Game.RoundEndTimer = handle
}

// finishRound broadcasts round-ended and schedules whatever comes next:
// game-ended if this was the last round, otherwise the next startRound.
func (rt *Router) finishRound(room *roomregistry.Room, result gamefsm.RoundEndResult) {
	rt.broadcastToRoom(room, "round-ended", map[string]any{
		"word":   nullableString(result.Word),
		"scores": result.Scores,
	}, "")

	if result.GameEndsNext {
		rt.schedulePending(room, interRoundDelay, func() {
			end := room.Game.EndGame()
			rt.broadcastGameEnded(room, end)
		})
		return
	}

	rt.schedulePending(room, interRoundDelay, func() { rt.runStartRound(room) })
}

// schedulePending arranges for fn to run, serialized on room's actor,
// after delay, storing the handle on room.PendingTimer so a room torn
// down mid-gap (every member disconnects during the inter-round or
// word-select pause) cancels it through the same purpose-built path
// Game.RoundEndTimer already uses, rather than relying on Room.Submit's
// closed-flag guard to swallow the late callback. Cancels whatever
// pending schedule already exists first, mirroring scheduleEndRound.
func (rt *Router) schedulePending(room *roomregistry.Room, delay time.Duration, fn func()) {
	if room.PendingTimer != nil {
		room.PendingTimer.Cancel()
	}
	room.PendingTimer = rt.timers.After(delay, func() {
		room.Submit(func() {
			room.PendingTimer = nil
			fn()
		})
	})
}

// runStartRound runs the Idle/WaitingForWord -> WaitingForWord transition
// and tells the room about it, or ends the game if the round counter or
// word bank ran out (spec §4.2 startRound).
func (rt *Router) runStartRound(room *roomregistry.Room) {
	outcome := room.Game.StartRound()
	if outcome.GameEnded {
		rt.broadcastGameEnded(room, outcome.GameEnd)
		return
	}

	room.Log.Clear()
	rt.broadcastToRoom(room, "canvas-cleared", nil, "")

	drawerConn := transport.ConnID(outcome.DrawerID)
	rt.emitToOne(drawerConn, "round-started-drawer", map[string]any{
		"drawer":      outcome.DrawerID,
		"wordOptions": outcome.WordOptions,
		"round":       outcome.Round,
		"totalRounds": outcome.TotalRounds,
	})
	rt.broadcastToRoom(room, "round-started-guesser", map[string]any{
		"drawer":      outcome.DrawerID,
		"round":       outcome.Round,
		"totalRounds": outcome.TotalRounds,
	}, drawerConn)

	rt.logger.Info("round started", zap.String("roomId", room.ID), zap.Int("round", outcome.Round), zap.String("drawerId", outcome.DrawerID))
}

func (rt *Router) broadcastGameEnded(room *roomregistry.Room, result gamefsm.GameEndResult) {
	rt.broadcastToRoom(room, "game-ended", map[string]any{
		"winner": result.Winner,
		"scores": result.Scores,
	}, "")
	rt.logger.Info("game ended", zap.String("roomId", room.ID), zap.String("winnerId", result.Winner.ID))
}
