package router

import (
	"encoding/json"

	"go.uber.org/zap"

	"doodleserver/internal/gamefsm"
	"doodleserver/internal/model"
	"doodleserver/internal/roomregistry"
	"doodleserver/internal/transport"
)

type chatMessagePayload struct {
	RoomID  string `json:"roomId"`
	Message string `json:"message"`
}

// handleChatMessage implements spec §4.3 chat/guess adjudication. A
// message from a non-drawer during an active round is evaluated as a
// guess first; only if it isn't a fresh correct guess does it fall
// through to an ordinary chat-message broadcast (itself tagged isGuess
// when it was a wrong guess).
func (rt *Router) handleChatMessage(conn transport.ConnID, raw json.RawMessage) {
	var p chatMessagePayload
	if err := json.Unmarshal(raw, &p); err != nil || p.RoomID == "" {
		return
	}
	room, ok := rt.registry.Get(p.RoomID)
	if !ok {
		return
	}
	userID := string(conn)

	room.Submit(func() {
		sender, exists := room.User(userID)
		if !exists {
			return
		}

		game := room.Game
		isDrawer := game.CurrentDrawerID == userID
		isGuessAttempt := game.IsRoundActive && !isDrawer

		if isGuessAttempt {
			outcome, err := game.TryGuess(userID, p.Message, rt.clock.Now())
			if err != nil {
				rt.logger.Warn("dropping guess evaluation error", zap.Error(err), zap.String("roomId", room.ID), zap.String("userId", userID))
				return
			}
			if outcome.Matched {
				if !outcome.AlreadyGuessed {
					rt.handleCorrectGuess(room, conn, sender, game.CurrentWord, outcome)
				}
				// A correct guess (fresh or repeated) is never echoed as
				// chat — this prevents leaking the word to other guessers.
				return
			}
			// Wrong guess: falls through to the normal chat broadcast below.
		}

		rt.broadcastToRoom(room, "chat-message", map[string]any{
			"user":      toUserWire(sender),
			"message":   p.Message,
			"timestamp": rt.clock.Now(),
			"isGuess":   isGuessAttempt,
		}, "")
	})
}

// handleCorrectGuess awards points, broadcasts correct-guess (withholding
// the word from everyone but the guesser), recomputes the leaderboard,
// and schedules round-end if this guess completed the round (spec §4.2
// "if every non-drawer has guessed, schedule endRound after 2s").
func (rt *Router) handleCorrectGuess(room *roomregistry.Room, conn transport.ConnID, sender *model.User, word string, outcome gamefsm.GuessOutcome) {
	rt.broadcastToRoom(room, "correct-guess", map[string]any{
		"player": toUserWire(sender),
		"points": outcome.Points,
		"word":   nil,
	}, conn)
	rt.emitToOne(conn, "correct-guess", map[string]any{
		"player": toUserWire(sender),
		"points": outcome.Points,
		"word":   word,
	})
	rt.broadcastToRoom(room, "leaderboard-update", map[string]any{
		"leaderboard": room.Game.Leaderboard(),
	}, "")

	rt.logger.Info("correct guess", zap.String("roomId", room.ID), zap.String("userId", sender.UserID), zap.Int("points", outcome.Points))

	if outcome.AllGuessed {
		rt.scheduleEndRound(room, allGuessedDelay)
	}
}
