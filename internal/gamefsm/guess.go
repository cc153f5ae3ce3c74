package gamefsm

import (
	"math"
	"strings"
	"time"
)

// GuessOutcome is the result of TryGuess: whether the text matched the
// current word, whether the sender had already guessed this round
// (in which case Matched alone is not enough to award points), and, on a
// fresh correct guess, the points awarded and whether every non-drawer
// has now guessed.
type GuessOutcome struct {
	Matched        bool
	AlreadyGuessed bool
	Points         int
	AllGuessed     bool
}

// baseForOrder returns the base score for the guess-order'th correct
// guess in a round (1-based).
func baseForOrder(order int) int {
	switch order {
	case 1:
		return 100
	case 2:
		return 75
	case 3:
		return 50
	default:
		return 25
	}
}

// TryGuess evaluates message as a guess against the current word on
// behalf of userID. The caller (the chat-message action) is responsible
// for having already established that a round is active and that userID
// is not the current drawer — TryGuess re-checks the drawer condition
// defensively and returns ErrNotDrawer if violated.
func (g *Game) TryGuess(userID, message string, now time.Time) (GuessOutcome, error) {
	if userID == g.CurrentDrawerID {
		return GuessOutcome{}, ErrNotDrawer
	}
	player := g.Player(userID)
	if player == nil {
		return GuessOutcome{}, ErrUnknownPlayer
	}

	matched := strings.EqualFold(strings.TrimSpace(message), g.CurrentWord)
	if !matched {
		return GuessOutcome{Matched: false}, nil
	}
	if player.HasGuessed {
		return GuessOutcome{Matched: true, AlreadyGuessed: true}, nil
	}

	order := len(g.GuessedPlayers) + 1
	elapsed := now.Sub(g.RoundStartTime).Seconds()
	timeBonus := int(math.Floor((float64(g.DrawTime) - elapsed) / 2))
	if timeBonus < 0 {
		timeBonus = 0
	}
	points := baseForOrder(order) + timeBonus

	player.HasGuessed = true
	player.Score += points
	g.GuessedPlayers = append(g.GuessedPlayers, userID)

	if drawer := g.Player(g.CurrentDrawerID); drawer != nil {
		drawer.Score += 25
	}

	return GuessOutcome{
		Matched:    true,
		Points:     points,
		AllGuessed: g.allNonDrawersGuessed(),
	}, nil
}

func (g *Game) allNonDrawersGuessed() bool {
	nonDrawers := 0
	for _, p := range g.Players {
		if p.ID != g.CurrentDrawerID {
			nonDrawers++
		}
	}
	return nonDrawers > 0 && len(g.GuessedPlayers) >= nonDrawers
}
