package gamefsm

import (
	"testing"
	"time"
)

func setupRoundWithDrawer(t *testing.T, rounds int, drawTime int, players ...string) (*Game, *fakeClock, string) {
	t.Helper()
	g, clock := newTestGame(players...)
	if err := g.Start(Settings{Rounds: rounds, DrawTime: drawTime}); err != nil {
		t.Fatal(err)
	}
	outcome := g.StartRound()
	if outcome.GameEnded {
		t.Fatal("game ended during setup")
	}
	if _, err := g.SelectWord(outcome.DrawerID, outcome.WordOptions[0]); err != nil {
		t.Fatal(err)
	}
	return g, clock, outcome.DrawerID
}

func TestTryGuessDrawerCannotGuess(t *testing.T) {
	g, clock, drawer := setupRoundWithDrawer(t, 1, 60, "a", "b")
	if _, err := g.TryGuess(drawer, g.CurrentWord, clock.now); err != ErrNotDrawer {
		t.Fatalf("want ErrNotDrawer, got %v", err)
	}
}

func TestTryGuessScoringByOrderAndTimeBonus(t *testing.T) {
	g, clock, drawer := setupRoundWithDrawer(t, 1, 60, "a", "b", "c", "d")
	word := g.CurrentWord

	var guessers []string
	for _, p := range g.Players {
		if p.ID != drawer {
			guessers = append(guessers, p.ID)
		}
	}

	clock.Advance(10 * time.Second) // elapsed=10, timeBonus = floor((60-10)/2) = 25
	outcome, err := g.TryGuess(guessers[0], word, clock.now)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Points != 125 {
		t.Fatalf("guess 1: points = %d, want 125", outcome.Points)
	}

	clock.Advance(5 * time.Second) // elapsed=15, timeBonus = floor((60-15)/2) = 22
	outcome, err = g.TryGuess(guessers[1], word, clock.now)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Points != 97 {
		t.Fatalf("guess 2: points = %d, want 97 (75+22)", outcome.Points)
	}

	outcome, err = g.TryGuess(guessers[2], word, clock.now)
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.AllGuessed {
		t.Fatal("third guesser is the last non-drawer: AllGuessed should be true")
	}

	drawerScore := g.Player(drawer).Score
	if drawerScore != 75 { // +25 per correct guess, 3 correct guesses
		t.Fatalf("drawer score = %d, want 75", drawerScore)
	}
}

func TestTryGuessAlreadyGuessedDoesNotDoubleScore(t *testing.T) {
	g, clock, drawer := setupRoundWithDrawer(t, 1, 60, "a", "b")
	word := g.CurrentWord
	var guesser string
	for _, p := range g.Players {
		if p.ID != drawer {
			guesser = p.ID
		}
	}

	first, err := g.TryGuess(guesser, word, clock.now)
	if err != nil || !first.Matched {
		t.Fatalf("first guess should match: %+v, err=%v", first, err)
	}
	scoreAfterFirst := g.Player(guesser).Score

	second, err := g.TryGuess(guesser, word, clock.now)
	if err != nil {
		t.Fatal(err)
	}
	if !second.AlreadyGuessed {
		t.Fatal("second identical guess should report AlreadyGuessed")
	}
	if g.Player(guesser).Score != scoreAfterFirst {
		t.Fatalf("score changed on a repeat guess: %d -> %d", scoreAfterFirst, g.Player(guesser).Score)
	}
}

func TestTryGuessCaseAndWhitespaceInsensitive(t *testing.T) {
	g, clock, drawer := setupRoundWithDrawer(t, 1, 60, "a", "b")
	word := g.CurrentWord
	var guesser string
	for _, p := range g.Players {
		if p.ID != drawer {
			guesser = p.ID
		}
	}
	outcome, err := g.TryGuess(guesser, "  "+upper(word)+"  ", clock.now)
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Matched {
		t.Fatalf("guess should match ignoring case/whitespace: %q vs %q", word, upper(word))
	}
}

func upper(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 32
		}
	}
	return string(out)
}
