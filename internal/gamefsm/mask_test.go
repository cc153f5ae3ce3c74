package gamefsm

import "testing"

func TestMaskWordFullyMasked(t *testing.T) {
	got := maskWord("cat", nil)
	want := "_ _ _"
	if got != want {
		t.Fatalf("maskWord(%q) = %q, want %q", "cat", got, want)
	}
}

func TestMaskWordPreservesWhitespaceAndPunctuation(t *testing.T) {
	got := maskWord("ice-cream", nil)
	want := "_ _ _ - _ _ _ _ _"
	if got != want {
		t.Fatalf("maskWord with punctuation = %q, want %q", got, want)
	}

	got = maskWord("ice cream", nil)
	want = "_ _ _   _ _ _ _ _"
	if got != want {
		t.Fatalf("maskWord with whitespace = %q, want %q", got, want)
	}
}

func TestMaskWordRevealsGivenIndices(t *testing.T) {
	got := maskWord("cat", map[int]bool{1: true})
	want := "_ a _"
	if got != want {
		t.Fatalf("maskWord with reveal = %q, want %q", got, want)
	}
}

// TestHintPositionsIndependentPerCall documents the decided Open Question:
// hints do not accumulate revealed positions across calls.
func TestHintPositionsIndependentPerCall(t *testing.T) {
	g, _ := newTestGame("a", "b")
	g.Start(Settings{Rounds: 1, DrawTime: 60})
	outcome := g.StartRound()
	if _, err := g.SelectWord(outcome.DrawerID, outcome.WordOptions[0]); err != nil {
		t.Fatal(err)
	}

	first, err := g.RequestHint(1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.RequestHint(1)
	if err != nil {
		t.Fatal(err)
	}
	// With a fake Rand whose Shuffle is a no-op, both calls reveal the
	// same (first) index — demonstrating there is no accumulated state
	// carried between independent RequestHint calls.
	if first != second {
		t.Fatalf("independent hint calls with a deterministic Rand should reveal the same position: %q vs %q", first, second)
	}
}

func TestRequestHintRequiresActiveRound(t *testing.T) {
	g, _ := newTestGame("a")
	g.Start(Settings{Rounds: 1, DrawTime: 60})
	g.StartRound() // WaitingForWord: no word selected yet
	if _, err := g.RequestHint(1); err != ErrNoRoundActive {
		t.Fatalf("want ErrNoRoundActive, got %v", err)
	}
}
