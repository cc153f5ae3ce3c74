package gamefsm

// RoundStartOutcome is the result of StartRound: either a fresh round
// began, or the round counter overran totalRounds (or the word bank ran
// dry) and the game ended instead.
type RoundStartOutcome struct {
	GameEnded   bool
	GameEnd     GameEndResult
	DrawerID    string
	WordOptions []string
	Round       int
	TotalRounds int
}

// StartRound implements the Idle -> WaitingForWord transition (spec §4.2).
func (g *Game) StartRound() RoundStartOutcome {
	g.CurrentRound++
	if g.CurrentRound > g.TotalRounds || len(g.Players) == 0 {
		return RoundStartOutcome{GameEnded: true, GameEnd: g.endGameInternal()}
	}

	idx := (g.CurrentRound - 1) % len(g.Players)
	drawer := g.Players[idx]

	opts := g.bank.PickUnused(wordOptionCount, g.usedSet, g.rng)
	if len(opts) == 0 {
		// Word bank exhausted: end the game rather than offer a round
		// with zero word options (decided Open Question, see DESIGN.md).
		return RoundStartOutcome{GameEnded: true, GameEnd: g.endGameInternal()}
	}

	g.CurrentDrawerID = drawer.ID
	g.CurrentWord = ""
	g.WordOptions = opts
	g.GuessedPlayers = nil
	for _, p := range g.Players {
		p.HasGuessed = false
	}

	return RoundStartOutcome{
		DrawerID:    drawer.ID,
		WordOptions: opts,
		Round:       g.CurrentRound,
		TotalRounds: g.TotalRounds,
	}
}

// WordSelectResult is the outcome of a successful SelectWord call.
type WordSelectResult struct {
	Word       string
	MaskedWord string
	WordLength int
	DrawTime   int
}

// SelectWord implements the WaitingForWord -> Drawing transition. Only
// the current drawer may call it, and only while no round is currently
// active — a second select-word while isRoundActive is a Forbidden by
// state drop (the REDESIGN FLAG spec.md calls for over the source's
// fire-and-forget behavior).
func (g *Game) SelectWord(userID, word string) (*WordSelectResult, error) {
	if userID != g.CurrentDrawerID {
		return nil, ErrNotDrawer
	}
	if g.IsRoundActive {
		return nil, ErrRoundAlreadyOn
	}
	offered := false
	for _, w := range g.WordOptions {
		if w == word {
			offered = true
			break
		}
	}
	if !offered {
		return nil, ErrWordNotOffered
	}

	g.CurrentWord = word
	g.UsedWords = append(g.UsedWords, word)
	g.usedSet[word] = true
	g.RoundStartTime = g.clock.Now()
	g.IsRoundActive = true

	return &WordSelectResult{
		Word:       word,
		MaskedWord: maskWord(word, nil),
		WordLength: len([]rune(word)),
		DrawTime:   g.DrawTime,
	}, nil
}

// RequestHint reveals n distinct character positions of the current
// word. Only valid while a round is active.
func (g *Game) RequestHint(n int) (string, error) {
	if !g.IsRoundActive {
		return "", ErrNoRoundActive
	}
	return maskWord(g.CurrentWord, hintPositions(g.CurrentWord, n, g.rng)), nil
}

// RoundEndResult carries what round-ended broadcasts need.
type RoundEndResult struct {
	Word         string
	Scores       []LeaderboardEntry
	GameEndsNext bool
}

// EndRound implements the Drawing -> WaitingForWord/Idle transition, used
// both by a manual end-round event and by a fired round-end timer. It is
// idempotent: calling it while no round is
// active is a no-op (spec §8), returning ok=false.
func (g *Game) EndRound() (result RoundEndResult, ok bool) {
	if !g.IsRoundActive {
		return RoundEndResult{}, false
	}
	return g.endRoundInternal(), true
}

// ForceEndRoundForDrawerDeparture ends the round (or the pending
// word-selection phase) when the current drawer disconnects, even though
// isRoundActive may still be false (WaitingForWord). This is distinct
// from the idempotent manual EndRound: the drawer-departure path must
// act in both WaitingForWord and Drawing, per spec §4.2's "Drawer
// departure mid-round" rule.
func (g *Game) ForceEndRoundForDrawerDeparture() (result RoundEndResult, ok bool) {
	if !g.IsActive || g.CurrentDrawerID == "" {
		return RoundEndResult{}, false
	}
	return g.endRoundInternal(), true
}

func (g *Game) endRoundInternal() RoundEndResult {
	word := g.CurrentWord
	scores := g.Leaderboard()

	g.IsRoundActive = false
	g.CurrentWord = ""
	g.WordOptions = nil
	g.CurrentDrawerID = ""

	return RoundEndResult{
		Word:         word,
		Scores:       scores,
		GameEndsNext: g.CurrentRound >= g.TotalRounds,
	}
}

// GameEndResult carries what game-ended broadcasts need.
type GameEndResult struct {
	Winner LeaderboardEntry
	Scores []LeaderboardEntry
}

// EndGame implements the any -> Idle transition.
func (g *Game) EndGame() GameEndResult {
	return g.endGameInternal()
}

func (g *Game) endGameInternal() GameEndResult {
	scores := g.Leaderboard()
	g.IsActive = false
	g.IsRoundActive = false
	g.CurrentWord = ""
	g.WordOptions = nil
	g.CurrentDrawerID = ""

	var winner LeaderboardEntry
	if len(scores) > 0 {
		winner = scores[0]
	}
	return GameEndResult{Winner: winner, Scores: scores}
}
