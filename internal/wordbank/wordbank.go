// Package wordbank holds the static, category-tagged word list drawers
// choose from, and exposes uniform sampling without replacement.
package wordbank

import "doodleserver/internal/timing"

// Word is a single drawable term tagged with a category for future
// category-filtered play (not currently exposed through any event, but
// present the way a complete word bank would carry it).
type Word struct {
	Text     string
	Category string
}

// Bank is a read-only, concurrency-safe word source. It holds no mutable
// state, so it requires no locking of its own — callers pass in the Rand,
// which must itself be safe for concurrent use when shared.
type Bank struct {
	words []Word
}

// Default returns the bank used by production wiring.
func Default() *Bank {
	return New(defaultWords)
}

// New builds a Bank from an explicit word list, primarily for tests that
// want a small, deterministic vocabulary.
func New(words []Word) *Bank {
	cp := make([]Word, len(words))
	copy(cp, words)
	return &Bank{words: cp}
}

// Len reports the total number of words in the bank.
func (b *Bank) Len() int { return len(b.words) }

// PickUnused samples up to n distinct words uniformly at random from the
// bank, excluding any text present in used. If fewer than n words remain
// unused, it returns however many remain (possibly zero); it never
// returns a word already present in used.
func (b *Bank) PickUnused(n int, used map[string]bool, rng timing.Rand) []string {
	available := make([]string, 0, len(b.words))
	for _, w := range b.words {
		if !used[w.Text] {
			available = append(available, w.Text)
		}
	}
	rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	if n > len(available) {
		n = len(available)
	}
	return append([]string(nil), available[:n]...)
}

var defaultWords = []Word{
	{"apple", "food"}, {"banana", "food"}, {"pizza", "food"}, {"sandwich", "food"},
	{"ice cream", "food"}, {"cake", "food"}, {"cheese", "food"}, {"egg", "food"},
	{"dog", "animal"}, {"cat", "animal"}, {"elephant", "animal"}, {"giraffe", "animal"},
	{"penguin", "animal"}, {"kangaroo", "animal"}, {"octopus", "animal"}, {"spider", "animal"},
	{"guitar", "object"}, {"umbrella", "object"}, {"telescope", "object"}, {"bicycle", "object"},
	{"rocket", "object"}, {"lighthouse", "object"}, {"anchor", "object"}, {"camera", "object"},
	{"mountain", "nature"}, {"volcano", "nature"}, {"waterfall", "nature"}, {"rainbow", "nature"},
	{"tornado", "nature"}, {"iceberg", "nature"}, {"desert", "nature"}, {"forest", "nature"},
	{"astronaut", "people"}, {"wizard", "people"}, {"pirate", "people"}, {"ninja", "people"},
	{"robot", "people"}, {"superhero", "people"}, {"chef", "people"}, {"firefighter", "people"},
	{"soccer", "activity"}, {"skateboarding", "activity"}, {"swimming", "activity"}, {"juggling", "activity"},
	{"painting", "activity"}, {"fishing", "activity"}, {"dancing", "activity"}, {"camping", "activity"},
}
