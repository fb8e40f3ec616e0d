package model

import (
	"fmt"
	"sort"
	"strings"
)

// GuessSize is the number of words in a one-away guess.
// The real game always flags "one away" on a 4-word submission.
const GuessSize = 4

// PuzzleSize is the number of words in a daily puzzle (4 groups of 4).
const PuzzleSize = 16

// Guess represents a single one-away assertion: exactly 3 of its 4 words
// belong to the same hidden group. The engine is never told which 3.
// Guesses are immutable once constructed.
type Guess struct {
	ID    string   `json:"id"`    // Caller-assigned identifier (e.g., "guess-1")
	Words []string `json:"words"` // Exactly 4 distinct words, submission order
}

// NewGuess constructs a guess from exactly 4 distinct words.
// Every downstream computation assumes the 4-distinct-words invariant,
// so violations are rejected here rather than tolerated later.
func NewGuess(id string, words []string) (Guess, error) {
	if len(words) != GuessSize {
		return Guess{}, fmt.Errorf("guess %s: expected %d words, got %d", id, GuessSize, len(words))
	}

	seen := make(map[string]bool, GuessSize)
	for _, w := range words {
		if w == "" {
			return Guess{}, fmt.Errorf("guess %s: empty word", id)
		}
		if seen[w] {
			return Guess{}, fmt.Errorf("guess %s: duplicate word %q", id, w)
		}
		seen[w] = true
	}

	g := Guess{ID: id, Words: make([]string, GuessSize)}
	copy(g.Words, words)
	return g, nil
}

// Contains reports whether the guess includes the given word.
func (g Guess) Contains(word string) bool {
	for _, w := range g.Words {
		if w == word {
			return true
		}
	}
	return false
}

// SharedWords returns the words present in both guesses, in this
// guess's word order.
func (g Guess) SharedWords(other Guess) []string {
	var shared []string
	for _, w := range g.Words {
		if other.Contains(w) {
			shared = append(shared, w)
		}
	}
	return shared
}

// String renders the guess as "id{w1, w2, w3, w4}".
func (g Guess) String() string {
	return g.ID + "{" + strings.Join(g.Words, ", ") + "}"
}

// SortedWords returns a sorted copy of a word list. Used wherever a
// canonical, order-independent representation is needed (scenario
// deduplication, cache keys, stable report output).
func SortedWords(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	sort.Strings(out)
	return out
}
