package engine

import (
	"sort"
	"strings"

	"github.com/quadline/oneaway/internal/model"
)

// scenario is an evolving hypothesis about the membership of one hidden
// group, built by merging compatible candidate triplets. A scenario stays
// valid only while it holds at most 4 words: the hidden groups are always
// size 4, so a larger union contradicts itself.
type scenario map[string]bool

func newScenario(words []string) scenario {
	s := make(scenario, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

// merge returns the union of the scenario and a candidate triplet, and
// whether the two are compatible (union size ≤ 4). Two subsets of the
// same true group of 4 can never together exceed 4 distinct words.
func (s scenario) merge(triplet []string) (scenario, bool) {
	merged := make(scenario, len(s)+len(triplet))
	for w := range s {
		merged[w] = true
	}
	for _, w := range triplet {
		merged[w] = true
	}
	if len(merged) > model.GuessSize {
		return nil, false
	}
	return merged, true
}

// key returns the canonical deduplication key: the sorted member list,
// joined. No two scenarios are order-distinguishable.
func (s scenario) key() string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return strings.Join(words, "\x00")
}

func (s scenario) sortedWords() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// PossibleGroups folds the guess history into the set of globally
// consistent hypotheses for one hidden group. The first guess seeds the
// scenario set with its 4 candidate triplets; every later guess refines
// it by merging each surviving scenario with each compatible triplet and
// discarding contradictory pairs. The result is deduplicated by sorted
// member list and returned in sorted order.
//
// Guesses are folded in submission order, but the compatibility relation
// is associative and commutative over the merge, so permuting the history
// yields the same set.
func PossibleGroups(guesses []model.Guess) [][]string {
	if len(guesses) == 0 {
		return nil
	}

	scenarios := make(map[string]scenario, model.GuessSize)
	for _, t := range Triplets(guesses[0]) {
		s := newScenario(t)
		scenarios[s.key()] = s
	}

	for _, g := range guesses[1:] {
		next := make(map[string]scenario)
		for _, s := range scenarios {
			for _, t := range Triplets(g) {
				if merged, ok := s.merge(t); ok {
					next[merged.key()] = merged
				}
			}
		}
		scenarios = next
	}

	keys := make([]string, 0, len(scenarios))
	for k := range scenarios {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([][]string, 0, len(scenarios))
	for _, k := range keys {
		groups = append(groups, scenarios[k].sortedWords())
	}
	return groups
}

// DefinitelyTogether returns the words present in every possible group.
// With at least one surviving scenario, these words are provably
// co-grouped: every consistent resolution of the guesses places them in
// the same hidden group. Returns nil when no scenario survives.
func DefinitelyTogether(groups [][]string) []string {
	if len(groups) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, group := range groups {
		for _, w := range group {
			counts[w]++
		}
	}

	var together []string
	for _, w := range groups[0] {
		if counts[w] == len(groups) {
			together = append(together, w)
		}
	}
	return together
}
