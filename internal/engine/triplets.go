package engine

import "github.com/quadline/oneaway/internal/model"

// Triplets enumerates the 4 possible resolutions of a one-away guess.
// A guess asserts that exactly 3 of its 4 words share a hidden group, so
// each candidate triplet drops exactly one word. The order is fixed:
// drop the 4th word first, then the 3rd, 2nd, and 1st. The order carries
// no meaning but keeps output reproducible.
func Triplets(g model.Guess) [][]string {
	candidates := make([][]string, 0, model.GuessSize)

	for drop := model.GuessSize - 1; drop >= 0; drop-- {
		triplet := make([]string, 0, model.GuessSize-1)
		for i, w := range g.Words {
			if i != drop {
				triplet = append(triplet, w)
			}
		}
		candidates = append(candidates, triplet)
	}

	return candidates
}
