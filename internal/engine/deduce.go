package engine

import "github.com/quadline/oneaway/internal/model"

// minCertainOverlap is the overlap between two guesses that forces their
// shared words into the same group. Two one-away assertions sharing 3+
// words pin the shared words together regardless of which candidate
// triplet is true; an overlap of 2 is not strong enough.
const minCertainOverlap = 3

// Deductions derives the tagged inferences licensed by the guess history.
// Every guess yields one exactly_three deduction restating its constraint,
// in submission order. Every unordered pair of guesses sharing at least 3
// words additionally yields a must_be_together deduction over the shared
// words.
func Deductions(guesses []model.Guess) []model.Deduction {
	deductions := make([]model.Deduction, 0, len(guesses))

	for _, g := range guesses {
		words := make([]string, len(g.Words))
		copy(words, g.Words)
		deductions = append(deductions, model.Deduction{
			Kind:    model.DeductionExactlyThree,
			Words:   words,
			Sources: []string{g.ID},
		})
	}

	for i := 0; i < len(guesses); i++ {
		for j := i + 1; j < len(guesses); j++ {
			shared := guesses[i].SharedWords(guesses[j])
			if len(shared) >= minCertainOverlap {
				deductions = append(deductions, model.Deduction{
					Kind:    model.DeductionMustBeTogether,
					Words:   shared,
					Sources: []string{guesses[i].ID, guesses[j].ID},
				})
			}
		}
	}

	return deductions
}
