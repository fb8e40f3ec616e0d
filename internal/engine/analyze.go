package engine

import (
	"fmt"
	"strings"

	"github.com/quadline/oneaway/internal/model"
)

// Analyze runs the full deduction pass over a guess history and returns
// the derived deductions, the surviving group hypotheses, and the insight
// lines the caller renders to the user.
//
// Analyze is a pure function of its inputs: it recomputes from the whole
// history on every call, mutates nothing, and is safe to call from any
// number of goroutines. All guess-history state lives with the caller.
//
// allWords is the full puzzle roster. The algorithm itself never needs
// it; it only feeds the empty-history insight and may be nil.
func Analyze(allWords []string, guesses []model.Guess) model.Analysis {
	if len(guesses) == 0 {
		insight := "No guesses logged yet. Log a one-away result to start narrowing down the groups."
		if len(allWords) > 0 {
			insight = fmt.Sprintf("No guesses logged yet for this %d-word puzzle. Log a one-away result to start narrowing down the groups.", len(allWords))
		}
		return model.Analysis{
			Deductions:     []model.Deduction{},
			PossibleGroups: [][]string{},
			Insights:       []string{insight},
		}
	}

	deductions := Deductions(guesses)
	groups := PossibleGroups(guesses)

	var insights []string

	if len(guesses) == 1 {
		insights = append(insights, fmt.Sprintf(
			"Exactly one of %s is the outlier; the other 3 share a group.",
			strings.Join(guesses[0].Words, ", ")))
	}

	switch {
	case len(groups) == 1:
		insights = append(insights, fmt.Sprintf(
			"Group found: %s.", strings.Join(groups[0], ", ")))
	case len(groups) >= 2 && len(groups) <= 4:
		insights = append(insights, fmt.Sprintf(
			"%d possible groups remain.", len(groups)))
	}

	// Scenario-derived togetherness can exceed what pairwise overlaps
	// prove: a word forced only by a 3-way intersection shows up here.
	if together := DefinitelyTogether(groups); len(together) >= 2 {
		insights = append(insights, fmt.Sprintf(
			"These words are definitely together: %s.", strings.Join(together, ", ")))
	}

	return model.Analysis{
		Deductions:     deductions,
		PossibleGroups: groups,
		Insights:       insights,
	}
}
