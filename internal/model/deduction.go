package model

// DeductionKind classifies the nature of a deduction
type DeductionKind string

const (
	// DeductionExactlyThree restates a raw guess constraint: exactly 3 of
	// the 4 carried words share a hidden group.
	DeductionExactlyThree DeductionKind = "exactly_three"

	// DeductionMustBeTogether marks a word set that is provably co-grouped:
	// it holds under every surviving resolution of the guesses involved.
	DeductionMustBeTogether DeductionKind = "must_be_together"

	// DeductionCannotBeTogether marks two words provably in different
	// groups. Declared for consumers; the current derivation rules
	// never produce it.
	DeductionCannotBeTogether DeductionKind = "cannot_be_together"
)

// Deduction is a single tagged inference derived from the guess history
type Deduction struct {
	Kind    DeductionKind `json:"kind"`              // Deduction classification
	Words   []string      `json:"words"`             // The words the inference is about
	Sources []string      `json:"sources,omitempty"` // IDs of the guesses that forced it
}
