package types

import "math"

// Score is the ordinal a sorted list ranks candidates by. It is bounded,
// saturating, and zero-having; concrete systems typically instantiate it
// with stake-weight magnitude.
type Score uint64

// MaxScore is the upper bound of the score domain.
const MaxScore = Score(math.MaxUint64)

// SaturatingAdd returns the sum of two scores, saturating at MaxScore.
func (s Score) SaturatingAdd(other Score) Score {
	if sum := s + other; sum >= s {
		return sum
	}

	return MaxScore
}

// SaturatingSub returns the difference of two scores, saturating at zero.
func (s Score) SaturatingSub(other Score) Score {
	if other >= s {
		return 0
	}

	return s - other
}

// IsZero reports whether the score is zero.
func (s Score) IsZero() bool {
	return s == 0
}
