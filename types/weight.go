package types

import "math"

// Weight is a two-dimensional execution cost: computation time and proof
// size. Arithmetic saturates; weights gate admission on a bounded step.
type Weight struct {
	// RefTime is the computational time on reference hardware, in
	// picoseconds.
	RefTime uint64

	// ProofSize is the relative storage-proof contribution, in bytes.
	ProofSize uint64
}

// WeightFromParts builds a Weight from its two components.
func WeightFromParts(refTime, proofSize uint64) Weight {
	return Weight{RefTime: refTime, ProofSize: proofSize}
}

// SaturatingAdd returns the component-wise saturating sum.
func (w Weight) SaturatingAdd(other Weight) Weight {
	return Weight{
		RefTime:   saturatingAddU64(w.RefTime, other.RefTime),
		ProofSize: saturatingAddU64(w.ProofSize, other.ProofSize),
	}
}

// SaturatingMul returns the weight scaled by a factor, saturating.
func (w Weight) SaturatingMul(factor uint64) Weight {
	return Weight{
		RefTime:   saturatingMulU64(w.RefTime, factor),
		ProofSize: saturatingMulU64(w.ProofSize, factor),
	}
}

// AnyGt reports whether any component of w exceeds the corresponding
// component of other.
func (w Weight) AnyGt(other Weight) bool {
	return w.RefTime > other.RefTime || w.ProofSize > other.ProofSize
}

// IsZero reports whether both components are zero.
func (w Weight) IsZero() bool {
	return w.RefTime == 0 && w.ProofSize == 0
}

// WeightInfo is the per-algorithm cost table consulted before running a
// solver. Tables are typically derived from benchmarks outside this
// library.
type WeightInfo interface {
	// Phragmen returns the predicted cost of a sequential-phragmen solve.
	Phragmen(voters, targets, voteDegree uint32) Weight

	// Phragmms returns the predicted cost of a phragmms solve.
	Phragmms(voters, targets, voteDegree uint32) Weight
}

func saturatingAddU64(a, b uint64) uint64 {
	if sum := a + b; sum >= a {
		return sum
	}

	return math.MaxUint64
}

func saturatingMulU64(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxUint64/b {
		return math.MaxUint64
	}

	return a * b
}
