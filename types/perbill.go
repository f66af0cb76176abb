package types

import "github.com/holiman/uint256"

// perbillOne is the denominator of Perbill: parts per billion.
const perbillOne = 1_000_000_000

// Perbill is a bounded proportion in parts per billion, the accuracy type
// carried through stake assignments. Values are clamped into [0, 1e9];
// arithmetic that could overflow a machine word goes through uint256
// intermediates, giving the extended-precision variant required on the
// consensus path.
type Perbill uint32

// PerbillFromParts builds a Perbill from raw parts, saturating at one.
func PerbillFromParts(parts uint32) Perbill {
	if parts > perbillOne {
		return Perbill(perbillOne)
	}

	return Perbill(parts)
}

// PerbillFromRational builds the proportion p/q, saturating at one.
// A zero denominator yields zero.
func PerbillFromRational(p, q uint64) Perbill {
	if q == 0 {
		return 0
	}
	if p >= q {
		return Perbill(perbillOne)
	}

	num := new(uint256.Int).Mul(uint256.NewInt(p), uint256.NewInt(perbillOne))
	num.Div(num, uint256.NewInt(q))

	return Perbill(num.Uint64())
}

// PerbillFromBalances builds the proportion p/q over extended balances,
// saturating at one. A zero denominator yields zero.
func PerbillFromBalances(p, q *uint256.Int) Perbill {
	if q == nil || q.IsZero() || p == nil {
		return 0
	}
	if p.Cmp(q) >= 0 {
		return Perbill(perbillOne)
	}

	num := new(uint256.Int).Mul(p, uint256.NewInt(perbillOne))
	num.Div(num, q)

	return Perbill(num.Uint64())
}

// PerbillOne returns the proportion representing the whole.
func PerbillOne() Perbill {
	return Perbill(perbillOne)
}

// Deconstruct returns the raw parts-per-billion value.
func (p Perbill) Deconstruct() uint32 {
	return uint32(p)
}

// IsZero reports whether the proportion is zero.
func (p Perbill) IsZero() bool {
	return p == 0
}

// IsOne reports whether the proportion is the whole.
func (p Perbill) IsOne() bool {
	return p >= perbillOne
}

// Mul applies the proportion to a vote weight, rounding down. The
// intermediate product is computed in 256 bits so it cannot overflow.
func (p Perbill) Mul(weight VoteWeight) *uint256.Int {
	out := new(uint256.Int).Mul(uint256.NewInt(uint64(weight)), uint256.NewInt(uint64(p)))

	return out.Div(out, uint256.NewInt(perbillOne))
}
