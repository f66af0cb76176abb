// Package bounds provides the value types that cap how much data an
// election may pull from its data provider in a single step.
//
// Bounds are expressed over two independent dimensions: the number of
// elements (CountBound) and their encoded size (SizeBound, conventionally
// in megabytes). A DataProviderBounds pairs an optional limit on each
// dimension, and an ElectionBounds pairs the voter-side and target-side
// bounds of one election.
//
// All arithmetic on bound values saturates; bounds gate resource
// consumption on a consensus-critical path and must never wrap around.
package bounds

import "math"

// CountBound limits the number of elements fetched from a data provider.
type CountBound uint32

// Add returns the saturating sum of two count bounds.
func (c CountBound) Add(other CountBound) CountBound {
	if sum := uint64(c) + uint64(other); sum <= math.MaxUint32 {
		return CountBound(sum)
	}

	return CountBound(math.MaxUint32)
}

// IsZero reports whether the bound is zero.
func (c CountBound) IsZero() bool {
	return c == 0
}

// SizeBound limits the encoded size of the data fetched from a data
// provider. The unit is whatever the caller measures in; by convention
// it is megabytes of encoded output.
type SizeBound uint32

// Add returns the saturating sum of two size bounds.
func (s SizeBound) Add(other SizeBound) SizeBound {
	if sum := uint64(s) + uint64(other); sum <= math.MaxUint32 {
		return SizeBound(sum)
	}

	return SizeBound(math.MaxUint32)
}

// IsZero reports whether the bound is zero.
func (s SizeBound) IsZero() bool {
	return s == 0
}

// DataProviderBounds caps one dimension of an election snapshot, either by
// element count, encoded size, or both. A nil field means that dimension
// is unbounded.
type DataProviderBounds struct {
	Count *CountBound
	Size  *SizeBound
}

// NewUnbounded returns bounds with no limit on either dimension.
//
// Returns:
//   - DataProviderBounds: Bounds with both Count and Size unset
func NewUnbounded() DataProviderBounds {
	return DataProviderBounds{}
}

// NewCount returns bounds limited to the given element count.
func NewCount(count CountBound) DataProviderBounds {
	return DataProviderBounds{Count: &count}
}

// NewSize returns bounds limited to the given encoded size.
func NewSize(size SizeBound) DataProviderBounds {
	return DataProviderBounds{Size: &size}
}

// CountExhausted reports whether givenCount exceeds the count bound.
// An unset count bound is never exhausted.
func (b DataProviderBounds) CountExhausted(givenCount CountBound) bool {
	return b.Count != nil && givenCount > *b.Count
}

// SizeExhausted reports whether givenSize exceeds the size bound.
// An unset size bound is never exhausted.
func (b DataProviderBounds) SizeExhausted(givenSize SizeBound) bool {
	return b.Size != nil && givenSize > *b.Size
}

// Exhausted reports whether givenSize or givenCount exceeds the
// corresponding bound.
//
// A nil observation is treated as zero, so a caller that omits the
// observed count never trips count-exhaustion even when a count bound is
// configured, and symmetrically for size.
func (b DataProviderBounds) Exhausted(givenSize *SizeBound, givenCount *CountBound) bool {
	count := CountBound(0)
	if givenCount != nil {
		count = *givenCount
	}
	size := SizeBound(0)
	if givenSize != nil {
		size = *givenSize
	}

	return b.CountExhausted(count) || b.SizeExhausted(size)
}

// Max returns new bounds where each field of b is clamped into
// [0, other's value] when b holds a value, and adopts other's value when
// b is unset. Composition therefore only ever tightens or preserves the
// effective bound, never loosens it.
func (b DataProviderBounds) Max(other DataProviderBounds) DataProviderBounds {
	out := DataProviderBounds{}

	switch {
	case b.Count != nil:
		ceil := CountBound(math.MaxUint32)
		if other.Count != nil {
			ceil = *other.Count
		}
		count := min(*b.Count, ceil)
		out.Count = &count
	case other.Count != nil:
		count := *other.Count
		out.Count = &count
	}

	switch {
	case b.Size != nil:
		ceil := SizeBound(math.MaxUint32)
		if other.Size != nil {
			ceil = *other.Size
		}
		size := min(*b.Size, ceil)
		out.Size = &size
	case other.Size != nil:
		size := *other.Size
		out.Size = &size
	}

	return out
}

// ElectionBounds holds the two independent bound sets applied to an
// election's inputs: one for voters and one for targets.
type ElectionBounds struct {
	Voters  DataProviderBounds
	Targets DataProviderBounds
}
