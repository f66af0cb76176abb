package types

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestPerbillFromParts(t *testing.T) {
	require.Equal(t, uint32(500_000_000), PerbillFromParts(500_000_000).Deconstruct())
	require.True(t, PerbillFromParts(0).IsZero())

	// Saturates at one.
	require.True(t, PerbillFromParts(2_000_000_000).IsOne())
	require.Equal(t, uint32(1_000_000_000), PerbillFromParts(math.MaxUint32).Deconstruct())
}

func TestPerbillFromRational(t *testing.T) {
	require.Equal(t, uint32(250_000_000), PerbillFromRational(1, 4).Deconstruct())
	require.True(t, PerbillFromRational(5, 5).IsOne())
	require.True(t, PerbillFromRational(7, 5).IsOne())
	require.True(t, PerbillFromRational(1, 0).IsZero())

	// No overflow for large operands.
	require.Equal(t, uint32(500_000_000), PerbillFromRational(math.MaxUint64/2, math.MaxUint64-1).Deconstruct())
}

func TestPerbill_Mul(t *testing.T) {
	half := PerbillFromRational(1, 2)
	require.Equal(t, uint64(500), half.Mul(VoteWeight(1000)).Uint64())

	// Full weight at maximum stake does not overflow.
	got := PerbillOne().Mul(VoteWeight(math.MaxUint64))
	require.Equal(t, uint256.NewInt(math.MaxUint64), got)

	require.True(t, Perbill(0).Mul(VoteWeight(math.MaxUint64)).IsZero())
}
