package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore_Saturating(t *testing.T) {
	require.Equal(t, Score(15), Score(10).SaturatingAdd(5))
	require.Equal(t, MaxScore, MaxScore.SaturatingAdd(1))
	require.Equal(t, MaxScore, Score(MaxScore-3).SaturatingAdd(10))

	require.Equal(t, Score(5), Score(10).SaturatingSub(5))
	require.Equal(t, Score(0), Score(10).SaturatingSub(10))
	require.Equal(t, Score(0), Score(10).SaturatingSub(11))

	require.True(t, Score(0).IsZero())
	require.False(t, Score(1).IsZero())
}

func TestWeight_Saturating(t *testing.T) {
	a := WeightFromParts(10, 2)
	b := WeightFromParts(5, 1)

	require.Equal(t, WeightFromParts(15, 3), a.SaturatingAdd(b))
	require.Equal(t, WeightFromParts(^uint64(0), ^uint64(0)),
		WeightFromParts(^uint64(0), ^uint64(0)).SaturatingAdd(a))

	require.Equal(t, WeightFromParts(20, 4), a.SaturatingMul(2))
	require.Equal(t, WeightFromParts(^uint64(0), ^uint64(0)),
		WeightFromParts(^uint64(0)/2+1, 1).SaturatingMul(2).SaturatingMul(^uint64(0)))

	require.True(t, a.AnyGt(b))
	require.False(t, b.AnyGt(a))
	require.True(t, WeightFromParts(1, 100).AnyGt(WeightFromParts(10, 10)))
	require.True(t, WeightFromParts(0, 0).IsZero())
}
