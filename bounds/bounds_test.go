package bounds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountBound_Add(t *testing.T) {
	t.Run("adds within range", func(t *testing.T) {
		require.Equal(t, CountBound(30), CountBound(10).Add(CountBound(20)))
	})

	t.Run("saturates at max", func(t *testing.T) {
		require.Equal(t, CountBound(math.MaxUint32), CountBound(math.MaxUint32).Add(CountBound(1)))
		require.Equal(t, CountBound(math.MaxUint32), CountBound(math.MaxUint32-5).Add(CountBound(100)))
	})

	t.Run("zero is the identity", func(t *testing.T) {
		require.Equal(t, CountBound(42), CountBound(42).Add(CountBound(0)))
		require.True(t, CountBound(0).IsZero())
	})
}

func TestSizeBound_Add(t *testing.T) {
	require.Equal(t, SizeBound(5), SizeBound(2).Add(SizeBound(3)))
	require.Equal(t, SizeBound(math.MaxUint32), SizeBound(math.MaxUint32).Add(SizeBound(math.MaxUint32)))
	require.True(t, SizeBound(0).IsZero())
}

func TestDataProviderBounds_Exhausted(t *testing.T) {
	count := func(v uint32) *CountBound { c := CountBound(v); return &c }
	size := func(v uint32) *SizeBound { s := SizeBound(v); return &s }

	t.Run("count exhausted iff given exceeds bound", func(t *testing.T) {
		b := DataProviderBounds{Count: count(10)}

		require.False(t, b.CountExhausted(CountBound(9)))
		require.False(t, b.CountExhausted(CountBound(10)))
		require.True(t, b.CountExhausted(CountBound(11)))
	})

	t.Run("unset count bound never exhausts", func(t *testing.T) {
		b := NewUnbounded()

		require.False(t, b.CountExhausted(CountBound(math.MaxUint32)))
		require.False(t, b.SizeExhausted(SizeBound(math.MaxUint32)))
		require.False(t, b.Exhausted(size(math.MaxUint32), count(math.MaxUint32)))
	})

	t.Run("nil observation is treated as zero", func(t *testing.T) {
		b := DataProviderBounds{Count: count(10), Size: size(10)}

		// Omitting the observation never trips exhaustion, even though a
		// bound is configured on that dimension.
		require.False(t, b.Exhausted(nil, nil))
		require.False(t, b.Exhausted(size(5), nil))
		require.True(t, b.Exhausted(size(11), nil))
		require.True(t, b.Exhausted(nil, count(11)))
	})

	t.Run("exhausted is the OR of both dimensions", func(t *testing.T) {
		b := DataProviderBounds{Count: count(10), Size: size(10)}

		require.False(t, b.Exhausted(size(10), count(10)))
		require.True(t, b.Exhausted(size(10), count(11)))
		require.True(t, b.Exhausted(size(11), count(10)))
	})
}

func TestDataProviderBounds_Max(t *testing.T) {
	count := func(v uint32) *CountBound { c := CountBound(v); return &c }

	t.Run("clamps a looser bound down", func(t *testing.T) {
		got := DataProviderBounds{Count: count(50)}.Max(DataProviderBounds{Count: count(20)})

		require.NotNil(t, got.Count)
		require.Equal(t, CountBound(20), *got.Count)
	})

	t.Run("keeps a tighter bound", func(t *testing.T) {
		got := DataProviderBounds{Count: count(10)}.Max(DataProviderBounds{Count: count(20)})

		require.NotNil(t, got.Count)
		require.Equal(t, CountBound(10), *got.Count)
	})

	t.Run("adopts the other bound when unset", func(t *testing.T) {
		got := NewUnbounded().Max(DataProviderBounds{Count: count(20)})

		require.NotNil(t, got.Count)
		require.Equal(t, CountBound(20), *got.Count)
		require.Nil(t, got.Size)
	})

	t.Run("unbounded against unbounded stays unbounded", func(t *testing.T) {
		got := NewUnbounded().Max(NewUnbounded())

		require.Nil(t, got.Count)
		require.Nil(t, got.Size)
	})

	t.Run("repeated composition converges to the tightest limit", func(t *testing.T) {
		got := NewUnbounded().
			Max(DataProviderBounds{Count: count(100)}).
			Max(DataProviderBounds{Count: count(30)}).
			Max(DataProviderBounds{Count: count(70)})

		require.Equal(t, CountBound(30), *got.Count)
	})
}

func TestBuilder(t *testing.T) {
	t.Run("build defaults to unbounded", func(t *testing.T) {
		eb := NewBuilder().Build()

		require.Nil(t, eb.Voters.Count)
		require.Nil(t, eb.Voters.Size)
		require.Nil(t, eb.Targets.Count)
		require.Nil(t, eb.Targets.Size)
	})

	t.Run("exact setters create the bound pair", func(t *testing.T) {
		eb := NewBuilder().
			VotersCount(CountBound(10)).
			TargetsSize(SizeBound(4)).
			Build()

		require.NotNil(t, eb.Voters.Count)
		require.Equal(t, CountBound(10), *eb.Voters.Count)
		require.Nil(t, eb.Voters.Size)
		require.NotNil(t, eb.Targets.Size)
		require.Equal(t, SizeBound(4), *eb.Targets.Size)
		require.Nil(t, eb.Targets.Count)
	})

	t.Run("or-lower caps instead of overwriting", func(t *testing.T) {
		count := CountBound(5)
		eb := NewBuilder().
			VotersCount(CountBound(50)).
			VotersOrLower(DataProviderBounds{Count: &count}).
			Build()

		require.Equal(t, CountBound(5), *eb.Voters.Count)

		// A looser ceiling leaves the tighter bound in place.
		loose := CountBound(100)
		eb = NewBuilder().
			TargetsCount(CountBound(7)).
			TargetsOrLower(DataProviderBounds{Count: &loose}).
			Build()

		require.Equal(t, CountBound(7), *eb.Targets.Count)
	})

	t.Run("or-lower on unset bounds adopts the ceiling", func(t *testing.T) {
		count := CountBound(12)
		eb := NewBuilder().VotersOrLower(DataProviderBounds{Count: &count}).Build()

		require.Equal(t, CountBound(12), *eb.Voters.Count)
	})

	t.Run("from seeds the builder with existing bounds", func(t *testing.T) {
		base := NewBuilder().VotersCount(CountBound(10)).TargetsCount(CountBound(3)).Build()
		eb := From(base).VotersCount(CountBound(8)).Build()

		require.Equal(t, CountBound(8), *eb.Voters.Count)
		require.Equal(t, CountBound(3), *eb.Targets.Count)
	})
}
