package types

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestSupportsFromAssignments(t *testing.T) {
	stakes := map[string]VoteWeight{"v0": 1000, "v1": 500}
	stakeOf := func(who string) VoteWeight { return stakes[who] }

	assignments := []Assignment[string]{
		{
			Who: "v0",
			Distribution: []Share[string]{
				{Target: "t0", Proportion: PerbillFromRational(3, 10)},
				{Target: "t1", Proportion: PerbillFromRational(7, 10)},
			},
		},
		{
			Who: "v1",
			Distribution: []Share[string]{
				{Target: "t1", Proportion: PerbillOne()},
			},
		},
	}

	supports := SupportsFromAssignments([]string{"t0", "t1"}, assignments, stakeOf)

	require.Len(t, supports, 2)

	require.Equal(t, "t0", supports[0].Who)
	require.Equal(t, uint256.NewInt(300), supports[0].Support.Total)
	require.Len(t, supports[0].Support.Voters, 1)
	require.Equal(t, "v0", supports[0].Support.Voters[0].Who)

	require.Equal(t, "t1", supports[1].Who)
	require.Equal(t, uint256.NewInt(1200), supports[1].Support.Total)
	require.Len(t, supports[1].Support.Voters, 2)
}

func TestSupportsFromAssignments_IgnoresNonWinners(t *testing.T) {
	assignments := []Assignment[string]{
		{
			Who: "v0",
			Distribution: []Share[string]{
				{Target: "loser", Proportion: PerbillOne()},
			},
		},
	}

	supports := SupportsFromAssignments([]string{"t0"}, assignments, func(string) VoteWeight { return 100 })

	require.Len(t, supports, 1)
	require.True(t, supports[0].Support.Total.IsZero())
	require.Empty(t, supports[0].Support.Voters)
}
