package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blob-chain/substrate/bags"
	"github.com/blob-chain/substrate/bounds"
	"github.com/blob-chain/substrate/types"
)

func TestStatic_Snapshot(t *testing.T) {
	provider := NewStatic[string](2)

	provider.PutSnapshot(
		[]types.Voter[string]{
			{Who: "v0", Stake: 100, Votes: []string{"t0"}},
			{Who: "v1", Stake: 200, Votes: []string{"t0", "t1"}},
		},
		[]string{"t0", "t1", "t2"},
	)

	voters, err := provider.ElectingVoters(bounds.NewUnbounded())
	require.NoError(t, err)
	require.Len(t, voters, 2)

	targets, err := provider.ElectableTargets(bounds.NewUnbounded())
	require.NoError(t, err)
	assert.Equal(t, []string{"t0", "t1", "t2"}, targets)

	desired, err := provider.DesiredTargets()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), desired)
}

func TestStatic_CountBounds(t *testing.T) {
	provider := NewStatic[string](1)
	provider.PutSnapshot(
		[]types.Voter[string]{
			{Who: "v0", Stake: 100, Votes: []string{"t0"}},
			{Who: "v1", Stake: 200, Votes: []string{"t0"}},
			{Who: "v2", Stake: 300, Votes: []string{"t0"}},
		},
		[]string{"t0", "t1", "t2"},
	)

	voters, err := provider.ElectingVoters(bounds.NewCount(2))
	require.NoError(t, err)
	assert.Len(t, voters, 2)
	// Truncation keeps the prefix.
	assert.Equal(t, "v0", voters[0].Who)
	assert.Equal(t, "v1", voters[1].Who)

	targets, err := provider.ElectableTargets(bounds.NewCount(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"t0"}, targets)
}

func TestStatic_SizeBoundsNeedMeasure(t *testing.T) {
	voters := []types.Voter[string]{
		{Who: "v0", Stake: 100, Votes: []string{"t0"}},
		{Who: "v1", Stake: 200, Votes: []string{"t0"}},
	}

	// Without a size measure the provider makes no size observations,
	// so a size bound never trips.
	unmeasured := NewStatic[string](1)
	unmeasured.PutSnapshot(voters, []string{"t0"})

	got, err := unmeasured.ElectingVoters(bounds.NewSize(1))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// With a measure of 10 units per voter, a bound of 15 admits one.
	measured := NewStatic[string](1,
		WithVoterSize[string](func(types.Voter[string]) bounds.SizeBound { return 10 }),
	)
	measured.PutSnapshot(voters, []string{"t0"})

	got, err = measured.ElectingVoters(bounds.NewSize(15))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStatic_AddVoterTruncatesVotes(t *testing.T) {
	provider := NewStatic[string](1, WithMaxVotesPerVoter[string](2))

	provider.AddVoter("v0", 100, []string{"t0", "t1", "t2", "t3"})
	provider.AddTarget("t0")

	voters, err := provider.ElectingVoters(bounds.NewUnbounded())
	require.NoError(t, err)
	require.Len(t, voters, 1)
	assert.Equal(t, []string{"t0", "t1"}, voters[0].Votes)
	assert.Equal(t, uint32(2), provider.MaxVotesPerVoter())
}

func TestStatic_Clear(t *testing.T) {
	provider := NewStatic[string](1)
	provider.AddVoter("v0", 100, []string{"t0"})
	provider.AddTarget("t0")

	provider.Clear()

	voters, err := provider.ElectingVoters(bounds.NewUnbounded())
	require.NoError(t, err)
	assert.Empty(t, voters)

	targets, err := provider.ElectableTargets(bounds.NewUnbounded())
	require.NoError(t, err)
	assert.Empty(t, targets)
}

// mapScores backs a ScoreProvider with a plain map.
type mapScores map[string]types.Score

func (m mapScores) Score(who string) types.Score { return m[who] }

func newRankedFixture(t *testing.T) (*Ranked[string], mapScores) {
	t.Helper()

	list, err := bags.NewList[string]([]types.Score{100, 1000})
	require.NoError(t, err)

	scores := mapScores{"v0": 2000, "v1": 500, "v2": 50}
	for who, score := range scores {
		require.NoError(t, list.OnInsert(who, score))
	}

	provider := NewRanked[string](
		list,
		scores,
		func(string) []string { return []string{"t0", "t1"} },
		func() []string { return []string{"t0", "t1", "t2"} },
		2,
	)

	return provider, scores
}

func TestRanked_DescendingOrder(t *testing.T) {
	provider, _ := newRankedFixture(t)

	voters, err := provider.ElectingVoters(bounds.NewUnbounded())
	require.NoError(t, err)
	require.Len(t, voters, 3)

	assert.Equal(t, "v0", voters[0].Who)
	assert.Equal(t, "v1", voters[1].Who)
	assert.Equal(t, "v2", voters[2].Who)
	assert.Equal(t, types.VoteWeight(2000), voters[0].Stake)
}

func TestRanked_BoundsShedLowestRanked(t *testing.T) {
	provider, _ := newRankedFixture(t)

	voters, err := provider.ElectingVoters(bounds.NewCount(2))
	require.NoError(t, err)
	require.Len(t, voters, 2)

	// The lowest-ranked member is the one dropped.
	assert.Equal(t, "v0", voters[0].Who)
	assert.Equal(t, "v1", voters[1].Who)
}

func TestRanked_StakeReadAtSnapshotTime(t *testing.T) {
	provider, scores := newRankedFixture(t)

	// Stake changed since the list position was set; the snapshot must
	// carry the current value.
	scores["v1"] = 750

	voters, err := provider.ElectingVoters(bounds.NewUnbounded())
	require.NoError(t, err)
	assert.Equal(t, types.VoteWeight(750), voters[1].Stake)
}

func TestRanked_Targets(t *testing.T) {
	provider, _ := newRankedFixture(t)

	targets, err := provider.ElectableTargets(bounds.NewCount(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"t0", "t1"}, targets)

	desired, err := provider.DesiredTargets()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), desired)
}
