package substrate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blob-chain/substrate/bounds"
	"github.com/blob-chain/substrate/solver"
	electiontest "github.com/blob-chain/substrate/testing"
	"github.com/blob-chain/substrate/types"
)

func snapshotData() *electiontest.DataProvider[string] {
	data := electiontest.NewDataProvider[string](2)
	data.Targets = []string{"t0", "t1", "t2"}
	data.Voters = []types.Voter[string]{
		{Who: "v0", Stake: 900, Votes: []string{"t0", "t1"}},
		{Who: "v1", Stake: 600, Votes: []string{"t1", "t2"}},
		{Who: "v2", Stake: 300, Votes: []string{"t2"}},
	}

	return data
}

func TestNew_RequiresCollaborators(t *testing.T) {
	data := snapshotData()

	_, err := New[string](nil, solver.NewSequentialPhragmen[string]())
	require.ErrorIs(t, err, ErrDataProviderRequired)

	_, err = New[string](data, nil)
	require.ErrorIs(t, err, ErrSolverRequired)
}

func TestProvider_Elect(t *testing.T) {
	provider, err := New[string](snapshotData(), solver.NewSequentialPhragmen[string](),
		WithMaxWinners(10),
	)
	require.NoError(t, err)

	supports, err := provider.Elect()
	require.NoError(t, err)
	require.Len(t, supports, 2)

	// Every winner carries aggregated backing.
	for _, ts := range supports {
		assert.False(t, ts.Support.Total.IsZero())
		assert.NotEmpty(t, ts.Support.Voters)
	}

	assert.False(t, provider.Ongoing())
}

func TestProvider_PrepareThenElect(t *testing.T) {
	data := snapshotData()
	provider, err := New[string](data, solver.NewSequentialPhragmen[string](),
		WithMaxWinners(10),
	)
	require.NoError(t, err)

	require.NoError(t, provider.Prepare())
	assert.True(t, provider.Ongoing())
	assert.Equal(t, 1, data.VotersCalls)

	// Preparing twice without consuming is an error.
	require.ErrorIs(t, provider.Prepare(), ErrElectionOngoing)

	supports, err := provider.Elect()
	require.NoError(t, err)
	require.Len(t, supports, 2)

	// The prepared snapshot was consumed, not re-pulled.
	assert.Equal(t, 1, data.VotersCalls)
	assert.False(t, provider.Ongoing())
}

func TestProvider_FailureRetainsPreparedSnapshot(t *testing.T) {
	failing := &electiontest.Solver[string]{Err: errors.New("solver exploded")}
	provider, err := New[string](snapshotData(), failing, WithMaxWinners(10))
	require.NoError(t, err)

	require.NoError(t, provider.Prepare())

	_, err = provider.Elect()
	require.Error(t, err)

	// No state commit on failure: still ongoing, snapshot retained.
	assert.True(t, provider.Ongoing())
	assert.Equal(t, 1, failing.SolveCalls)
}

func TestProvider_DesiredTargetsChecked(t *testing.T) {
	data := snapshotData()
	data.Desired = 5

	provider, err := New[string](data, solver.NewSequentialPhragmen[string](),
		WithMaxWinners(3),
	)
	require.NoError(t, err)

	_, err = provider.Elect()
	require.ErrorIs(t, err, ErrTooManyWinners)

	// Opaque data-provider errors pass through verbatim.
	opaque := errors.New("storage offline")
	data.DesiredErr = opaque
	_, err = provider.Elect()
	require.ErrorIs(t, err, opaque)
}

func TestProvider_WeightAdmission(t *testing.T) {
	provider, err := New[string](snapshotData(), solver.NewSequentialPhragmen[string](),
		WithMaxWinners(10),
		WithMaxWeight(types.WeightFromParts(1, 0)),
	)
	require.NoError(t, err)

	_, err = provider.Elect()
	require.ErrorIs(t, err, ErrWeightOverLimit)

	// A failed Elect without a prepared snapshot stays idle.
	assert.False(t, provider.Ongoing())
}

func TestProvider_BoundsLimitSnapshot(t *testing.T) {
	eb := bounds.NewBuilder().VotersCount(2).TargetsCount(2).Build()
	provider, err := New[string](snapshotData(), solver.NewSequentialPhragmen[string](),
		WithMaxWinners(10),
		WithBounds(eb),
	)
	require.NoError(t, err)

	require.NoError(t, provider.Prepare())
	assert.Len(t, provider.prepared.voters, 2)
	assert.Len(t, provider.prepared.targets, 2)
}

func TestProvider_InstantElect(t *testing.T) {
	data := snapshotData()
	data.Desired = 1

	eb := bounds.NewBuilder().VotersCount(3).Build()
	provider, err := New[string](data, solver.NewSequentialPhragmen[string](),
		WithMaxWinners(10),
		WithBounds(eb),
	)
	require.NoError(t, err)

	// Forced bounds compose with the configured ones and only tighten:
	// a looser forced voter count keeps the configured limit.
	supports, err := provider.InstantElect(
		bounds.NewCount(100),
		bounds.NewCount(2),
	)
	require.NoError(t, err)
	require.Len(t, supports, 1)

	assert.Equal(t, 3, len(data.Voters))
	assert.False(t, provider.Ongoing())
}

func TestProvider_InstantElectLeavesPreparedSnapshot(t *testing.T) {
	provider, err := New[string](snapshotData(), solver.NewSequentialPhragmen[string](),
		WithMaxWinners(10),
	)
	require.NoError(t, err)

	require.NoError(t, provider.Prepare())

	_, err = provider.InstantElect(bounds.NewUnbounded(), bounds.NewUnbounded())
	require.NoError(t, err)

	assert.True(t, provider.Ongoing())
}

func TestProvider_SolverOverflowIsRejected(t *testing.T) {
	misbehaving := &electiontest.Solver[string]{
		Result: &types.ElectionResult[string]{
			Winners: []types.Winner[string]{
				{Who: "t0"}, {Who: "t1"}, {Who: "t2"},
			},
		},
	}

	provider, err := New[string](snapshotData(), misbehaving, WithMaxWinners(2))
	require.NoError(t, err)

	_, err = provider.Elect()
	require.ErrorIs(t, err, ErrTooManyWinners)
}

func TestNoElection(t *testing.T) {
	provider := NewNoElection[string](snapshotData())

	assert.False(t, provider.Ongoing())
	assert.Equal(t, uint32(0), provider.MaxWinners())
	assert.NotNil(t, provider.DataProvider())

	_, err := provider.Elect()
	require.ErrorIs(t, err, ErrNoElectionConfigured)

	_, err = provider.InstantElect(bounds.NewUnbounded(), bounds.NewUnbounded())
	require.ErrorIs(t, err, ErrNoElectionConfigured)
}
