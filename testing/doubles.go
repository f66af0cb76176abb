package testing

import (
	"github.com/blob-chain/substrate/bounds"
	"github.com/blob-chain/substrate/types"
)

// DataProvider is a scripted types.ElectionDataProvider. Fields are
// returned verbatim; the error fields, when set, fail the corresponding
// call. Bounds are applied by truncation so tests can exercise the
// self-limiting contract.
type DataProvider[A comparable] struct {
	Voters  []types.Voter[A]
	Targets []A
	Desired uint32

	VotersErr  error
	TargetsErr error
	DesiredErr error

	MaxVotes uint32

	// Call counters, for asserting how often a provider pulls data.
	VotersCalls  int
	TargetsCalls int
}

var _ types.ElectionDataProvider[string] = (*DataProvider[string])(nil)

// NewDataProvider creates a scripted provider with the given desired
// winner count and a vote cap of 16.
func NewDataProvider[A comparable](desired uint32) *DataProvider[A] {
	return &DataProvider[A]{Desired: desired, MaxVotes: 16}
}

func (d *DataProvider[A]) ElectableTargets(b bounds.DataProviderBounds) ([]A, error) {
	d.TargetsCalls++
	if d.TargetsErr != nil {
		return nil, d.TargetsErr
	}

	out := d.Targets
	if b.Count != nil && uint32(len(out)) > uint32(*b.Count) {
		out = out[:*b.Count]
	}

	return out, nil
}

func (d *DataProvider[A]) ElectingVoters(b bounds.DataProviderBounds) ([]types.Voter[A], error) {
	d.VotersCalls++
	if d.VotersErr != nil {
		return nil, d.VotersErr
	}

	out := d.Voters
	if b.Count != nil && uint32(len(out)) > uint32(*b.Count) {
		out = out[:*b.Count]
	}

	return out, nil
}

func (d *DataProvider[A]) DesiredTargets() (uint32, error) {
	if d.DesiredErr != nil {
		return 0, d.DesiredErr
	}

	return d.Desired, nil
}

func (d *DataProvider[A]) NextElectionPrediction(now types.BlockNumber) types.BlockNumber {
	return now
}

func (d *DataProvider[A]) MaxVotesPerVoter() uint32 {
	return d.MaxVotes
}

// Solver is a scripted types.NposSolver. When Err is set every Solve
// fails with it; otherwise Result is returned verbatim. FixedWeight is
// what Weight reports regardless of input.
type Solver[A comparable] struct {
	Result      *types.ElectionResult[A]
	Err         error
	FixedWeight types.Weight

	SolveCalls int
}

var _ types.NposSolver[string] = (*Solver[string])(nil)

func (s *Solver[A]) Solve(_ int, _ []A, _ []types.Voter[A]) (*types.ElectionResult[A], error) {
	s.SolveCalls++
	if s.Err != nil {
		return nil, s.Err
	}

	return s.Result, nil
}

func (s *Solver[A]) Weight(_, _, _ uint32) types.Weight {
	return s.FixedWeight
}
