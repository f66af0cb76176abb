package substrate

import (
	"fmt"
	"math"
	"time"

	"github.com/blob-chain/substrate/bounds"
	"github.com/blob-chain/substrate/internal/hash"
	"github.com/blob-chain/substrate/types"
)

// snapshot is the election data pulled from the data provider ahead of
// solving. A provider holding a snapshot is in the Ongoing state.
type snapshot[A comparable] struct {
	voters      []types.Voter[A]
	targets     []A
	desired     uint32
	fingerprint uint64
	takenAt     time.Time
}

// Provider runs bounded elections over a data provider using a pluggable
// solver. It implements both the two-state (Prepare/Elect) protocol and
// the synchronous InstantElect fallback. Not safe for concurrent use.
type Provider[A comparable] struct {
	data   types.ElectionDataProvider[A]
	solver types.NposSolver[A]

	maxWinners uint32
	bnds       bounds.ElectionBounds
	maxWeight  *types.Weight

	logger  types.Logger
	metrics types.MetricsCollector

	prepared *snapshot[A]
}

// Compile-time assertions for the provider interfaces.
var (
	_ types.ElectionProvider[string]        = (*Provider[string])(nil)
	_ types.InstantElectionProvider[string] = (*Provider[string])(nil)
)

// New creates an election provider.
//
// Parameters:
//   - data: The election data provider to pull snapshots from (required)
//   - solver: The solving strategy (required)
//   - opts: Optional configuration (WithMaxWinners, WithBounds,
//     WithMaxWeight, WithLogger, WithMetrics)
//
// Returns:
//   - *Provider[A]: An idle provider
//   - error: ErrDataProviderRequired or ErrSolverRequired when a
//     required collaborator is missing
func New[A comparable](
	data types.ElectionDataProvider[A],
	solver types.NposSolver[A],
	opts ...Option,
) (*Provider[A], error) {
	if data == nil {
		return nil, types.ErrDataProviderRequired
	}
	if solver == nil {
		return nil, types.ErrSolverRequired
	}

	options := newOptions(opts)

	return &Provider[A]{
		data:       data,
		solver:     solver,
		maxWinners: options.maxWinners,
		bnds:       options.bounds,
		maxWeight:  options.maxWeight,
		logger:     options.logger,
		metrics:    options.metrics,
	}, nil
}

// MaxWinners returns the upper bound on election winners.
func (p *Provider[A]) MaxWinners() uint32 {
	return p.maxWinners
}

// DataProvider returns the data provider of the election.
func (p *Provider[A]) DataProvider() types.ElectionDataProvider[A] {
	return p.data
}

// Ongoing reports whether a prepared snapshot is waiting to be consumed.
func (p *Provider[A]) Ongoing() bool {
	return p.prepared != nil
}

// Prepare pulls the election data ahead of time and puts the provider in
// the Ongoing state. A second Prepare before the snapshot is consumed
// fails with ErrElectionOngoing.
func (p *Provider[A]) Prepare() error {
	if p.prepared != nil {
		return types.ErrElectionOngoing
	}

	start := time.Now()
	snap, err := p.takeSnapshot(p.bnds.Voters, p.bnds.Targets)
	if err != nil {
		p.metrics.RecordElectionAttempt("prepare", false)

		return err
	}

	p.prepared = snap
	p.metrics.RecordElectionAttempt("prepare", true)
	p.metrics.RecordElectionDuration("prepare", time.Since(start).Seconds())

	p.logger.Info("election snapshot prepared",
		"voters", len(snap.voters),
		"targets", len(snap.targets),
		"desired", snap.desired,
		"fingerprint", snap.fingerprint,
	)

	return nil
}

// Elect performs the election. A prepared snapshot is consumed if one
// exists; otherwise data is pulled on the spot. On success the provider
// returns to the idle state. On failure nothing is committed: a prepared
// snapshot stays prepared so the caller can retry or fall back.
func (p *Provider[A]) Elect() (types.Supports[A], error) {
	start := time.Now()

	snap := p.prepared
	if snap == nil {
		var err error
		snap, err = p.takeSnapshot(p.bnds.Voters, p.bnds.Targets)
		if err != nil {
			p.metrics.RecordElectionAttempt("elect", false)

			return nil, err
		}
	}

	supports, err := p.solve(snap)
	if err != nil {
		p.metrics.RecordElectionAttempt("elect", false)
		p.logger.Error("election failed",
			"error", err, "fingerprint", snap.fingerprint)

		return nil, err
	}

	p.prepared = nil
	p.metrics.RecordElectionAttempt("elect", true)
	p.metrics.RecordElectionDuration("elect", time.Since(start).Seconds())

	return supports, nil
}

// InstantElect performs a synchronous election under caller-forced
// bounds. The forced bounds compose with the configured ones via Max, so
// the caller can only tighten. The prepared snapshot, if any, is left
// untouched.
func (p *Provider[A]) InstantElect(forcedVoters, forcedTargets bounds.DataProviderBounds) (types.Supports[A], error) {
	start := time.Now()

	effective := bounds.From(p.bnds).
		VotersOrLower(forcedVoters).
		TargetsOrLower(forcedTargets).
		Build()

	snap, err := p.takeSnapshot(effective.Voters, effective.Targets)
	if err != nil {
		p.metrics.RecordElectionAttempt("instant_elect", false)

		return nil, err
	}

	supports, err := p.solve(snap)
	if err != nil {
		p.metrics.RecordElectionAttempt("instant_elect", false)

		return nil, err
	}

	p.metrics.RecordElectionAttempt("instant_elect", true)
	p.metrics.RecordElectionDuration("instant_elect", time.Since(start).Seconds())

	return supports, nil
}

// takeSnapshot pulls voters, targets and the desired winner count under
// the given bounds and checks the solver's predicted cost against the
// configured admission limit.
func (p *Provider[A]) takeSnapshot(voterBounds, targetBounds bounds.DataProviderBounds) (*snapshot[A], error) {
	desired, err := types.DesiredTargetsChecked[A](p)
	if err != nil {
		return nil, err
	}

	targets, err := p.data.ElectableTargets(targetBounds)
	if err != nil {
		return nil, fmt.Errorf("electable targets: %w", err)
	}

	voters, err := p.data.ElectingVoters(voterBounds)
	if err != nil {
		return nil, fmt.Errorf("electing voters: %w", err)
	}

	predicted := p.solver.Weight(
		saturatingLen(len(voters)),
		saturatingLen(len(targets)),
		p.data.MaxVotesPerVoter(),
	)
	p.metrics.RecordSolverWeight(predicted.RefTime)
	if p.maxWeight != nil && predicted.AnyGt(*p.maxWeight) {
		return nil, types.ErrWeightOverLimit
	}

	p.metrics.RecordSnapshotSize(len(voters), len(targets))

	return &snapshot[A]{
		voters:      voters,
		targets:     targets,
		desired:     desired,
		fingerprint: fingerprintOf(voters, targets),
		takenAt:     time.Now(),
	}, nil
}

// solve runs the solver over a snapshot and aggregates the result into
// per-target supports.
func (p *Provider[A]) solve(snap *snapshot[A]) (types.Supports[A], error) {
	result, err := p.solver.Solve(int(snap.desired), snap.targets, snap.voters)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	if uint32(len(result.Winners)) > p.maxWinners {
		// The solver was asked for a checked desired count, so this only
		// trips on a misbehaving solver.
		return nil, types.ErrTooManyWinners
	}

	stakes := make(map[A]types.VoteWeight, len(snap.voters))
	for _, voter := range snap.voters {
		stakes[voter.Who] = voter.Stake
	}

	supports := types.SupportsFromAssignments(
		result.WinnerIDs(),
		result.Assignments,
		func(who A) types.VoteWeight { return stakes[who] },
	)

	return supports, nil
}

// fingerprintOf folds the whole electorate into one xxh3 digest for log
// correlation.
func fingerprintOf[A comparable](voters []types.Voter[A], targets []A) uint64 {
	f := hash.NewFingerprint()
	f.WriteUint64(uint64(len(voters)))
	for _, voter := range voters {
		f.WriteString(fmt.Sprint(voter.Who))
		f.WriteUint64(uint64(voter.Stake))
		f.WriteUint32(uint32(len(voter.Votes)))
	}

	f.WriteUint64(uint64(len(targets)))
	for _, target := range targets {
		f.WriteString(fmt.Sprint(target))
	}

	return f.Sum()
}

func saturatingLen(n int) uint32 {
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}

	return uint32(n)
}
