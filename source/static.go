package source

import (
	"github.com/blob-chain/substrate/bounds"
	"github.com/blob-chain/substrate/internal/logging"
	"github.com/blob-chain/substrate/types"
)

// Static is an election data provider backed by an explicit in-memory
// snapshot. It is not safe for concurrent use.
type Static[A comparable] struct {
	voters  []types.Voter[A]
	targets []A
	desired uint32

	maxVotesPerVoter uint32
	sizeOf           func(types.Voter[A]) bounds.SizeBound
	logger           types.Logger
}

// Compile-time assertion that Static implements ElectionDataProvider.
var _ types.ElectionDataProvider[string] = (*Static[string])(nil)

// NewStatic creates an empty static data provider.
//
// Parameters:
//   - desired: The number of winners the election should produce
//   - opts: Optional configuration (WithMaxVotesPerVoter, WithVoterSize,
//     WithLogger)
//
// Returns:
//   - *Static[A]: An empty provider; populate it with PutSnapshot,
//     AddVoter and AddTarget
func NewStatic[A comparable](desired uint32, opts ...StaticOption[A]) *Static[A] {
	options := newStaticOptions[A](opts)

	return &Static[A]{
		desired:          desired,
		maxVotesPerVoter: options.maxVotesPerVoter,
		sizeOf:           options.sizeOf,
		logger:           options.logger,
	}
}

// PutSnapshot replaces the whole electorate in one call.
func (s *Static[A]) PutSnapshot(voters []types.Voter[A], targets []A) {
	s.voters = voters
	s.targets = targets

	s.logger.Debug("snapshot replaced", "voters", len(voters), "targets", len(targets))
}

// AddVoter appends a single voter to the snapshot. Votes beyond
// MaxVotesPerVoter are truncated.
func (s *Static[A]) AddVoter(who A, stake types.VoteWeight, votes []A) {
	if uint32(len(votes)) > s.maxVotesPerVoter {
		votes = votes[:s.maxVotesPerVoter]
	}

	s.voters = append(s.voters, types.Voter[A]{Who: who, Stake: stake, Votes: votes})
}

// AddTarget appends a single target to the snapshot.
func (s *Static[A]) AddTarget(target A) {
	s.targets = append(s.targets, target)
}

// SetDesiredTargets changes the desired winner count.
func (s *Static[A]) SetDesiredTargets(desired uint32) {
	s.desired = desired
}

// Clear empties the snapshot.
func (s *Static[A]) Clear() {
	s.voters = nil
	s.targets = nil
}

// ElectableTargets returns the snapshot's targets, truncated to the
// given count bound. Targets carry no size accounting.
func (s *Static[A]) ElectableTargets(b bounds.DataProviderBounds) ([]A, error) {
	taken := make([]A, 0, len(s.targets))
	for _, target := range s.targets {
		if b.CountExhausted(bounds.CountBound(len(taken) + 1)) {
			break
		}

		taken = append(taken, target)
	}

	return taken, nil
}

// ElectingVoters returns the snapshot's voters, truncated to the given
// bounds. Size is only observed when the provider was configured with
// WithVoterSize; otherwise size bounds never trip.
func (s *Static[A]) ElectingVoters(b bounds.DataProviderBounds) ([]types.Voter[A], error) {
	taken := make([]types.Voter[A], 0, len(s.voters))

	var size *bounds.SizeBound
	if s.sizeOf != nil {
		zero := bounds.SizeBound(0)
		size = &zero
	}

	for _, voter := range s.voters {
		next := bounds.CountBound(len(taken) + 1)
		if size != nil {
			grown := size.Add(s.sizeOf(voter))
			if b.Exhausted(&grown, &next) {
				break
			}

			*size = grown
		} else if b.Exhausted(nil, &next) {
			break
		}

		taken = append(taken, voter)
	}

	return taken, nil
}

// DesiredTargets returns the configured winner count.
func (s *Static[A]) DesiredTargets() (uint32, error) {
	return s.desired, nil
}

// NextElectionPrediction is advisory; the static provider has no
// schedule and reports "now".
func (s *Static[A]) NextElectionPrediction(now types.BlockNumber) types.BlockNumber {
	return now
}

// MaxVotesPerVoter returns the per-voter vote cap.
func (s *Static[A]) MaxVotesPerVoter() uint32 {
	return s.maxVotesPerVoter
}

// StaticOption configures a Static provider.
type StaticOption[A comparable] func(*staticOptions[A])

type staticOptions[A comparable] struct {
	maxVotesPerVoter uint32
	sizeOf           func(types.Voter[A]) bounds.SizeBound
	logger           types.Logger
}

func newStaticOptions[A comparable](opts []StaticOption[A]) staticOptions[A] {
	options := staticOptions[A]{
		maxVotesPerVoter: 16,
		logger:           logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	return options
}

// WithMaxVotesPerVoter sets the per-voter vote cap. Defaults to 16.
func WithMaxVotesPerVoter[A comparable](maxVotes uint32) StaticOption[A] {
	return func(o *staticOptions[A]) {
		o.maxVotesPerVoter = maxVotes
	}
}

// WithVoterSize installs a per-voter size measure so that size bounds
// take effect. Without it the provider makes no size observations and
// only count bounds apply.
func WithVoterSize[A comparable](sizeOf func(types.Voter[A]) bounds.SizeBound) StaticOption[A] {
	return func(o *staticOptions[A]) {
		o.sizeOf = sizeOf
	}
}

// WithStaticLogger sets the logger. Defaults to a no-op logger.
func WithStaticLogger[A comparable](logger types.Logger) StaticOption[A] {
	return func(o *staticOptions[A]) {
		o.logger = logger
	}
}
