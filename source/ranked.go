package source

import (
	"github.com/blob-chain/substrate/bounds"
	"github.com/blob-chain/substrate/internal/logging"
	"github.com/blob-chain/substrate/types"
)

// Ranked is an election data provider that draws its voters from a
// sorted list, heaviest first. When bounds truncate the electorate, the
// members dropped are always the lowest-ranked ones.
//
// Stake is read from the score authority at snapshot time, so the list
// only needs to be approximately ordered; a member whose stake changed
// since its last reposition still votes with its current stake.
type Ranked[A comparable] struct {
	list    types.SortedListProvider[A]
	stakeOf types.ScoreProvider[A]
	votesOf func(A) []A
	targets func() []A
	desired uint32

	maxVotesPerVoter uint32
	sizeOf           func(types.Voter[A]) bounds.SizeBound
	logger           types.Logger
}

// Compile-time assertion that Ranked implements ElectionDataProvider.
var _ types.ElectionDataProvider[string] = (*Ranked[string])(nil)

// NewRanked creates a ranked data provider.
//
// Parameters:
//   - list: The ranked membership to draw voters from
//   - stakeOf: The authority for each voter's current stake
//   - votesOf: Returns the targets a voter votes for
//   - targets: Enumerates the electable targets
//   - desired: The number of winners the election should produce
//   - opts: Optional configuration (WithRankedMaxVotesPerVoter,
//     WithRankedVoterSize, WithRankedLogger)
//
// Returns:
//   - *Ranked[A]: A provider backed by the given list
func NewRanked[A comparable](
	list types.SortedListProvider[A],
	stakeOf types.ScoreProvider[A],
	votesOf func(A) []A,
	targets func() []A,
	desired uint32,
	opts ...RankedOption[A],
) *Ranked[A] {
	options := newRankedOptions[A](opts)

	return &Ranked[A]{
		list:             list,
		stakeOf:          stakeOf,
		votesOf:          votesOf,
		targets:          targets,
		desired:          desired,
		maxVotesPerVoter: options.maxVotesPerVoter,
		sizeOf:           options.sizeOf,
		logger:           options.logger,
	}
}

// ElectableTargets returns the targets, truncated to the count bound.
func (r *Ranked[A]) ElectableTargets(b bounds.DataProviderBounds) ([]A, error) {
	all := r.targets()
	taken := make([]A, 0, len(all))
	for _, target := range all {
		if b.CountExhausted(bounds.CountBound(len(taken) + 1)) {
			break
		}

		taken = append(taken, target)
	}

	return taken, nil
}

// ElectingVoters walks the list from the top and emits voters until a
// bound is hit, so truncation sheds the lowest-ranked members first.
func (r *Ranked[A]) ElectingVoters(b bounds.DataProviderBounds) ([]types.Voter[A], error) {
	taken := make([]types.Voter[A], 0, r.list.Count())

	var size *bounds.SizeBound
	if r.sizeOf != nil {
		zero := bounds.SizeBound(0)
		size = &zero
	}

	for who := range r.list.Iter() {
		votes := r.votesOf(who)
		if uint32(len(votes)) > r.maxVotesPerVoter {
			votes = votes[:r.maxVotesPerVoter]
		}

		voter := types.Voter[A]{
			Who:   who,
			Stake: types.VoteWeight(r.stakeOf.Score(who)),
			Votes: votes,
		}

		next := bounds.CountBound(len(taken) + 1)
		if size != nil {
			grown := size.Add(r.sizeOf(voter))
			if b.Exhausted(&grown, &next) {
				break
			}

			*size = grown
		} else if b.Exhausted(nil, &next) {
			break
		}

		taken = append(taken, voter)
	}

	if uint32(len(taken)) < r.list.Count() {
		r.logger.Info("electorate truncated by bounds",
			"taken", len(taken), "members", r.list.Count())
	}

	return taken, nil
}

// DesiredTargets returns the configured winner count.
func (r *Ranked[A]) DesiredTargets() (uint32, error) {
	return r.desired, nil
}

// NextElectionPrediction is advisory; the ranked provider has no
// schedule and reports "now".
func (r *Ranked[A]) NextElectionPrediction(now types.BlockNumber) types.BlockNumber {
	return now
}

// MaxVotesPerVoter returns the per-voter vote cap.
func (r *Ranked[A]) MaxVotesPerVoter() uint32 {
	return r.maxVotesPerVoter
}

// RankedOption configures a Ranked provider.
type RankedOption[A comparable] func(*rankedOptions[A])

type rankedOptions[A comparable] struct {
	maxVotesPerVoter uint32
	sizeOf           func(types.Voter[A]) bounds.SizeBound
	logger           types.Logger
}

func newRankedOptions[A comparable](opts []RankedOption[A]) rankedOptions[A] {
	options := rankedOptions[A]{
		maxVotesPerVoter: 16,
		logger:           logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	return options
}

// WithRankedMaxVotesPerVoter sets the per-voter vote cap. Defaults to 16.
func WithRankedMaxVotesPerVoter[A comparable](maxVotes uint32) RankedOption[A] {
	return func(o *rankedOptions[A]) {
		o.maxVotesPerVoter = maxVotes
	}
}

// WithRankedVoterSize installs a per-voter size measure so that size
// bounds take effect.
func WithRankedVoterSize[A comparable](sizeOf func(types.Voter[A]) bounds.SizeBound) RankedOption[A] {
	return func(o *rankedOptions[A]) {
		o.sizeOf = sizeOf
	}
}

// WithRankedLogger sets the logger. Defaults to a no-op logger.
func WithRankedLogger[A comparable](logger types.Logger) RankedOption[A] {
	return func(o *rankedOptions[A]) {
		o.logger = logger
	}
}
