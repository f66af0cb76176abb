package types

import "github.com/blob-chain/substrate/bounds"

// ElectionDataProvider supplies the data an election needs: the electable
// targets, the electing voters, and the desired winner count.
//
// Implementations must self-limit their output to the bounds they are
// handed; a violation is the implementation's fault, not the caller's.
// The contract assumes honest self-weighing.
type ElectionDataProvider[A comparable] interface {
	// ElectableTargets returns all targets that could become elected,
	// limited to the given bounds. The error reason is opaque and
	// propagated verbatim.
	ElectableTargets(b bounds.DataProviderBounds) ([]A, error)

	// ElectingVoters returns all voters participating in the election,
	// limited to the given bounds. If a notion of self-vote exists it is
	// represented here.
	ElectingVoters(b bounds.DataProviderBounds) ([]Voter[A], error)

	// DesiredTargets returns the number of winners wanted.
	DesiredTargets() (uint32, error)

	// NextElectionPrediction is a best-effort hint for when the next
	// Elect call is expected. Purely advisory; stateless providers ignore
	// it, stateful ones can use it to prepare results ahead of time.
	NextElectionPrediction(now BlockNumber) BlockNumber

	// MaxVotesPerVoter is the cap on the vote list of every voter this
	// provider emits.
	MaxVotesPerVoter() uint32
}

// ElectionProviderBase is the common surface of all election providers:
// the winner ceiling and the linked data provider.
type ElectionProviderBase[A comparable] interface {
	// MaxWinners is the upper bound on election winners that can be
	// returned.
	MaxWinners() uint32

	// DataProvider returns the data provider of the election.
	DataProvider() ElectionDataProvider[A]
}

// ElectionProvider elects a new set of winners, bounded by MaxWinners.
//
// The provider may function asynchronously: it can require data ahead of
// time (ergo Elect receives no arguments; all data is pulled through the
// data provider) and can be ongoing at times.
type ElectionProvider[A comparable] interface {
	ElectionProviderBase[A]

	// Ongoing reports whether a multi-step election is being prepared.
	Ongoing() bool

	// Elect performs the election, consuming the current data-provider
	// snapshot, and returns winners as a bounded mapping from target to
	// aggregated backing, capped at MaxWinners. On success the provider
	// returns to the idle state; on failure no state commit occurs.
	Elect() (Supports[A], error)
}

// InstantElectionProvider is the synchronous variant for emergency or
// fallback use. It uses the same data provider, but the caller can
// override the bounds that would otherwise be derived internally, for
// when the primary pipeline is unavailable and a tighter, immediately
// computable bound is required.
type InstantElectionProvider[A comparable] interface {
	ElectionProviderBase[A]

	// InstantElect performs a synchronous election under the forced
	// bounds. Forced bounds compose with the configured ones via Max, so
	// they can only tighten.
	InstantElect(forcedVoters, forcedTargets bounds.DataProviderBounds) (Supports[A], error)
}

// DesiredTargetsChecked calls the provider's data provider for the
// desired winner count and fails with ErrTooManyWinners if the value
// exceeds the provider's MaxWinners; otherwise the value is returned
// unchanged. The check rejects before any computation and is not
// retryable: the caller must reconfigure.
func DesiredTargetsChecked[A comparable](p ElectionProviderBase[A]) (uint32, error) {
	desired, err := p.DataProvider().DesiredTargets()
	if err != nil {
		return 0, err
	}
	if desired > p.MaxWinners() {
		return 0, ErrTooManyWinners
	}

	return desired, nil
}
