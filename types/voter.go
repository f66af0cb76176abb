package types

// VoteWeight is the stake weight a voter puts behind its votes.
type VoteWeight uint64

// BlockNumber is the chain-height type used by election prediction hooks.
// The prediction is purely advisory, so a plain unsigned height suffices.
type BlockNumber = uint64

// Voter is an election participant: its identifier, its stake weight, and
// the targets it votes for. The vote list is capped at the data
// provider's MaxVotesPerVoter.
type Voter[A comparable] struct {
	Who   A
	Stake VoteWeight
	Votes []A
}
