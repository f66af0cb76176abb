package substrate

import "github.com/blob-chain/substrate/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types
// and interfaces. It uses type aliases to re-export definitions from the
// `types` subpackage, which contains the actual declarations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root package,
// while still providing a convenient `substrate.Voter`,
// `substrate.Supports`, etc. for users.
type (
	Voter[A comparable]           = types.Voter[A]
	Assignment[A comparable]      = types.Assignment[A]
	Share[A comparable]           = types.Share[A]
	IndexAssignment               = types.IndexAssignment
	Support[A comparable]         = types.Support[A]
	TargetSupport[A comparable]   = types.TargetSupport[A]
	Supports[A comparable]        = types.Supports[A]
	ElectionResult[A comparable]  = types.ElectionResult[A]
	Winner[A comparable]          = types.Winner[A]
	Perbill                       = types.Perbill
	Score                         = types.Score
	VoteWeight                    = types.VoteWeight
	BlockNumber                   = types.BlockNumber
	Weight                        = types.Weight
)

// Re-export interfaces from the types package for convenience.
type (
	ElectionDataProvider[A comparable]    = types.ElectionDataProvider[A]
	ElectionProvider[A comparable]        = types.ElectionProvider[A]
	InstantElectionProvider[A comparable] = types.InstantElectionProvider[A]
	NposSolver[A comparable]              = types.NposSolver[A]
	SortedListProvider[A comparable]      = types.SortedListProvider[A]
	ScoreProvider[A comparable]           = types.ScoreProvider[A]
	WeightInfo                            = types.WeightInfo
	MetricsCollector                      = types.MetricsCollector
	Logger                                = types.Logger
)

// Re-export sentinel errors from the types package.
var (
	ErrNoElectionConfigured = types.ErrNoElectionConfigured
	ErrTooManyWinners       = types.ErrTooManyWinners
	ErrElectionOngoing      = types.ErrElectionOngoing
	ErrWeightOverLimit      = types.ErrWeightOverLimit
	ErrDataProviderRequired = types.ErrDataProviderRequired
	ErrSolverRequired       = types.ErrSolverRequired
	ErrInvalidIndex         = types.ErrInvalidIndex
	ErrDuplicateCandidate   = types.ErrDuplicateCandidate
	ErrDuplicateVoter       = types.ErrDuplicateVoter
	ErrDuplicateMember      = types.ErrDuplicateMember
	ErrMemberNotFound       = types.ErrMemberNotFound
)
