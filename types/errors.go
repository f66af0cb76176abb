package types

import "errors"

// Sentinel errors for the election library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components use these sentinels for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Data-provider errors carry an opaque, provider-specific reason and are
// propagated verbatim; nothing in this library retries them, since
// providers are assumed deterministic.

// Election provider errors.
var (
	// ErrNoElectionConfigured is returned by NoElection for every election
	// operation.
	ErrNoElectionConfigured = errors.New("no election configured: cannot do anything")

	// ErrTooManyWinners is returned when the data provider desires, or the
	// solver produces, more winners than the provider's MaxWinners ceiling.
	ErrTooManyWinners = errors.New("desired targets must not be greater than max winners")

	// ErrElectionOngoing is returned when a new snapshot is prepared while
	// a previously prepared one has not been consumed.
	ErrElectionOngoing = errors.New("election already ongoing")

	// ErrWeightOverLimit is returned when the solver's predicted weight
	// exceeds the provider's configured admission limit.
	ErrWeightOverLimit = errors.New("solver weight exceeds the configured limit")

	// ErrDataProviderRequired is returned when a provider is constructed
	// without a data provider.
	ErrDataProviderRequired = errors.New("election data provider is required")

	// ErrSolverRequired is returned when a provider is constructed without
	// a solver.
	ErrSolverRequired = errors.New("npos solver is required")
)

// Index-assignment errors. These are always fatal to the current
// compression attempt; they indicate a consistency bug between the
// canonical snapshot and the solver output, never a user-facing condition.
var (
	// ErrInvalidIndex is returned when an assignment references an
	// identifier absent from the canonical voter or target list.
	ErrInvalidIndex = errors.New("invalid index in solution")
)

// Solver errors.
var (
	// ErrDuplicateCandidate is returned when the target list handed to a
	// solver contains the same identifier twice.
	ErrDuplicateCandidate = errors.New("duplicate candidate in target list")

	// ErrDuplicateVoter is returned when the voter list handed to a solver
	// contains the same identifier twice.
	ErrDuplicateVoter = errors.New("duplicate voter in voter list")
)

// Sorted-list errors. The list never auto-corrects: a failed insert is
// never turned into an update, and vice versa.
var (
	// ErrDuplicateMember is returned when inserting an id that is already
	// in the list.
	ErrDuplicateMember = errors.New("member already in list")

	// ErrMemberNotFound is returned when updating, removing, scoring, or
	// iterating from an id that is not in the list.
	ErrMemberNotFound = errors.New("member not in list")
)
