package types

import "github.com/holiman/uint256"

// Winner is an elected target together with the total stake backing it.
type Winner[A comparable] struct {
	Who     A
	Backing *uint256.Int
}

// ElectionResult is the raw output of an NposSolver: the winners in
// election order and the proportional per-voter assignments producing
// them.
type ElectionResult[A comparable] struct {
	Winners     []Winner[A]
	Assignments []Assignment[A]
}

// WinnerIDs returns the winners' identifiers in election order.
func (r *ElectionResult[A]) WinnerIDs() []A {
	ids := make([]A, len(r.Winners))
	for i, w := range r.Winners {
		ids[i] = w.Who
	}

	return ids
}

// NposSolver computes the result of an NPoS election. Implementations are
// strategies over an external proportional-apportionment engine and
// expose identical interfaces, so the active algorithm is swappable by
// configuration alone without touching calling code.
type NposSolver[A comparable] interface {
	// Solve computes winners and per-voter assignments, electing up to
	// toElect of the given targets from the given weighted voters.
	Solve(toElect int, targets []A, voters []Voter[A]) (*ElectionResult[A], error)

	// Weight predicts the execution cost of Solve for admission control:
	// consumers consult it before invocation to decide whether the solve
	// fits the enclosing step's computation budget at all.
	//
	// Parameters:
	//   - voters: Number of voters
	//   - targets: Number of targets
	//   - voteDegree: Maximum number of votes per voter
	Weight(voters, targets, voteDegree uint32) Weight
}
