package types

import "github.com/holiman/uint256"

// Support is the aggregated backing record of an elected target: the
// total stake behind it and the contributing voters with their staked
// amounts. Totals are extended-precision (256-bit) so sums of 64-bit
// stakes cannot overflow.
type Support[A comparable] struct {
	Total  *uint256.Int
	Voters []Backing[A]
}

// Backing is one voter's staked contribution to an elected target.
type Backing[A comparable] struct {
	Who   A
	Stake *uint256.Int
}

// TargetSupport pairs an elected target with its support.
type TargetSupport[A comparable] struct {
	Who     A
	Support Support[A]
}

// Supports is the winner set of one election: a bounded mapping from
// target identifier to aggregated backing, in winner order.
type Supports[A comparable] []TargetSupport[A]

// SupportsFromAssignments aggregates per-voter proportional assignments
// into per-target supports. Each share contributes
// proportion * stakeOf(voter) to its target; winner order follows the
// supplied winners list.
//
// Parameters:
//   - winners: Elected targets in winner order
//   - assignments: Per-voter proportional assignments from the solver
//   - stakeOf: The stake weight of a voter in the snapshot
//
// Returns:
//   - Supports[A]: Aggregated per-target backing, in winner order
func SupportsFromAssignments[A comparable](
	winners []A,
	assignments []Assignment[A],
	stakeOf func(A) VoteWeight,
) Supports[A] {
	index := make(map[A]int, len(winners))
	supports := make(Supports[A], len(winners))
	for i, who := range winners {
		index[who] = i
		supports[i] = TargetSupport[A]{Who: who, Support: Support[A]{Total: uint256.NewInt(0)}}
	}

	for _, assignment := range assignments {
		budget := stakeOf(assignment.Who)
		for _, share := range assignment.Distribution {
			i, ok := index[share.Target]
			if !ok {
				continue
			}
			stake := share.Proportion.Mul(budget)
			if stake.IsZero() {
				continue
			}
			supports[i].Support.Total.Add(supports[i].Support.Total, stake)
			supports[i].Support.Voters = append(supports[i].Support.Voters, Backing[A]{
				Who:   assignment.Who,
				Stake: stake,
			})
		}
	}

	return supports
}
