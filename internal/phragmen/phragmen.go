// Package phragmen implements the proportional-apportionment engine the
// solver adapters forward to: sequential phragmen, an MMS-style variant,
// and the iterative balancing pass both can apply.
//
// All arithmetic is integer-only. Voter loads and candidate scores are
// fixed-point values scaled by 2^96 and carried in 256-bit integers, so
// the engine is deterministic across platforms and never overflows for
// 64-bit stake weights.
package phragmen

import (
	"github.com/holiman/uint256"

	"github.com/blob-chain/substrate/types"
)

// fpShift is the binary exponent of the fixed-point scale used for loads
// and scores.
const fpShift = 96

// fpOne returns the fixed-point representation of one.
func fpOne() *uint256.Int {
	return new(uint256.Int).Lsh(uint256.NewInt(1), fpShift)
}

// BalancingConfig bounds the iterative refinement pass that trades extra
// computation for a more even stake distribution across winners.
type BalancingConfig struct {
	// Iterations is the maximum number of balancing passes.
	Iterations int

	// Tolerance stops iterating early once the largest per-pass stake
	// move is at or below this amount.
	Tolerance uint64
}

type candidate[A comparable] struct {
	who      A
	order    int
	approval *uint256.Int
	score    *uint256.Int
	backing  *uint256.Int
	elected  bool
}

type edge[A comparable] struct {
	cand  *candidate[A]
	load  *uint256.Int
	stake *uint256.Int
}

type voter[A comparable] struct {
	who    A
	budget types.VoteWeight
	load   *uint256.Int
	edges  []*edge[A]
}

// setup links voters to the candidates they vote for. Votes referencing
// unknown targets are dropped; duplicate identifiers in either input list
// are an error.
func setup[A comparable](targets []A, electing []types.Voter[A]) ([]*candidate[A], []*voter[A], error) {
	candidates := make([]*candidate[A], 0, len(targets))
	byID := make(map[A]*candidate[A], len(targets))
	for i, who := range targets {
		if _, dup := byID[who]; dup {
			return nil, nil, types.ErrDuplicateCandidate
		}
		c := &candidate[A]{
			who:      who,
			order:    i,
			approval: uint256.NewInt(0),
			score:    uint256.NewInt(0),
			backing:  uint256.NewInt(0),
		}
		candidates = append(candidates, c)
		byID[who] = c
	}

	voters := make([]*voter[A], 0, len(electing))
	seen := make(map[A]struct{}, len(electing))
	for _, ev := range electing {
		if _, dup := seen[ev.Who]; dup {
			return nil, nil, types.ErrDuplicateVoter
		}
		seen[ev.Who] = struct{}{}
		if ev.Stake == 0 {
			continue
		}

		v := &voter[A]{who: ev.Who, budget: ev.Stake, load: uint256.NewInt(0)}
		linked := make(map[A]struct{}, len(ev.Votes))
		for _, target := range ev.Votes {
			c, ok := byID[target]
			if !ok {
				continue
			}
			if _, dup := linked[target]; dup {
				continue
			}
			linked[target] = struct{}{}
			c.approval.Add(c.approval, uint256.NewInt(uint64(ev.Stake)))
			v.edges = append(v.edges, &edge[A]{cand: c, load: uint256.NewInt(0), stake: uint256.NewInt(0)})
		}
		voters = append(voters, v)
	}

	return candidates, voters, nil
}

// SeqPhragmen elects up to toElect targets with the sequential phragmen
// method, optionally followed by a balancing pass.
func SeqPhragmen[A comparable](
	toElect int,
	targets []A,
	electing []types.Voter[A],
	balancing *BalancingConfig,
) (*types.ElectionResult[A], error) {
	candidates, voters, err := setup(targets, electing)
	if err != nil {
		return nil, err
	}

	elected := make([]*candidate[A], 0, toElect)
	for len(elected) < toElect {
		// Initial score of every unelected candidate is 1/approval.
		for _, c := range candidates {
			if c.elected || c.approval.IsZero() {
				continue
			}
			c.score.Div(fpOne(), c.approval)
		}

		// Each voter adds load * budget / approval to its candidates.
		for _, v := range voters {
			if v.load.IsZero() {
				continue
			}
			for _, e := range v.edges {
				if e.cand.elected || e.cand.approval.IsZero() {
					continue
				}
				term := new(uint256.Int).Mul(v.load, uint256.NewInt(uint64(v.budget)))
				term.Div(term, e.cand.approval)
				e.cand.score.Add(e.cand.score, term)
			}
		}

		// The round winner is the candidate with the least score; ties
		// break on target-list order for determinism.
		var winner *candidate[A]
		for _, c := range candidates {
			if c.elected || c.approval.IsZero() {
				continue
			}
			if winner == nil || c.score.Cmp(winner.score) < 0 {
				winner = c
			}
		}
		if winner == nil {
			break
		}
		winner.elected = true
		elected = append(elected, winner)

		// Voters backing the winner absorb its score as their new load;
		// the edge keeps the difference.
		for _, v := range voters {
			for _, e := range v.edges {
				if e.cand == winner {
					e.load.Sub(winner.score, v.load)
					v.load.Set(winner.score)
				}
			}
		}
	}

	loadsToStakes(voters)
	if balancing != nil && balancing.Iterations > 0 {
		balance(voters, balancing.Iterations, balancing.Tolerance)
	}

	return finalize(elected, voters), nil
}

// loadsToStakes converts fixed-point edge loads into staked amounts:
// stake = budget * edgeLoad / voterLoad. Elected edge loads of one voter
// sum to the voter's load, so its stakes sum to its budget.
func loadsToStakes[A comparable](voters []*voter[A]) {
	for _, v := range voters {
		if v.load.IsZero() {
			continue
		}
		for _, e := range v.edges {
			if !e.cand.elected || e.load.IsZero() {
				continue
			}
			stake := new(uint256.Int).Mul(uint256.NewInt(uint64(v.budget)), e.load)
			e.stake = stake.Div(stake, v.load)
		}
	}
}

// finalize turns the engine state into an ElectionResult: winners in
// election order with their total backing, and proportional per-voter
// assignments in voter input order.
func finalize[A comparable](elected []*candidate[A], voters []*voter[A]) *types.ElectionResult[A] {
	result := &types.ElectionResult[A]{}

	for _, v := range voters {
		total := uint256.NewInt(0)
		for _, e := range v.edges {
			if e.cand.elected {
				total.Add(total, e.stake)
				e.cand.backing.Add(e.cand.backing, e.stake)
			}
		}
		if total.IsZero() {
			continue
		}

		assignment := types.Assignment[A]{Who: v.who}
		for _, e := range v.edges {
			if !e.cand.elected || e.stake.IsZero() {
				continue
			}
			assignment.Distribution = append(assignment.Distribution, types.Share[A]{
				Target:     e.cand.who,
				Proportion: types.PerbillFromBalances(e.stake, total),
			})
		}
		normalize(assignment.Distribution)
		result.Assignments = append(result.Assignments, assignment)
	}

	for _, c := range elected {
		result.Winners = append(result.Winners, types.Winner[A]{Who: c.who, Backing: c.backing})
	}

	return result
}

// normalize fixes division rounding so a voter's proportions sum to
// exactly one, adjusting the largest share.
func normalize[A comparable](distribution []types.Share[A]) {
	if len(distribution) == 0 {
		return
	}

	sum := uint64(0)
	largest := 0
	for i, share := range distribution {
		sum += uint64(share.Proportion.Deconstruct())
		if share.Proportion > distribution[largest].Proportion {
			largest = i
		}
	}

	one := uint64(types.PerbillOne().Deconstruct())
	current := uint64(distribution[largest].Proportion.Deconstruct())
	switch {
	case sum < one:
		distribution[largest].Proportion = types.PerbillFromParts(uint32(current + (one - sum)))
	case sum > one:
		diff := sum - one
		if current > diff {
			distribution[largest].Proportion = types.PerbillFromParts(uint32(current - diff))
		} else {
			distribution[largest].Proportion = 0
		}
	}
}
