package phragmen

import (
	"github.com/holiman/uint256"

	"github.com/blob-chain/substrate/types"
)

// defaultMMSIterations is the per-round balancing depth used when the
// caller supplies no balancing configuration. PhragMMS balances after
// every round by construction; the configuration only tunes how hard.
const defaultMMSIterations = 4

// Phragmms elects up to toElect targets with an MMS-style method: each
// round elects the candidate that can attract the most still-unassigned
// stake, then rebalances the whole assignment, maximizing the minimum
// support behind the elected set as rounds progress.
func Phragmms[A comparable](
	toElect int,
	targets []A,
	electing []types.Voter[A],
	balancing *BalancingConfig,
) (*types.ElectionResult[A], error) {
	candidates, voters, err := setup(targets, electing)
	if err != nil {
		return nil, err
	}

	iterations := defaultMMSIterations
	tolerance := uint64(0)
	if balancing != nil && balancing.Iterations > 0 {
		iterations = balancing.Iterations
		tolerance = balancing.Tolerance
	}

	elected := make([]*candidate[A], 0, toElect)
	for len(elected) < toElect {
		winner := selectMMSWinner(candidates, voters)
		if winner == nil {
			break
		}
		winner.elected = true
		elected = append(elected, winner)

		// Supporters pour their unassigned budget behind the new winner;
		// the balancing pass then evens the whole elected set out.
		for _, v := range voters {
			for _, e := range v.edges {
				if e.cand == winner {
					e.stake.Add(e.stake, unassigned(v))
				}
			}
		}
		balance(voters, iterations, tolerance)
	}

	return finalize(elected, voters), nil
}

// selectMMSWinner scores every unelected candidate by the unassigned
// stake of its supporters and returns the best one. Ties break on larger
// approval, then target-list order. When all budget is already assigned
// the candidate with the largest approval wins, since balancing can still
// shift stake its way.
func selectMMSWinner[A comparable](candidates []*candidate[A], voters []*voter[A]) *candidate[A] {
	prospective := make(map[*candidate[A]]*uint256.Int)
	for _, v := range voters {
		free := unassigned(v)
		if free.IsZero() {
			continue
		}
		for _, e := range v.edges {
			if e.cand.elected {
				continue
			}
			if _, ok := prospective[e.cand]; !ok {
				prospective[e.cand] = uint256.NewInt(0)
			}
			prospective[e.cand].Add(prospective[e.cand], free)
		}
	}

	var winner *candidate[A]
	var winnerScore *uint256.Int
	for _, c := range candidates {
		if c.elected || c.approval.IsZero() {
			continue
		}
		score, ok := prospective[c]
		if !ok {
			score = uint256.NewInt(0)
		}
		if winner == nil {
			winner, winnerScore = c, score
			continue
		}
		switch score.Cmp(winnerScore) {
		case 1:
			winner, winnerScore = c, score
		case 0:
			if c.approval.Cmp(winner.approval) > 0 {
				winner, winnerScore = c, score
			}
		}
	}

	return winner
}

// unassigned returns the part of a voter's budget not yet staked behind
// an elected candidate.
func unassigned[A comparable](v *voter[A]) *uint256.Int {
	free := uint256.NewInt(uint64(v.budget))
	for _, e := range v.edges {
		if e.cand.elected {
			free.Sub(free, e.stake)
		}
	}

	return free
}
