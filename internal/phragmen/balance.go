package phragmen

import (
	"slices"

	"github.com/holiman/uint256"
)

// balance runs up to iterations passes of per-voter stake redistribution,
// evening out the support behind elected candidates. It stops early once
// the largest stake moved in a pass is at or below tolerance.
func balance[A comparable](voters []*voter[A], iterations int, tolerance uint64) {
	supports := make(map[*candidate[A]]*uint256.Int)
	for _, v := range voters {
		for _, e := range v.edges {
			if !e.cand.elected {
				continue
			}
			if _, ok := supports[e.cand]; !ok {
				supports[e.cand] = uint256.NewInt(0)
			}
			supports[e.cand].Add(supports[e.cand], e.stake)
		}
	}

	for range iterations {
		maxMove := uint256.NewInt(0)
		for _, v := range voters {
			move := balanceVoter(v, supports)
			if move.Cmp(maxMove) > 0 {
				maxMove = move
			}
		}
		if maxMove.CmpUint64(tolerance) <= 0 {
			return
		}
	}
}

// balanceVoter redistributes one voter's budget across its elected edges
// so their supports end up as even as the budget allows (water-filling
// over the residual supports). Returns the largest single stake move.
func balanceVoter[A comparable](v *voter[A], supports map[*candidate[A]]*uint256.Int) *uint256.Int {
	elected := make([]*edge[A], 0, len(v.edges))
	for _, e := range v.edges {
		if e.cand.elected {
			elected = append(elected, e)
		}
	}
	if len(elected) < 2 {
		return uint256.NewInt(0)
	}

	// Residual support of each target without this voter's contribution.
	residuals := make(map[*edge[A]]*uint256.Int, len(elected))
	for _, e := range elected {
		support := supports[e.cand]
		support.Sub(support, e.stake)
		residuals[e] = new(uint256.Int).Set(support)
	}

	slices.SortStableFunc(elected, func(a, b *edge[A]) int {
		if c := residuals[a].Cmp(residuals[b]); c != 0 {
			return c
		}

		return a.cand.order - b.cand.order
	})

	budget := uint256.NewInt(uint64(v.budget))

	// Water-fill: find the cut k and the common level such that filling
	// the k lowest residuals up to the level consumes the budget.
	cumulative := uint256.NewInt(0)
	level := uint256.NewInt(0)
	cut := len(elected)
	for k := 1; k <= len(elected); k++ {
		cumulative.Add(cumulative, residuals[elected[k-1]])
		level = new(uint256.Int).Add(cumulative, budget)
		level.Div(level, uint256.NewInt(uint64(k)))
		if k == len(elected) || level.Cmp(residuals[elected[k]]) <= 0 {
			cut = k
			break
		}
	}

	maxMove := uint256.NewInt(0)
	assigned := uint256.NewInt(0)
	for i, e := range elected {
		newStake := uint256.NewInt(0)
		if i < cut && level.Cmp(residuals[e]) > 0 {
			newStake = new(uint256.Int).Sub(level, residuals[e])
		}
		assigned.Add(assigned, newStake)

		move := new(uint256.Int)
		if newStake.Cmp(e.stake) >= 0 {
			move.Sub(newStake, e.stake)
		} else {
			move.Sub(e.stake, newStake)
		}
		if move.Cmp(maxMove) > 0 {
			maxMove = move
		}
		e.stake = newStake
	}

	// Division dust goes to the lowest-residual edge so the voter's full
	// budget stays assigned.
	if dust := new(uint256.Int).Sub(budget, assigned); !dust.IsZero() {
		elected[0].stake.Add(elected[0].stake, dust)
	}

	for _, e := range elected {
		supports[e.cand].Add(supports[e.cand], e.stake)
	}

	return maxMove
}
