package solver

import (
	"github.com/blob-chain/substrate/internal/phragmen"
	"github.com/blob-chain/substrate/types"
)

// Option configures a solving strategy.
type Option func(*options)

type options struct {
	balancing *phragmen.BalancingConfig
	weights   types.WeightInfo
}

func newOptions(opts []Option) options {
	o := options{weights: DefaultWeights{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithBalancing enables the iterative balancing pass: up to iterations
// refinement rounds, stopping early once the largest stake moved in a
// round is at or below tolerance.
func WithBalancing(iterations int, tolerance uint64) Option {
	return func(o *options) {
		o.balancing = &phragmen.BalancingConfig{Iterations: iterations, Tolerance: tolerance}
	}
}

// WithWeightInfo replaces the default cost table, typically with one
// derived from benchmarks on the deployment hardware.
func WithWeightInfo(weights types.WeightInfo) Option {
	return func(o *options) {
		if weights != nil {
			o.weights = weights
		}
	}
}

// SequentialPhragmen solves elections with the sequential phragmen
// method.
type SequentialPhragmen[A comparable] struct {
	opts options
}

var _ types.NposSolver[string] = (*SequentialPhragmen[string])(nil)

// NewSequentialPhragmen creates a sequential phragmen strategy.
//
// Parameters:
//   - opts: Optional configuration (WithBalancing, WithWeightInfo)
//
// Returns:
//   - *SequentialPhragmen[A]: Initialized strategy ready for use
func NewSequentialPhragmen[A comparable](opts ...Option) *SequentialPhragmen[A] {
	return &SequentialPhragmen[A]{opts: newOptions(opts)}
}

// Solve elects up to toElect targets from the given weighted voters.
func (s *SequentialPhragmen[A]) Solve(toElect int, targets []A, voters []types.Voter[A]) (*types.ElectionResult[A], error) {
	return phragmen.SeqPhragmen(toElect, targets, voters, s.opts.balancing)
}

// Weight predicts the execution cost of Solve.
func (s *SequentialPhragmen[A]) Weight(voters, targets, voteDegree uint32) types.Weight {
	return s.opts.weights.Phragmen(voters, targets, voteDegree)
}

// PhragMMS solves elections with the MMS-style method.
type PhragMMS[A comparable] struct {
	opts options
}

var _ types.NposSolver[string] = (*PhragMMS[string])(nil)

// NewPhragMMS creates a phragmms strategy.
//
// Parameters:
//   - opts: Optional configuration (WithBalancing, WithWeightInfo)
//
// Returns:
//   - *PhragMMS[A]: Initialized strategy ready for use
func NewPhragMMS[A comparable](opts ...Option) *PhragMMS[A] {
	return &PhragMMS[A]{opts: newOptions(opts)}
}

// Solve elects up to toElect targets from the given weighted voters.
func (p *PhragMMS[A]) Solve(toElect int, targets []A, voters []types.Voter[A]) (*types.ElectionResult[A], error) {
	return phragmen.Phragmms(toElect, targets, voters, p.opts.balancing)
}

// Weight predicts the execution cost of Solve.
func (p *PhragMMS[A]) Weight(voters, targets, voteDegree uint32) types.Weight {
	return p.opts.weights.Phragmms(voters, targets, voteDegree)
}
