package substrate

import (
	"math"

	"github.com/blob-chain/substrate/bounds"
	"github.com/blob-chain/substrate/internal/logging"
	"github.com/blob-chain/substrate/internal/metrics"
	"github.com/blob-chain/substrate/types"
)

// Option configures a Provider with optional dependencies.
type Option func(*providerOptions)

// providerOptions holds optional Provider configuration.
type providerOptions struct {
	maxWinners uint32
	bounds     bounds.ElectionBounds
	maxWeight  *types.Weight
	logger     types.Logger
	metrics    types.MetricsCollector
}

func newOptions(opts []Option) providerOptions {
	options := providerOptions{
		maxWinners: math.MaxUint32,
		bounds:     bounds.NewBuilder().Build(),
		logger:     logging.NewNop(),
		metrics:    metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	return options
}

// WithMaxWinners caps the number of winners an election may return.
// Elections whose data provider asks for more fail with
// ErrTooManyWinners before any computation. Defaults to unbounded.
//
// Parameters:
//   - maxWinners: The winner ceiling
//
// Returns:
//   - Option: Functional option for New
func WithMaxWinners(maxWinners uint32) Option {
	return func(o *providerOptions) {
		o.maxWinners = maxWinners
	}
}

// WithBounds sets the election bounds applied to every snapshot. The
// data provider self-limits to them. Defaults to unbounded.
//
// Parameters:
//   - b: Election bounds, typically built with bounds.NewBuilder
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	eb := bounds.NewBuilder().VotersCount(10_000).TargetsCount(1_000).Build()
//	provider, err := substrate.New(data, solver, substrate.WithBounds(eb))
func WithBounds(b bounds.ElectionBounds) Option {
	return func(o *providerOptions) {
		o.bounds = b
	}
}

// WithMaxWeight sets an admission limit on the solver's predicted cost.
// A snapshot whose predicted weight exceeds the limit in any component
// fails with ErrWeightOverLimit before solving starts. Defaults to no
// limit.
//
// Parameters:
//   - w: The maximum admissible weight
//
// Returns:
//   - Option: Functional option for New
func WithMaxWeight(w types.Weight) Option {
	return func(o *providerOptions) {
		o.maxWeight = &w
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (see internal/logging.NewSlog)
//
// Returns:
//   - Option: Functional option for New
func WithLogger(logger types.Logger) Option {
	return func(o *providerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - collector: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
func WithMetrics(collector types.MetricsCollector) Option {
	return func(o *providerOptions) {
		o.metrics = collector
	}
}
