package solver

import "github.com/blob-chain/substrate/types"

// DefaultWeights is a conservative cost table for the two strategies,
// modeled on reference-hardware benchmarks: a fixed base plus per-voter,
// per-target, and per-edge components. Deployments with their own
// benchmarks should supply a WeightInfo via WithWeightInfo instead.
type DefaultWeights struct{}

var _ types.WeightInfo = DefaultWeights{}

// Phragmen returns the predicted cost of a sequential phragmen solve.
func (DefaultWeights) Phragmen(voters, targets, voteDegree uint32) types.Weight {
	// Minimum execution time measured at ~880µs base.
	base := types.WeightFromParts(880_000_000, 0)

	return base.
		SaturatingAdd(types.WeightFromParts(650_000, 0).SaturatingMul(uint64(voters))).
		SaturatingAdd(types.WeightFromParts(280_000, 0).SaturatingMul(uint64(targets))).
		SaturatingAdd(types.WeightFromParts(120_000, 32).SaturatingMul(uint64(voters) * uint64(voteDegree)))
}

// Phragmms returns the predicted cost of a phragmms solve. The per-round
// balancing makes it roughly an order of magnitude heavier per edge.
func (DefaultWeights) Phragmms(voters, targets, voteDegree uint32) types.Weight {
	base := types.WeightFromParts(1_040_000_000, 0)

	return base.
		SaturatingAdd(types.WeightFromParts(810_000, 0).SaturatingMul(uint64(voters))).
		SaturatingAdd(types.WeightFromParts(390_000, 0).SaturatingMul(uint64(targets))).
		SaturatingAdd(types.WeightFromParts(1_380_000, 32).SaturatingMul(uint64(voters) * uint64(voteDegree)))
}
