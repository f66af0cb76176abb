// Package solver provides the pluggable NPoS solving strategies.
//
// Each strategy adapts the apportionment engine behind the uniform
// types.NposSolver interface, so the active algorithm is swappable by
// configuration alone:
//
//   - SequentialPhragmen: round-by-round least-load election. Fast and
//     the usual default.
//   - PhragMMS: max-min-support flavored election with built-in
//     balancing. Slower, more even backing across winners.
//
// Both accept an optional balancing configuration (a bounded number of
// iterative refinement passes trading extra computation for more even
// stake distribution) and a WeightInfo cost table consulted through
// Weight before solving.
package solver
