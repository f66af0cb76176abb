// Package substrate provides bounded proportional elections for Go:
// data providers that self-limit their output to explicit count and size
// bounds, pluggable NPoS solving strategies with cost prediction, and a
// bags-list ranking structure for maintaining large electorates cheaply.
//
// # Quick Start
//
// Run an election over a static snapshot:
//
//	import (
//	    "github.com/blob-chain/substrate"
//	    "github.com/blob-chain/substrate/solver"
//	    "github.com/blob-chain/substrate/source"
//	)
//
//	data := source.NewStatic[string](2)
//	data.PutSnapshot(voters, targets)
//
//	provider, err := substrate.New[string](data, solver.NewSequentialPhragmen[string](),
//	    substrate.WithMaxWinners(10),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	supports, err := provider.Elect()
//
// # Architecture
//
// The election pipeline pulls everything through an ElectionDataProvider:
//
//	data provider → snapshot (bounded) → solver → per-target supports
//
// The Provider runs it in one of two shapes. Stateless: Elect pulls a
// fresh snapshot and solves immediately. Stateful: Prepare takes the
// snapshot ahead of time and puts the provider in the Ongoing state;
// the next Elect consumes it. InstantElect is the synchronous fallback
// for when the primary path is unavailable; its caller-forced bounds
// compose with the configured ones and can only tighten.
//
// Bounds are requirements on the data provider, not promises by the
// caller: a provider must self-limit the electorate it returns. Count
// and size are bounded independently per dimension (voters, targets).
//
// # Solvers
//
// Two strategies ship in the solver package: sequential Phragmén
// (optionally with iterative balancing) and PhragMMS. Both predict
// their cost via Weight(voters, targets, voteDegree) before solving, so
// a Provider configured with WithMaxWeight can reject oversized
// snapshots up front.
//
// # Ranked electorates
//
// The bags package maintains a large electorate ranked by score with
// O(1) mutation. source.Ranked turns a bags list plus a score authority
// into a data provider whose bound-truncated snapshots always keep the
// heaviest voters.
package substrate
