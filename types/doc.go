// Package types defines the capability interfaces and value types shared
// by every component of the election library.
//
// The interfaces connect four independently replaceable roles:
//
//   - ElectionDataProvider supplies voters, targets, and the desired
//     winner count to an election, self-limiting its output to the bounds
//     it is handed.
//   - ElectionProvider (and the synchronous InstantElectionProvider)
//     orchestrates one election against its data provider and returns
//     bounded winner support.
//   - NposSolver is the pluggable apportionment strategy that turns a
//     snapshot into winners and per-voter assignments.
//   - SortedListProvider and ScoreProvider maintain a continuously ranked
//     candidate list by score so data providers can emit voters in ranked
//     order without rescanning.
//
// Concrete types can satisfy several of these interfaces independently;
// most often the data provider is also the receiver of the election
// result.
//
// This package depends only on the bounds package, so implementations in
// sibling packages can share it without import cycles.
package types
