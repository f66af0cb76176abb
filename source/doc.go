// Package source provides election data providers.
//
// Static holds an explicit snapshot of voters and targets, useful for
// tests, fallback configurations and systems whose electorate is managed
// out of band. Ranked derives its electorate from a sorted list and a
// score authority, emitting voters in descending score order so that
// bound-truncated elections keep the heaviest participants.
//
// Both providers self-limit to the bounds they receive: they stop
// emitting as soon as a count or size bound would be exceeded, rather
// than returning an error.
package source
