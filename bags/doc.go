// Package bags provides a semi-sorted list of members ranked by score.
//
// The list partitions its members into bags, one per configured score
// threshold. A member with score s lives in the bag whose upper bound is
// the smallest threshold greater than or equal to s; scores above the
// largest threshold share a single top bag. Iteration visits bags from
// highest to lowest and members within a bag in insertion order, so the
// ordering is correct across bags and approximate within one.
//
// The payoff is O(1) insertion, removal and score updates regardless of
// total membership: repositioning a member touches only the two bags
// involved, never the whole list. A fully sorted structure would pay
// O(log n) or worse on every stake change, which matters when membership
// persists across many election cycles and mutates on every transfer.
package bags
