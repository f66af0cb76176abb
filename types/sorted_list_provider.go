package types

import "iter"

// SortedListProvider maintains complete, globally ranked membership keyed
// by a monotonic score, descending. Membership persists across many
// election cycles and is mutated incrementally by stake-changing events;
// it is never regenerated per election except under explicit migration.
//
// Invariants:
//   - Count always equals the length of a full Iter traversal.
//   - OnDecrease removes a member whose score reaches exactly zero, so no
//     member produced by the increase/decrease path ever has a zero score.
//   - The list never auto-corrects: a duplicate insert or a missing
//     update/remove target is reported, never upserted.
type SortedListProvider[A comparable] interface {
	// Iter returns a lazy, descending-by-score sequence of all members.
	// The sequence is finite and restartable: a fresh call yields a fresh
	// traversal from the top.
	Iter() iter.Seq[A]

	// IterFrom returns the same ordering, beginning immediately after
	// start. Fails with ErrMemberNotFound if start is not a member.
	IterFrom(start A) (iter.Seq[A], error)

	// Count returns the current number of members.
	Count() uint32

	// Contains reports whether id is a member.
	Contains(id A) bool

	// OnInsert adds a new member with the given score. Fails with
	// ErrDuplicateMember if id is already present.
	OnInsert(id A, score Score) error

	// OnUpdate repositions an existing member to the given score. Fails
	// with ErrMemberNotFound if id is absent.
	OnUpdate(id A, score Score) error

	// GetScore returns the member's current score, or ErrMemberNotFound.
	GetScore(id A) (Score, error)

	// OnIncrease updates id to its old score plus delta, saturating.
	OnIncrease(id A, delta Score) error

	// OnDecrease updates id to its old score minus delta, saturating.
	// If the resulting score is exactly zero the member is removed.
	OnDecrease(id A, delta Score) error

	// OnRemove deletes a member. Fails with ErrMemberNotFound if absent.
	OnRemove(id A) error

	// UnsafeRegenerate destructively rebuilds the list from the supplied
	// enumeration and scoring function, returning the count inserted.
	// Cost is linear in total membership; reserved for migrations, never
	// the per-step hot path.
	UnsafeRegenerate(all iter.Seq[A], scoreOf func(A) Score) uint32

	// UnsafeClear empties the list unconditionally. Same cost caveat as
	// UnsafeRegenerate.
	UnsafeClear()
}

// ScoreProvider returns the authoritative current score of an id, for
// example derived from staked balance. It is decoupled from the ranked
// list: the list stays only eventually consistent with this authority via
// explicit increase/decrease/update calls rather than wholesale
// recomputation.
type ScoreProvider[A comparable] interface {
	// Score returns the current score of who.
	Score(who A) Score
}
