package bags

import (
	"fmt"
	"iter"
	"slices"

	"github.com/blob-chain/substrate/internal/logging"
	"github.com/blob-chain/substrate/types"
)

// node is a single member inside a bag's doubly linked chain.
type node[A comparable] struct {
	id    A
	score types.Score
	upper types.Score
	prev  *node[A]
	next  *node[A]
}

// bag is one threshold bucket. Members are chained in insertion order.
type bag[A comparable] struct {
	head *node[A]
	tail *node[A]
}

func (b *bag[A]) insertTail(n *node[A]) {
	n.prev = b.tail
	n.next = nil

	if b.tail != nil {
		b.tail.next = n
	} else {
		b.head = n
	}

	b.tail = n
}

func (b *bag[A]) remove(n *node[A]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		b.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		b.tail = n.prev
	}

	n.prev = nil
	n.next = nil
}

func (b *bag[A]) empty() bool {
	return b.head == nil
}

// List is a bag-partitioned implementation of types.SortedListProvider.
// It is not safe for concurrent use.
type List[A comparable] struct {
	// thresholds is the ascending sequence of bag upper bounds. The top
	// bag at MaxScore always exists implicitly.
	thresholds []types.Score
	bags       map[types.Score]*bag[A]
	nodes      map[A]*node[A]
	logger     types.Logger
}

// Compile-time assertion that List implements SortedListProvider.
var _ types.SortedListProvider[string] = (*List[string])(nil)

// NewList creates a bag list with the given bag upper bounds.
//
// Parameters:
//   - thresholds: Strictly ascending bag upper bounds. May be empty, in
//     which case all members share the single implicit top bag and the
//     ordering degenerates to insertion order.
//   - opts: Optional configuration (WithLogger)
//
// Returns:
//   - *List[A]: An empty list ready for use
//   - error: Non-nil if the thresholds are not strictly ascending
func NewList[A comparable](thresholds []types.Score, opts ...Option) (*List[A], error) {
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return nil, fmt.Errorf("bag thresholds must be strictly ascending, got %d after %d",
				thresholds[i], thresholds[i-1])
		}
	}

	options := newOptions(opts)

	return &List[A]{
		thresholds: slices.Clone(thresholds),
		bags:       make(map[types.Score]*bag[A]),
		nodes:      make(map[A]*node[A]),
		logger:     options.logger,
	}, nil
}

// upperFor returns the upper bound of the bag a score belongs to.
func (l *List[A]) upperFor(score types.Score) types.Score {
	// Thresholds are ascending and usually few; binary search keeps this
	// cheap even for large configurations.
	idx, found := slices.BinarySearch(l.thresholds, score)
	if found {
		return l.thresholds[idx]
	}

	if idx < len(l.thresholds) {
		return l.thresholds[idx]
	}

	return types.MaxScore
}

// bagFor returns the bag with the given upper bound, creating it lazily.
func (l *List[A]) bagFor(upper types.Score) *bag[A] {
	b, ok := l.bags[upper]
	if !ok {
		b = &bag[A]{}
		l.bags[upper] = b
	}

	return b
}

// uppers returns the upper bounds of all non-empty bags, descending.
func (l *List[A]) uppers() []types.Score {
	result := make([]types.Score, 0, len(l.bags))
	if b, ok := l.bags[types.MaxScore]; ok && !b.empty() {
		result = append(result, types.MaxScore)
	}

	for i := len(l.thresholds) - 1; i >= 0; i-- {
		upper := l.thresholds[i]
		if b, ok := l.bags[upper]; ok && !b.empty() {
			result = append(result, upper)
		}
	}

	return result
}

// Iter returns all members, highest bag first, insertion order within a
// bag. The sequence is restartable; each call starts a fresh traversal.
func (l *List[A]) Iter() iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, upper := range l.uppers() {
			for n := l.bags[upper].head; n != nil; n = n.next {
				if !yield(n.id) {
					return
				}
			}
		}
	}
}

// IterFrom returns the members strictly after start in iteration order.
func (l *List[A]) IterFrom(start A) (iter.Seq[A], error) {
	startNode, ok := l.nodes[start]
	if !ok {
		return nil, types.ErrMemberNotFound
	}

	return func(yield func(A) bool) {
		for n := startNode.next; n != nil; n = n.next {
			if !yield(n.id) {
				return
			}
		}

		for _, upper := range l.uppers() {
			if upper >= startNode.upper {
				continue
			}

			for n := l.bags[upper].head; n != nil; n = n.next {
				if !yield(n.id) {
					return
				}
			}
		}
	}, nil
}

// Count returns the number of members.
func (l *List[A]) Count() uint32 {
	return uint32(len(l.nodes))
}

// Contains reports whether id is a member.
func (l *List[A]) Contains(id A) bool {
	_, ok := l.nodes[id]

	return ok
}

// OnInsert adds a new member with the given score.
func (l *List[A]) OnInsert(id A, score types.Score) error {
	if _, ok := l.nodes[id]; ok {
		return types.ErrDuplicateMember
	}

	upper := l.upperFor(score)
	n := &node[A]{id: id, score: score, upper: upper}
	l.bagFor(upper).insertTail(n)
	l.nodes[id] = n

	l.logger.Debug("member inserted", "score", score, "bag", upper)

	return nil
}

// OnUpdate repositions an existing member to the given score.
func (l *List[A]) OnUpdate(id A, score types.Score) error {
	n, ok := l.nodes[id]
	if !ok {
		return types.ErrMemberNotFound
	}

	upper := l.upperFor(score)
	if upper != n.upper {
		l.bags[n.upper].remove(n)
		n.upper = upper
		l.bagFor(upper).insertTail(n)
	}

	n.score = score

	return nil
}

// GetScore returns the member's current score.
func (l *List[A]) GetScore(id A) (types.Score, error) {
	n, ok := l.nodes[id]
	if !ok {
		return 0, types.ErrMemberNotFound
	}

	return n.score, nil
}

// OnIncrease updates id to its old score plus delta, saturating.
func (l *List[A]) OnIncrease(id A, delta types.Score) error {
	n, ok := l.nodes[id]
	if !ok {
		return types.ErrMemberNotFound
	}

	return l.OnUpdate(id, n.score.SaturatingAdd(delta))
}

// OnDecrease updates id to its old score minus delta, saturating. A
// member whose score reaches exactly zero is removed, so the list never
// carries zero-score members through this path.
func (l *List[A]) OnDecrease(id A, delta types.Score) error {
	n, ok := l.nodes[id]
	if !ok {
		return types.ErrMemberNotFound
	}

	newScore := n.score.SaturatingSub(delta)
	if newScore.IsZero() {
		return l.OnRemove(id)
	}

	return l.OnUpdate(id, newScore)
}

// OnRemove deletes a member.
func (l *List[A]) OnRemove(id A) error {
	n, ok := l.nodes[id]
	if !ok {
		return types.ErrMemberNotFound
	}

	l.bags[n.upper].remove(n)
	delete(l.nodes, id)

	return nil
}

// UnsafeRegenerate destructively rebuilds the list from the supplied
// enumeration and scoring function. Linear in total membership; reserved
// for migrations.
func (l *List[A]) UnsafeRegenerate(all iter.Seq[A], scoreOf func(A) types.Score) uint32 {
	l.UnsafeClear()

	inserted := uint32(0)
	for id := range all {
		if err := l.OnInsert(id, scoreOf(id)); err != nil {
			// Duplicate in the source enumeration; keep the first.
			l.logger.Warn("regenerate skipped duplicate member", "error", err)

			continue
		}

		inserted++
	}

	l.logger.Info("list regenerated", "members", inserted)

	return inserted
}

// UnsafeClear empties the list unconditionally.
func (l *List[A]) UnsafeClear() {
	l.bags = make(map[types.Score]*bag[A])
	l.nodes = make(map[A]*node[A])
}

// Option configures a List.
type Option func(*listOptions)

type listOptions struct {
	logger types.Logger
}

func newOptions(opts []Option) listOptions {
	options := listOptions{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&options)
	}

	return options
}

// WithLogger sets the logger used for list events. Defaults to a no-op
// logger.
func WithLogger(logger types.Logger) Option {
	return func(o *listOptions) {
		o.logger = logger
	}
}
