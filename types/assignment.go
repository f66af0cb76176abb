package types

// Share is one target's slice of a voter's stake, as a proportion of the
// voter's total.
type Share[A comparable] struct {
	Target     A
	Proportion Perbill
}

// Assignment is a voter's stake distributed across its chosen targets as
// proportions.
type Assignment[A comparable] struct {
	Who          A
	Distribution []Share[A]
}

// IndexedShare is a Share with the target identifier replaced by its
// position in the canonical target list.
type IndexedShare struct {
	Target     uint32
	Proportion Perbill
}

// IndexAssignment is an Assignment with identifiers replaced by their
// positions in the canonical voter and target lists built once per
// election, making it fast to repeatedly encode into a compact solution.
// Proportions are carried through unchanged.
type IndexAssignment struct {
	// Who is the index of the voter in the canonical voter list.
	Who uint32

	// Distribution is the voter's stake distribution over winning
	// targets, identified by their canonical indices.
	Distribution []IndexedShare
}

// NewIndexAssignment compresses an identifier-keyed assignment into index
// form through two injective lookup functions built from the canonical
// voter and target lists of the current election.
//
// Any lookup miss, for the voter or for any target in the distribution,
// fails the whole construction with ErrInvalidIndex: a miss signals an
// internal mismatch between the solver's output and the canonical
// snapshot and must never be silently dropped or defaulted.
//
// Parameters:
//   - assignment: The identifier-keyed assignment to compress
//   - voterIndex: Injective lookup from voter id to canonical voter index
//   - targetIndex: Injective lookup from target id to canonical target index
//
// Returns:
//   - IndexAssignment: The position-compressed assignment
//   - error: ErrInvalidIndex on any lookup miss
func NewIndexAssignment[A comparable](
	assignment Assignment[A],
	voterIndex func(A) (uint32, bool),
	targetIndex func(A) (uint32, bool),
) (IndexAssignment, error) {
	who, ok := voterIndex(assignment.Who)
	if !ok {
		return IndexAssignment{}, ErrInvalidIndex
	}

	distribution := make([]IndexedShare, 0, len(assignment.Distribution))
	for _, share := range assignment.Distribution {
		target, ok := targetIndex(share.Target)
		if !ok {
			return IndexAssignment{}, ErrInvalidIndex
		}
		distribution = append(distribution, IndexedShare{Target: target, Proportion: share.Proportion})
	}

	return IndexAssignment{Who: who, Distribution: distribution}, nil
}

// IndexerOf builds an injective id-to-index lookup over a canonical list.
// The map is built once; lookups are O(1). Ids absent from the list
// report a miss.
func IndexerOf[A comparable](list []A) func(A) (uint32, bool) {
	index := make(map[A]uint32, len(list))
	for i, id := range list {
		index[id] = uint32(i)
	}

	return func(id A) (uint32, bool) {
		i, ok := index[id]

		return i, ok
	}
}
