package bounds

// Builder is a fluent accumulator for ElectionBounds.
//
// Exact setters (VotersCount, VotersSize, TargetsCount, TargetsSize)
// overwrite the corresponding sub-bound; the OrLower variants compose via
// Max against a supplied ceiling, so repeated application from multiple
// callers converges to the most restrictive applicable limit. Build
// defaults any unset dimension to fully unbounded.
type Builder struct {
	voters  *DataProviderBounds
	targets *DataProviderBounds
}

// NewBuilder returns a builder initialized with unbounded voter and
// target limits.
func NewBuilder() *Builder {
	return &Builder{}
}

// From returns a builder seeded from an existing ElectionBounds.
func From(eb ElectionBounds) *Builder {
	voters := eb.Voters
	targets := eb.Targets

	return &Builder{voters: &voters, targets: &targets}
}

// VotersCount sets the voters count bound, creating the voter bound pair
// if absent.
func (b *Builder) VotersCount(count CountBound) *Builder {
	if b.voters == nil {
		b.voters = &DataProviderBounds{}
	}
	b.voters.Count = &count

	return b
}

// VotersSize sets the voters size bound, creating the voter bound pair if
// absent.
func (b *Builder) VotersSize(size SizeBound) *Builder {
	if b.voters == nil {
		b.voters = &DataProviderBounds{}
	}
	b.voters.Size = &size

	return b
}

// TargetsCount sets the targets count bound, creating the target bound
// pair if absent.
func (b *Builder) TargetsCount(count CountBound) *Builder {
	if b.targets == nil {
		b.targets = &DataProviderBounds{}
	}
	b.targets.Count = &count

	return b
}

// TargetsSize sets the targets size bound, creating the target bound pair
// if absent.
func (b *Builder) TargetsSize(size SizeBound) *Builder {
	if b.targets == nil {
		b.targets = &DataProviderBounds{}
	}
	b.targets.Size = &size

	return b
}

// Voters replaces the voter bounds wholesale. A nil value resets the
// dimension to unbounded.
func (b *Builder) Voters(voters *DataProviderBounds) *Builder {
	b.voters = voters

	return b
}

// Targets replaces the target bounds wholesale. A nil value resets the
// dimension to unbounded.
func (b *Builder) Targets(targets *DataProviderBounds) *Builder {
	b.targets = targets

	return b
}

// VotersOrLower caps the voter bounds at the supplied ceiling. If the
// current voter bounds are higher they are clamped down; unset bounds
// adopt the ceiling. Unset fields are equivalent to maximum.
func (b *Builder) VotersOrLower(voters DataProviderBounds) *Builder {
	if b.voters == nil {
		b.voters = &voters
	} else {
		capped := b.voters.Max(voters)
		b.voters = &capped
	}

	return b
}

// TargetsOrLower caps the target bounds at the supplied ceiling, with the
// same semantics as VotersOrLower.
func (b *Builder) TargetsOrLower(targets DataProviderBounds) *Builder {
	if b.targets == nil {
		b.targets = &targets
	} else {
		capped := b.targets.Max(targets)
		b.targets = &capped
	}

	return b
}

// Build materializes the ElectionBounds, defaulting any unset dimension
// to fully unbounded.
func (b *Builder) Build() ElectionBounds {
	eb := ElectionBounds{}
	if b.voters != nil {
		eb.Voters = *b.voters
	}
	if b.targets != nil {
		eb.Targets = *b.targets
	}

	return eb
}
