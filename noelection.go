package substrate

import (
	"github.com/blob-chain/substrate/bounds"
	"github.com/blob-chain/substrate/types"
)

// NoElection is the null election provider. Every election operation
// fails with ErrNoElectionConfigured and it is never ongoing. Useful as
// an explicit "elections disabled" configuration that still satisfies
// the provider interfaces.
type NoElection[A comparable] struct {
	data types.ElectionDataProvider[A]
}

// Compile-time assertions for the provider interfaces.
var (
	_ types.ElectionProvider[string]        = (*NoElection[string])(nil)
	_ types.InstantElectionProvider[string] = (*NoElection[string])(nil)
)

// NewNoElection creates a null provider. The data provider is optional
// and only exposed through DataProvider for interface completeness.
func NewNoElection[A comparable](data types.ElectionDataProvider[A]) *NoElection[A] {
	return &NoElection[A]{data: data}
}

// MaxWinners returns zero; the null provider never elects anyone.
func (n *NoElection[A]) MaxWinners() uint32 {
	return 0
}

// DataProvider returns the attached data provider, which may be nil.
func (n *NoElection[A]) DataProvider() types.ElectionDataProvider[A] {
	return n.data
}

// Ongoing always reports false.
func (n *NoElection[A]) Ongoing() bool {
	return false
}

// Elect always fails with ErrNoElectionConfigured.
func (n *NoElection[A]) Elect() (types.Supports[A], error) {
	return nil, types.ErrNoElectionConfigured
}

// InstantElect always fails with ErrNoElectionConfigured.
func (n *NoElection[A]) InstantElect(_, _ bounds.DataProviderBounds) (types.Supports[A], error) {
	return nil, types.ErrNoElectionConfigured
}
