package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blob-chain/substrate/bounds"
)

// stubDataProvider returns canned desired-targets results.
type stubDataProvider struct {
	desired    uint32
	desiredErr error
}

var _ ElectionDataProvider[string] = (*stubDataProvider)(nil)

func (s *stubDataProvider) ElectableTargets(bounds.DataProviderBounds) ([]string, error) {
	return nil, nil
}

func (s *stubDataProvider) ElectingVoters(bounds.DataProviderBounds) ([]Voter[string], error) {
	return nil, nil
}

func (s *stubDataProvider) DesiredTargets() (uint32, error) {
	return s.desired, s.desiredErr
}

func (s *stubDataProvider) NextElectionPrediction(now BlockNumber) BlockNumber {
	return now
}

func (s *stubDataProvider) MaxVotesPerVoter() uint32 {
	return 16
}

// stubBase pairs a data provider with a winner ceiling.
type stubBase struct {
	data       ElectionDataProvider[string]
	maxWinners uint32
}

func (s *stubBase) MaxWinners() uint32 { return s.maxWinners }

func (s *stubBase) DataProvider() ElectionDataProvider[string] { return s.data }

func TestDesiredTargetsChecked(t *testing.T) {
	t.Run("returns the exact value when within the ceiling", func(t *testing.T) {
		base := &stubBase{data: &stubDataProvider{desired: 4}, maxWinners: 5}

		got, err := DesiredTargetsChecked[string](base)

		require.NoError(t, err)
		require.Equal(t, uint32(4), got)
	})

	t.Run("value equal to the ceiling passes", func(t *testing.T) {
		base := &stubBase{data: &stubDataProvider{desired: 5}, maxWinners: 5}

		got, err := DesiredTargetsChecked[string](base)

		require.NoError(t, err)
		require.Equal(t, uint32(5), got)
	})

	t.Run("fails when the provider wants more than MaxWinners", func(t *testing.T) {
		base := &stubBase{data: &stubDataProvider{desired: 6}, maxWinners: 5}

		_, err := DesiredTargetsChecked[string](base)

		require.ErrorIs(t, err, ErrTooManyWinners)
	})

	t.Run("propagates data provider errors verbatim", func(t *testing.T) {
		opaque := errors.New("snapshot unavailable")
		base := &stubBase{data: &stubDataProvider{desiredErr: opaque}, maxWinners: 5}

		_, err := DesiredTargetsChecked[string](base)

		require.ErrorIs(t, err, opaque)
	})
}
