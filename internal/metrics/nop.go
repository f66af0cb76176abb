package metrics

import "github.com/blob-chain/substrate/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordElectionDuration discards the election duration metric.
func (n *NopMetrics) RecordElectionDuration(_ /* phase */ string, _ /* seconds */ float64) {
	// No-op
}

// RecordElectionAttempt discards the election attempt metric.
func (n *NopMetrics) RecordElectionAttempt(_ /* phase */ string, _ /* success */ bool) {
	// No-op
}

// RecordSnapshotSize discards the snapshot size metric.
func (n *NopMetrics) RecordSnapshotSize(_ /* voters */, _ /* targets */ int) {
	// No-op
}

// RecordSolverWeight discards the solver weight metric.
func (n *NopMetrics) RecordSolverWeight(_ /* refTime */ uint64) {
	// No-op
}
