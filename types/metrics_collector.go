package types

// MetricsCollector defines methods for recording operational metrics of
// the election pipeline.
//
// Implementations should be non-blocking and handle failures gracefully.
type MetricsCollector interface {
	// RecordElectionDuration records the time taken by one election.
	//
	// Parameters:
	//   - phase: Election phase ("elect", "instant_elect", "prepare")
	//   - seconds: Time taken in seconds
	RecordElectionDuration(phase string, seconds float64)

	// RecordElectionAttempt records an election attempt and its outcome.
	RecordElectionAttempt(phase string, success bool)

	// RecordSnapshotSize sets the voter and target counts of the most
	// recent snapshot.
	RecordSnapshotSize(voters, targets int)

	// RecordSolverWeight records the predicted solver cost consulted for
	// admission control, in reference time units.
	RecordSolverWeight(refTime uint64)
}
