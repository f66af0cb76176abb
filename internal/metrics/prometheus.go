package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/blob-chain/substrate/types"
)

// PrometheusCollector implements types.MetricsCollector backed by
// Prometheus. Registration is lazy and happens on the first recorded
// metric.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	electionDuration *prometheus.HistogramVec
	electionAttempts *prometheus.CounterVec
	snapshotVoters   prometheus.Gauge
	snapshotTargets  prometheus.Gauge
	solverWeight     prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "election" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "election"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.electionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      "duration_seconds",
			Help:      "Time taken by one election, by phase.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms .. ~8s
		}, []string{"phase"})

		p.electionAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "attempts_total",
			Help:      "Total election attempts by phase and outcome.",
		}, []string{"phase", "result"})

		p.snapshotVoters = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Name:      "snapshot_voters",
			Help:      "Voter count of the most recent snapshot.",
		})

		p.snapshotTargets = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Name:      "snapshot_targets",
			Help:      "Target count of the most recent snapshot.",
		})

		p.solverWeight = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      "solver_weight_ref_time",
			Help:      "Predicted solver cost consulted for admission control.",
			Buckets:   prometheus.ExponentialBuckets(1e8, 4, 10),
		})

		for _, c := range []prometheus.Collector{
			p.electionDuration,
			p.electionAttempts,
			p.snapshotVoters,
			p.snapshotTargets,
			p.solverWeight,
		} {
			// Ignore AlreadyRegisteredError so two collectors can share
			// a registry in tests.
			_ = p.reg.Register(c)
		}
	})
}

// RecordElectionDuration records the time taken by one election.
func (p *PrometheusCollector) RecordElectionDuration(phase string, seconds float64) {
	p.ensureRegistered()
	p.electionDuration.WithLabelValues(phase).Observe(seconds)
}

// RecordElectionAttempt records an election attempt and its outcome.
func (p *PrometheusCollector) RecordElectionAttempt(phase string, success bool) {
	p.ensureRegistered()

	result := "failure"
	if success {
		result = "success"
	}

	p.electionAttempts.WithLabelValues(phase, result).Inc()
}

// RecordSnapshotSize sets the voter and target counts of the most recent
// snapshot.
func (p *PrometheusCollector) RecordSnapshotSize(voters, targets int) {
	p.ensureRegistered()
	p.snapshotVoters.Set(float64(voters))
	p.snapshotTargets.Set(float64(targets))
}

// RecordSolverWeight records the predicted solver cost.
func (p *PrometheusCollector) RecordSolverWeight(refTime uint64) {
	p.ensureRegistered()
	p.solverWeight.Observe(float64(refTime))
}
