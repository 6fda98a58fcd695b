// Package prometheus exposes dispatch lifecycle signals as Prometheus metrics.
//
// Metrics:
//   - drayage_dispatch_transitions_total{action,outcome}: macro transition attempts
//   - drayage_dispatch_start_rollbacks_total: starts compensated back to draft
//   - drayage_dispatches{status}: dispatches per status, refreshed by the status job
package prometheus

import (
	"drayage/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "drayage"

var _ ports.DispatchMetrics = (*DispatchMetrics)(nil)

// DispatchMetrics implements ports.DispatchMetrics on top of Prometheus collectors.
// All methods are safe for concurrent use.
type DispatchMetrics struct {
	transitions    *prometheus.CounterVec
	startRollbacks prometheus.Counter
	dispatches     *prometheus.GaugeVec
}

// NewDispatchMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewDispatchMetrics(reg prometheus.Registerer) (*DispatchMetrics, error) {
	m := &DispatchMetrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_transitions_total",
			Help:      "Dispatch lifecycle transition attempts by action and outcome",
		}, []string{"action", "outcome"}),
		startRollbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_start_rollbacks_total",
			Help:      "Dispatch starts reverted to draft because the driver could not begin operating",
		}),
		dispatches: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dispatches",
			Help:      "Current number of dispatches per status",
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{m.transitions, m.startRollbacks, m.dispatches} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *DispatchMetrics) ObserveTransition(action, outcome string) {
	m.transitions.WithLabelValues(action, outcome).Inc()
}

func (m *DispatchMetrics) ObserveStartRollback() {
	m.startRollbacks.Inc()
}

// SetDispatchCounts replaces the per-status gauge. Statuses missing from counts are dropped.
func (m *DispatchMetrics) SetDispatchCounts(counts map[string]int) {
	m.dispatches.Reset()
	for status, n := range counts {
		m.dispatches.WithLabelValues(status).Set(float64(n))
	}
}
