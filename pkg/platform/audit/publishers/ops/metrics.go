package ops

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for ops audit tracking.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Tracked prometheus.Counter
	Dropped prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Tracked: f.NewCounter(prometheus.CounterOpts{
			Name: "bemyrider_audit_ops_tracked_total",
			Help: "Total number of operational audit events queued",
		}),
		Dropped: f.NewCounter(prometheus.CounterOpts{
			Name: "bemyrider_audit_ops_dropped_total",
			Help: "Total number of operational audit events dropped because the queue was full",
		}),
	}
}

func (m *Metrics) IncTracked() {
	if m == nil {
		return
	}
	m.Tracked.Inc()
}

func (m *Metrics) IncDropped() {
	if m == nil {
		return
	}
	m.Dropped.Inc()
}
