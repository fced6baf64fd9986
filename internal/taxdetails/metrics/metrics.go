package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for fiscal code calculation and the
// tax-details records. A nil *Metrics records nothing.
type Metrics struct {
	// Calculations by outcome: "ok", "missing_field", "unresolvable_place",
	// "invalid_sex", "fallback_place".
	Calculations *prometheus.CounterVec

	CalculateLatency prometheus.Histogram

	// Validations by result: "valid", "bad_format", "bad_checksum".
	Validations *prometheus.CounterVec

	// Records saved by kind: "rider", "merchant".
	RecordsSaved *prometheus.CounterVec

	// Cache lookups by kind and result: "hit", "miss", "error".
	CacheLookups *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Calculations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bemyrider_fiscal_code_calculations_total",
			Help: "Fiscal code calculations by outcome",
		}, []string{"outcome"}),

		CalculateLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "bemyrider_fiscal_code_calculate_duration_seconds",
			Help:    "Duration of a single fiscal code calculation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
		}),

		Validations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bemyrider_fiscal_code_validations_total",
			Help: "Fiscal code validations by result",
		}, []string{"result"}),

		RecordsSaved: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bemyrider_tax_details_saved_total",
			Help: "Tax detail records saved by kind",
		}, []string{"kind"}),

		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bemyrider_tax_details_cache_lookups_total",
			Help: "Tax detail cache lookups by kind and result",
		}, []string{"kind", "result"}),
	}
}

func (m *Metrics) IncrementCalculation(outcome string) {
	if m != nil {
		m.Calculations.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObserveCalculateLatency(d time.Duration) {
	if m != nil {
		m.CalculateLatency.Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementValidation(result string) {
	if m != nil {
		m.Validations.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) IncrementSaved(kind string) {
	if m != nil {
		m.RecordsSaved.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) IncrementCacheLookup(kind, result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(kind, result).Inc()
	}
}
