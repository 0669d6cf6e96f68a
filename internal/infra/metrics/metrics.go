package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for QC evaluation and review.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Evaluated rows by QC status
	Evaluations *prometheus.CounterVec

	// Saved review decisions by verdict
	Decisions *prometheus.CounterVec

	// Raw records dropped by the normalizer
	RejectedRecords prometheus.Counter

	// Measurement fetches by source and outcome
	Fetches *prometheus.CounterVec

	FetchLatency prometheus.Histogram
}

// New registers all metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qc_review_evaluations_total",
			Help: "Total QC rows evaluated by status",
		}, []string{"status"}),

		Decisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qc_review_decisions_total",
			Help: "Total review decisions saved by verdict",
		}, []string{"verdict"}),

		RejectedRecords: f.NewCounter(prometheus.CounterOpts{
			Name: "qc_review_rejected_records_total",
			Help: "Total raw analyte records dropped as malformed or incomplete",
		}),

		Fetches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qc_review_measurement_fetches_total",
			Help: "Total measurement fetches by outcome",
		}, []string{"outcome"}), // outcome: "ok", "error"

		FetchLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "qc_review_measurement_fetch_duration_seconds",
			Help:    "Duration of measurement fetches",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

func (m *Metrics) IncEvaluation(status string) {
	if m != nil {
		m.Evaluations.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) IncDecision(verdict string) {
	if m != nil {
		m.Decisions.WithLabelValues(verdict).Inc()
	}
}

func (m *Metrics) AddRejected(n int) {
	if m != nil && n > 0 {
		m.RejectedRecords.Add(float64(n))
	}
}

// ObserveFetch records one fetch and its duration.
func (m *Metrics) ObserveFetch(err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Fetches.WithLabelValues(outcome).Inc()
	m.FetchLatency.Observe(d.Seconds())
}
