package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for Submissions.
const (
	OutcomeRelayed     = "relayed"
	OutcomeBot         = "bot"
	OutcomeRejected    = "rejected"
	OutcomeFailed      = "failed"
	OutcomeUnavailable = "unavailable"
)

type Metrics struct {
	Submissions  *prometheus.CounterVec
	RelayLatency prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),
		RelayLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_contact_relay_duration_seconds",
			Help:    "Latency of the upstream form relay",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncrementSubmission(outcome string) {
	m.Submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRelay(seconds float64) {
	m.RelayLatency.Observe(seconds)
}
