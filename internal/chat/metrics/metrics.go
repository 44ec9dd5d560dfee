package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for Replies.
const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeOffline  = "offline"
	OutcomeFailed   = "failed"
	OutcomeShedding = "circuit_open"
)

type Metrics struct {
	Replies           *prometheus.CounterVec
	GenerationLatency prometheus.Histogram
	CircuitOpen       prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Replies: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_chat_replies_total",
			Help: "Chat replies by outcome",
		}, []string{"outcome"}),
		GenerationLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_chat_generation_duration_seconds",
			Help:    "Latency of upstream model calls",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16},
		}),
		CircuitOpen: f.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_chat_circuit_open",
			Help: "1 while the model circuit breaker is open",
		}),
	}
}

func (m *Metrics) IncrementReply(outcome string) {
	m.Replies.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveGeneration(seconds float64) {
	m.GenerationLatency.Observe(seconds)
}

func (m *Metrics) SetCircuitOpen(open bool) {
	if open {
		m.CircuitOpen.Set(1)
		return
	}
	m.CircuitOpen.Set(0)
}
