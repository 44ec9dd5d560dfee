package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Denied       *prometheus.CounterVec
	StoreErrors  prometheus.Counter
	FallbackUsed prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Denied: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_ratelimit_denied_total",
			Help: "Requests rejected by the rate limiter, by endpoint class",
		}, []string{"class"}),
		StoreErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_ratelimit_store_errors_total",
			Help: "Errors returned by the primary bucket store",
		}),
		FallbackUsed: f.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_ratelimit_fallback_checks_total",
			Help: "Checks served by the in-memory fallback limiter",
		}),
	}
}

func (m *Metrics) IncrementDenied(class string) {
	m.Denied.WithLabelValues(class).Inc()
}

func (m *Metrics) IncrementStoreErrors() {
	m.StoreErrors.Inc()
}

func (m *Metrics) IncrementFallback() {
	m.FallbackUsed.Inc()
}
