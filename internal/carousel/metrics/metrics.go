package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"portfolio/internal/carousel"
)

// Metrics tracks carousel movement.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Index       prometheus.Gauge
	LoopResets  prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_carousel_transitions_total",
			Help: "Carousel index changes by source",
		}, []string{"source"}),
		Index: f.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_carousel_index",
			Help: "Current carousel index",
		}),
		LoopResets: f.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_carousel_loop_resets_total",
			Help: "Seamless loop resets performed after a completed lap",
		}),
	}
}

// ObserveTransition is a carousel.WithObserver callback.
func (m *Metrics) ObserveTransition(t carousel.Transition) {
	m.Transitions.WithLabelValues(string(t.Source)).Inc()
	m.Index.Set(float64(t.To))
	if t.Source == carousel.SourceReset {
		m.LoopResets.Inc()
	}
}
