package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/carousel"
)

func TestObserveTransition(t *testing.T) {
	m := New(prometheus.NewRegistry())
	ctrl, err := carousel.New([]carousel.Item{{ID: "a"}, {ID: "b"}}, carousel.WithObserver(m.ObserveTransition))
	require.NoError(t, err)

	ctrl.Tick()
	ctrl.Next()
	ctrl.Reconcile()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("timer")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("manual")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoopResets))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Index))
}
