package carousel

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Ticker is the subset of *time.Ticker that Autoplay needs.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time   { return t.t.C }
func (t timeTicker) Reset(d time.Duration) { t.t.Reset(d) }
func (t timeTicker) Stop()                 { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Timer is the subset of *time.Timer that Autoplay needs for the loop reset.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// TimerFunc creates a Timer firing once after d.
type TimerFunc func(d time.Duration) Timer

type timeTimer struct {
	t *time.Timer
}

func (t timeTimer) C() <-chan time.Time { return t.t.C }
func (t timeTimer) Stop() bool          { return t.t.Stop() }

// NewTimeTimer wraps time.NewTimer.
func NewTimeTimer(d time.Duration) Timer {
	return timeTimer{t: time.NewTimer(d)}
}

// Autoplay drives Controller.Tick on a fixed cadence.
type Autoplay struct {
	ctrl      *Controller
	interval  time.Duration
	slide     time.Duration
	newTicker TickerFunc
	newTimer  TimerFunc
	logger    *slog.Logger
	onAdvance func()
}

// AutoplayOption configures an Autoplay.
type AutoplayOption func(*Autoplay)

// WithInterval overrides DefaultInterval.
func WithInterval(d time.Duration) AutoplayOption {
	return func(a *Autoplay) {
		if d > 0 {
			a.interval = d
		}
	}
}

// WithTicker injects the ticker factory (tests).
func WithTicker(fn TickerFunc) AutoplayOption {
	return func(a *Autoplay) {
		if fn != nil {
			a.newTicker = fn
		}
	}
}

// WithSlideDuration sets how long one animated step takes; the loop reset is
// applied once it has elapsed.
func WithSlideDuration(d time.Duration) AutoplayOption {
	return func(a *Autoplay) {
		if d > 0 {
			a.slide = d
		}
	}
}

// WithTimer injects the reset timer factory (tests).
func WithTimer(fn TimerFunc) AutoplayOption {
	return func(a *Autoplay) {
		if fn != nil {
			a.newTimer = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) AutoplayOption {
	return func(a *Autoplay) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithOnAdvance registers a hook called after every timer-driven advance.
func WithOnAdvance(fn func()) AutoplayOption {
	return func(a *Autoplay) {
		a.onAdvance = fn
	}
}

// NewAutoplay creates an autoplay loop for ctrl.
func NewAutoplay(ctrl *Controller, opts ...AutoplayOption) *Autoplay {
	a := &Autoplay{
		ctrl:      ctrl,
		interval:  DefaultInterval,
		slide:     DefaultSlideDuration,
		newTicker: NewTimeTicker,
		newTimer:  NewTimeTimer,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run ticks until ctx is done, then stops the ticker and any pending reset so
// no further firings reach the controller. Ticks missed while paused are not
// replayed; when a hover-leave resumes autoplay the ticker restarts a full
// period. A tick that lands on index N arms a one-shot reset that reconciles
// the loop once the slide has finished.
func (a *Autoplay) Run(ctx context.Context) error {
	ticker := a.newTicker(a.interval)
	defer ticker.Stop()

	var (
		reset  Timer
		resetC <-chan time.Time
	)
	defer func() {
		if reset != nil {
			reset.Stop()
		}
	}()

	a.logger.InfoContext(ctx, "carousel autoplay started", "interval", a.interval.String())
	for {
		select {
		case <-ctx.Done():
			a.logger.InfoContext(ctx, "carousel autoplay stopped")
			return nil
		case <-a.ctrl.Resumed():
			ticker.Reset(a.interval)
		case <-resetC:
			reset, resetC = nil, nil
			if snap, ok := a.ctrl.Reconcile(); ok {
				a.logger.DebugContext(ctx, "carousel loop reset", "index", snap.Index)
			}
		case <-ticker.C():
			if !a.ctrl.Tick() {
				continue
			}
			if a.onAdvance != nil {
				a.onAdvance()
			}
			if snap := a.ctrl.Snapshot(); snap.Index >= snap.Count && reset == nil {
				reset = a.newTimer(a.slide)
				resetC = reset.C()
			}
		}
	}
}
