package carousel

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	dErrors "portfolio/pkg/domain-errors"
)

const (
	// DragThreshold is the horizontal distance, in CSS pixels, a drag must
	// exceed to count as a swipe.
	DragThreshold = 50

	// DefaultInterval is one autoplay period: a 1s slide plus a 1s settle.
	DefaultInterval = 2 * time.Second

	// DefaultSlideDuration is how long the renderer animates one step.
	DefaultSlideDuration = time.Second
)

// Item is one card in the carousel. Items are immutable once the catalog is built.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Link        string   `json:"link,omitempty"`
}

// Source names what moved the index.
type Source string

const (
	SourceTimer  Source = "timer"
	SourceManual Source = "manual"
	SourceDrag   Source = "drag"
	SourceJump   Source = "jump"
	SourceReset  Source = "reset"
)

// Transition is reported to the observer after every index change.
type Transition struct {
	Source Source
	From   int
	To     int
}

// Snapshot is a consistent copy of the carousel state.
type Snapshot struct {
	Index        int    `json:"index"`
	Active       int    `json:"active"`
	Count        int    `json:"count"`
	Paused       bool   `json:"paused"`
	Dragging     bool   `json:"dragging"`
	VisibleItems int    `json:"visible_items"`
	Offset       string `json:"offset"`
	Animate      bool   `json:"animate"`
}

// Controller owns the carousel index. All methods are safe for concurrent use;
// each runs to completion under one lock, so the timer, manual controls and
// drag resolution never interleave.
type Controller struct {
	mu       sync.Mutex
	view     View
	current  int
	paused   bool
	dragging bool
	visible  int
	animate  bool

	observer func(Transition)
	resumed  chan struct{}
}

// Option configures a Controller.
type Option func(*Controller)

// WithVisibleItems sets the initial number of cards on screen (1..3).
func WithVisibleItems(n int) Option {
	return func(c *Controller) {
		if n >= 1 && n <= 3 {
			c.visible = n
		}
	}
}

// WithObserver registers a callback invoked after each index change.
// It runs outside the controller lock.
func WithObserver(fn func(Transition)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// New builds a controller over items. At least one item is required.
func New(items []Item, opts ...Option) (*Controller, error) {
	if len(items) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "carousel requires at least one item")
	}
	owned := make([]Item, len(items))
	copy(owned, items)

	c := &Controller{
		view:    newView(owned),
		visible: 3,
		animate: true,
		resumed: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// View returns the render view over the catalog.
func (c *Controller) View() View {
	return c.view
}

// Resumed delivers a signal each time autoplay is re-enabled by a hover-leave.
func (c *Controller) Resumed() <-chan struct{} {
	return c.resumed
}

// Advance moves one item forward. No upper bound is enforced here; Reconcile
// folds the index back after the slide finishes.
func (c *Controller) Advance() Snapshot {
	return c.mutate(SourceManual, c.advanceLocked)
}

// Retreat moves one item back. From index 0 (or below) it lands on N-1 rather
// than going negative, so the render window never leaves the populated strip.
func (c *Controller) Retreat() Snapshot {
	return c.mutate(SourceManual, c.retreatLocked)
}

// Next is the "next" control: pause, then advance.
func (c *Controller) Next() Snapshot {
	return c.mutate(SourceManual, func() {
		c.paused = true
		c.advanceLocked()
	})
}

// Prev is the "previous" control: pause, then retreat.
func (c *Controller) Prev() Snapshot {
	return c.mutate(SourceManual, func() {
		c.paused = true
		c.retreatLocked()
	})
}

// JumpTo selects an absolute item from a progress indicator and pauses.
// Indices outside [0, N-1] are rejected without touching state.
func (c *Controller) JumpTo(index int) (Snapshot, error) {
	n := c.view.N()
	if index < 0 || index >= n {
		return c.Snapshot(), dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("index %d out of range [0, %d]", index, n-1))
	}
	return c.mutate(SourceJump, func() {
		c.paused = true
		c.current = index
	}), nil
}

// BeginDrag suspends timer-driven advancement for the gesture's duration.
func (c *Controller) BeginDrag() Snapshot {
	return c.mutate(SourceDrag, func() {
		c.dragging = true
	})
}

// EndDrag resolves a gesture from its signed horizontal offset in pixels.
// Right beyond the threshold retreats, left beyond it advances, anything
// shorter snaps back to the current index.
func (c *Controller) EndDrag(offsetPixels float64) Snapshot {
	return c.mutate(SourceDrag, func() {
		c.dragging = false
		c.paused = true
		switch {
		case offsetPixels > DragThreshold:
			c.retreatLocked()
		case offsetPixels < -DragThreshold:
			c.advanceLocked()
		}
	})
}

// HoverEnter pauses autoplay.
func (c *Controller) HoverEnter() Snapshot {
	return c.mutate(SourceManual, func() {
		c.paused = true
	})
}

// HoverLeave resumes autoplay. This is the only path that clears the pause.
func (c *Controller) HoverLeave() Snapshot {
	snap := c.mutate(SourceManual, func() {
		c.paused = false
	})
	select {
	case c.resumed <- struct{}{}:
	default:
	}
	return snap
}

// Tick is the autoplay entry point. It advances only while neither paused nor
// dragging and reports whether it did.
func (c *Controller) Tick() bool {
	advanced := false
	c.mutate(SourceTimer, func() {
		if c.paused || c.dragging {
			return
		}
		c.advanceLocked()
		advanced = true
	})
	return advanced
}

// Reconcile is the seamless loop reset. It runs once a non-drag slide has
// finished; when the index has reached N or beyond it folds back by N, so the
// same item stays on screen, and the following frame is painted without
// animation. A call with nothing to fold leaves the animation flag as it was.
// Reports whether a reset happened.
func (c *Controller) Reconcile() (Snapshot, bool) {
	reset := false
	snap := c.mutate(SourceReset, func() {
		if n := c.view.N(); c.current >= n {
			c.current %= n
			reset = true
		}
	})
	return snap, reset
}

// SetViewportWidth recomputes the number of visible cards immediately.
func (c *Controller) SetViewportWidth(width int) (Snapshot, error) {
	if width <= 0 {
		return c.Snapshot(), dErrors.New(dErrors.CodeInvalidInput, "viewport width must be positive")
	}
	c.mu.Lock()
	c.visible = VisibleItemsForWidth(width)
	snap := c.snapshotLocked()
	c.mu.Unlock()
	return snap, nil
}

// ComputeOffset returns the strip translation for the current state, e.g. "-100%".
func (c *Controller) ComputeOffset() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ComputeOffset(c.current, c.visible)
}

// Snapshot returns a consistent copy of the state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// ComputeOffset is -(index * 100/visible) percent, rounded to four decimals.
func ComputeOffset(index, visible int) string {
	if visible <= 0 {
		visible = 1
	}
	pct := float64(index*100) / float64(visible)
	pct = math.Round(pct*1e4) / 1e4
	if pct == 0 {
		return "0%"
	}
	return strconv.FormatFloat(-pct, 'f', -1, 64) + "%"
}

// mutate runs fn under the lock, stamps the animation flag and notifies the
// observer when the index moved.
func (c *Controller) mutate(source Source, fn func()) Snapshot {
	c.mu.Lock()
	from := c.current
	fn()
	to := c.current
	if from != to {
		c.animate = source != SourceReset
	}
	snap := c.snapshotLocked()
	observer := c.observer
	c.mu.Unlock()

	if observer != nil && from != to {
		observer(Transition{Source: source, From: from, To: to})
	}
	return snap
}

func (c *Controller) advanceLocked() {
	c.current++
}

func (c *Controller) retreatLocked() {
	if c.current <= 0 {
		c.current = c.view.N() - 1
		return
	}
	c.current--
}

func (c *Controller) snapshotLocked() Snapshot {
	n := c.view.N()
	return Snapshot{
		Index:        c.current,
		Active:       ((c.current % n) + n) % n,
		Count:        n,
		Paused:       c.paused,
		Dragging:     c.dragging,
		VisibleItems: c.visible,
		Offset:       ComputeOffset(c.current, c.visible),
		Animate:      c.animate,
	}
}
