package carousel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "portfolio/pkg/domain-errors"
)

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range n {
		items[i] = Item{ID: fmt.Sprintf("%d", i+1), Name: fmt.Sprintf("Venture %d", i+1)}
	}
	return items
}

func newController(t *testing.T, n int, opts ...Option) *Controller {
	t.Helper()
	c, err := New(testItems(n), opts...)
	require.NoError(t, err)
	return c
}

func TestNew_RequiresItems(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeInvalidInput))
}

func TestNew_CopiesCatalog(t *testing.T) {
	items := testItems(2)
	c, err := New(items)
	require.NoError(t, err)

	items[0].ID = "mutated"
	assert.Equal(t, "1", c.View().At(0).ID)
}

func TestRetreat_NeverNegative(t *testing.T) {
	for n := 1; n <= 6; n++ {
		c := newController(t, n)
		// interleave a few advances and retreats; the index must stay >= 0
		for _, step := range []string{"r", "a", "r", "r", "a", "a", "r", "r", "r"} {
			if step == "a" {
				c.Advance()
			} else {
				c.Retreat()
			}
			assert.GreaterOrEqual(t, c.Snapshot().Index, 0, "n=%d", n)
		}
	}
}

func TestRetreat_FromZeroLandsOnLastItem(t *testing.T) {
	c := newController(t, 4)

	snap := c.Retreat()
	assert.Equal(t, 3, snap.Index)

	snap = c.Retreat()
	assert.Equal(t, 2, snap.Index)
}

func TestRetreat_SingleItem(t *testing.T) {
	c := newController(t, 1)

	assert.Equal(t, 0, c.Retreat().Index)
}

func TestAdvance_Unbounded(t *testing.T) {
	c := newController(t, 2)

	c.Advance()
	c.Advance()
	snap := c.Advance()
	assert.Equal(t, 3, snap.Index)
	assert.Equal(t, 1, snap.Active)
}

func TestComputeOffset_Pure(t *testing.T) {
	c := newController(t, 4)
	c.Advance()

	before := c.Snapshot()
	first := c.ComputeOffset()
	second := c.ComputeOffset()

	assert.Equal(t, first, second)
	assert.Equal(t, before, c.Snapshot())
}

func TestComputeOffset(t *testing.T) {
	tests := []struct {
		index   int
		visible int
		want    string
	}{
		{0, 3, "0%"},
		{1, 1, "-100%"},
		{1, 2, "-50%"},
		{1, 3, "-33.3333%"},
		{2, 3, "-66.6667%"},
		{3, 3, "-100%"},
		{4, 2, "-200%"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.index, tt.visible), func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeOffset(tt.index, tt.visible))
		})
	}
}

func TestScenario_FourItemsThreeVisible(t *testing.T) {
	c := newController(t, 4, WithVisibleItems(3))

	c.Advance()
	c.Advance()
	snap := c.Advance()
	assert.Equal(t, 3, snap.Index)
	assert.Equal(t, "-100%", c.ComputeOffset())

	renderedAtN := c.View().At(4)
	snap = c.Advance()
	require.Equal(t, 4, snap.Index)

	snap, reset := c.Reconcile()
	assert.True(t, reset)
	assert.Equal(t, 0, snap.Index)
	assert.False(t, snap.Animate, "reset frame must not animate")
	assert.Equal(t, renderedAtN.ID, c.View().At(snap.Index).ID)
}

func TestReconcile_NoopBelowN(t *testing.T) {
	c := newController(t, 4)
	c.Advance()

	snap, reset := c.Reconcile()
	assert.False(t, reset)
	assert.Equal(t, 1, snap.Index)
	assert.True(t, snap.Animate)
}

func TestReconcile_RepeatedCallKeepsResetFrameStill(t *testing.T) {
	c := newController(t, 4)
	for range 4 {
		require.True(t, c.Tick())
	}

	first, reset := c.Reconcile()
	require.True(t, reset)
	assert.Equal(t, 0, first.Index)
	assert.False(t, first.Animate)

	second, reset := c.Reconcile()
	assert.False(t, reset)
	assert.Equal(t, 0, second.Index)
	assert.False(t, second.Animate, "late reconcile must not re-enable the transition")
}

func TestReconcile_FoldsPastNKeepingItem(t *testing.T) {
	c := newController(t, 4)
	for range 4 {
		c.Tick()
	}
	// a manual step lands before the pending reset
	snap := c.Next()
	require.Equal(t, 5, snap.Index)
	shown := c.View().At(snap.Index)

	snap, reset := c.Reconcile()
	assert.True(t, reset)
	assert.Equal(t, 1, snap.Index)
	assert.Equal(t, 1, snap.Active)
	assert.False(t, snap.Animate)
	assert.Equal(t, shown.ID, c.View().At(snap.Index).ID)
}

func TestReconcile_AnimationResumesAfterNextMove(t *testing.T) {
	c := newController(t, 2)
	c.Advance()
	c.Advance()
	snap, _ := c.Reconcile()
	require.False(t, snap.Animate)

	snap = c.Advance()
	assert.True(t, snap.Animate)
}

func TestJumpTo(t *testing.T) {
	t.Run("sets index and pauses from any state", func(t *testing.T) {
		c := newController(t, 4)
		c.Advance()
		c.BeginDrag()

		snap, err := c.JumpTo(2)
		require.NoError(t, err)
		assert.Equal(t, 2, snap.Index)
		assert.True(t, snap.Paused)
	})

	t.Run("out of range rejected without state change", func(t *testing.T) {
		c := newController(t, 4)
		c.Advance()

		for _, idx := range []int{-1, 4, 100} {
			snap, err := c.JumpTo(idx)
			require.Error(t, err)
			assert.True(t, dErrors.Is(err, dErrors.CodeInvalidInput))
			assert.Equal(t, 1, snap.Index)
			assert.False(t, snap.Paused)
		}
	})
}

func TestEndDrag_Classification(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   int
	}{
		{"right past threshold retreats", 51, 0},
		{"left past threshold advances", -51, 2},
		{"short right snaps back", 49, 1},
		{"short left snaps back", -49, 1},
		{"exactly threshold snaps back", 50, 1},
		{"exactly negative threshold snaps back", -50, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(t, 4)
			c.Advance()

			c.BeginDrag()
			assert.True(t, c.Snapshot().Dragging)

			snap := c.EndDrag(tt.offset)
			assert.Equal(t, tt.want, snap.Index)
			assert.False(t, snap.Dragging)
			assert.True(t, snap.Paused)
		})
	}
}

func TestEndDrag_MatchesManualOps(t *testing.T) {
	dragged := newController(t, 4)
	manual := newController(t, 4)

	dragged.EndDrag(51)
	manual.Retreat()
	assert.Equal(t, manual.Snapshot().Index, dragged.Snapshot().Index)

	dragged.EndDrag(-51)
	manual.Advance()
	assert.Equal(t, manual.Snapshot().Index, dragged.Snapshot().Index)
}

func TestTick_Gating(t *testing.T) {
	t.Run("advances while playing", func(t *testing.T) {
		c := newController(t, 4)
		assert.True(t, c.Tick())
		assert.Equal(t, 1, c.Snapshot().Index)
	})

	t.Run("paused ignores ticks", func(t *testing.T) {
		c := newController(t, 4)
		c.HoverEnter()
		for range 5 {
			assert.False(t, c.Tick())
		}
		assert.Equal(t, 0, c.Snapshot().Index)
	})

	t.Run("dragging ignores ticks", func(t *testing.T) {
		c := newController(t, 4)
		c.BeginDrag()
		for range 5 {
			assert.False(t, c.Tick())
		}
		assert.Equal(t, 0, c.Snapshot().Index)
	})

	t.Run("manual controls pause", func(t *testing.T) {
		c := newController(t, 4)
		c.Next()
		assert.False(t, c.Tick())
		assert.Equal(t, 1, c.Snapshot().Index)

		c.Prev()
		assert.False(t, c.Tick())
		assert.Equal(t, 0, c.Snapshot().Index)
	})

	t.Run("drag end keeps autoplay paused", func(t *testing.T) {
		c := newController(t, 4)
		c.BeginDrag()
		c.EndDrag(0)
		assert.False(t, c.Tick())
	})
}

func TestHover_PauseAndResume(t *testing.T) {
	c := newController(t, 4)
	require.True(t, c.Tick())

	snap := c.HoverEnter()
	assert.True(t, snap.Paused)
	assert.False(t, c.Tick())
	assert.Equal(t, 1, c.Snapshot().Index)

	snap = c.HoverLeave()
	assert.False(t, snap.Paused)
	select {
	case <-c.Resumed():
	default:
		t.Fatal("expected resume signal after hover leave")
	}

	assert.True(t, c.Tick())
	assert.Equal(t, 2, c.Snapshot().Index)
}

func TestSetViewportWidth(t *testing.T) {
	c := newController(t, 4)
	c.Advance()

	snap, err := c.SetViewportWidth(500)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.VisibleItems)
	assert.Equal(t, "-100%", snap.Offset)

	snap, err = c.SetViewportWidth(800)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.VisibleItems)
	assert.Equal(t, "-50%", snap.Offset)

	_, err = c.SetViewportWidth(0)
	assert.True(t, dErrors.Is(err, dErrors.CodeInvalidInput))
}

func TestObserver_ReceivesTransitions(t *testing.T) {
	var got []Transition
	c := newController(t, 2, WithObserver(func(tr Transition) {
		got = append(got, tr)
	}))

	c.Tick()
	c.Next()
	c.Reconcile()
	c.HoverEnter()
	_, _ = c.JumpTo(1)

	require.Len(t, got, 4)
	assert.Equal(t, Transition{Source: SourceTimer, From: 0, To: 1}, got[0])
	assert.Equal(t, Transition{Source: SourceManual, From: 1, To: 2}, got[1])
	assert.Equal(t, Transition{Source: SourceReset, From: 2, To: 0}, got[2])
	assert.Equal(t, Transition{Source: SourceJump, From: 0, To: 1}, got[3])
}
