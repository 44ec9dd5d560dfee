package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView_RepeatsCatalogThreeTimes(t *testing.T) {
	v := newView(testItems(4))

	assert.Equal(t, 4, v.N())
	assert.Equal(t, 12, v.Len())

	seq := v.Sequence()
	assert.Len(t, seq, 12)
	for k := range 2 * v.N() {
		assert.Equal(t, v.At(k).ID, v.At(k+v.N()).ID, "position %d", k)
		assert.Equal(t, seq[k].ID, seq[k+v.N()].ID)
	}
}

func TestView_AtNegative(t *testing.T) {
	v := newView(testItems(3))

	assert.Equal(t, "3", v.At(-1).ID)
	assert.Equal(t, "1", v.At(-3).ID)
}

func TestView_Window(t *testing.T) {
	v := newView(testItems(4))

	window := v.Window(3, 3)
	ids := []string{window[0].ID, window[1].ID, window[2].ID}
	assert.Equal(t, []string{"4", "1", "2"}, ids)

	assert.Nil(t, v.Window(0, 0))
}

func TestView_ItemsIsCopy(t *testing.T) {
	v := newView(testItems(2))
	items := v.Items()
	items[0].ID = "changed"

	assert.Equal(t, "1", v.At(0).ID)
}

func TestVisibleItemsForWidth(t *testing.T) {
	tests := map[int]int{
		320:  1,
		767:  1,
		768:  2,
		1023: 2,
		1024: 3,
		1920: 3,
	}
	for width, want := range tests {
		assert.Equal(t, want, VisibleItemsForWidth(width), "width %d", width)
	}
}
