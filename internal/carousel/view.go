package carousel

// renderLaps is how many times the catalog is repeated in the render sequence.
const renderLaps = 3

// View is a read-only window over the catalog repeated renderLaps times.
type View struct {
	items []Item
}

func newView(items []Item) View {
	return View{items: items}
}

// N is the catalog size.
func (v View) N() int {
	return len(v.items)
}

// Len is the length of the render sequence (3N).
func (v View) Len() int {
	return renderLaps * len(v.items)
}

// At returns the item painted at render position i. Any integer is accepted;
// positions k and k+N always yield the same item.
func (v View) At(i int) Item {
	n := len(v.items)
	return v.items[((i%n)+n)%n]
}

// Window returns count consecutive render items starting at start.
func (v View) Window(start, count int) []Item {
	if count <= 0 {
		return nil
	}
	out := make([]Item, count)
	for i := range count {
		out[i] = v.At(start + i)
	}
	return out
}

// Sequence returns the full render sequence.
func (v View) Sequence() []Item {
	return v.Window(0, v.Len())
}

// Items returns a copy of the catalog in order.
func (v View) Items() []Item {
	out := make([]Item, len(v.items))
	copy(out, v.items)
	return out
}
