package carousel

// Viewport breakpoints in CSS pixels.
const (
	BreakpointMedium = 768
	BreakpointLarge  = 1024
)

// VisibleItemsForWidth maps a viewport width to the number of cards on screen.
func VisibleItemsForWidth(width int) int {
	switch {
	case width < BreakpointMedium:
		return 1
	case width < BreakpointLarge:
		return 2
	default:
		return 3
	}
}
