package survey

// Window is the admissible page-offset range shared by caption scanning and image
// selection. Offset 0 is the marker page itself.
type Window struct {
	MinOffset int
	MaxOffset int
}

// DefaultWindow admits the one or two pages that follow a marker page.
var DefaultWindow = Window{MinOffset: 1, MaxOffset: 2}

// Admits reports whether offset lies inside the window, bounds included.
func (w Window) Admits(offset int) bool {
	return offset >= w.MinOffset && offset <= w.MaxOffset
}
