package entity

// PaneStyle is the positional styling emitted for one pane.
// Offset is measured from the container's leading edge along the layout axis.
type PaneStyle struct {
	PaneID    PaneID
	Index     int
	Order     int
	Offset    int
	Size      int
	Collapsed bool
}

// End returns the coordinate just past the pane's trailing edge.
func (s PaneStyle) End() int {
	return s.Offset + s.Size
}

// BarStyle is the positional styling emitted for one divider.
type BarStyle struct {
	Index     int
	Order     int
	Offset    int
	Size      int
	Draggable bool
}

// Contains reports whether an axis coordinate falls on the bar.
// Zero-thickness bars are hit on their offset only.
func (s BarStyle) Contains(pos int) bool {
	size := s.Size
	if size < 1 {
		size = 1
	}
	return pos >= s.Offset && pos < s.Offset+size
}
