// Package layout implements the splitter layout engine: the Store that owns
// pane sizes, the Divider Bars that turn pointer gestures into resize
// requests, and the Container Shell that observes its own size and lays out
// panes and dividers for a Renderer. It defines small interfaces for the
// rendering surface so the engine runs without any UI toolkit.
package layout

import "github.com/bnema/splitter/internal/domain/entity"

// Point is a pointer position in container coordinates.
type Point struct {
	X, Y int
}

// Along returns the coordinate on the layout axis.
func (p Point) Along(o entity.Orientation) int {
	if o == entity.OrientationVertical {
		return p.Y
	}
	return p.X
}

// Size is a rendered container extent.
type Size struct {
	Width, Height int
}

// Along returns the extent on the layout axis.
func (s Size) Along(o entity.Orientation) int {
	if o == entity.OrientationVertical {
		return s.Height
	}
	return s.Width
}

// Across returns the extent on the cross axis.
func (s Size) Across(o entity.Orientation) int {
	if o == entity.OrientationVertical {
		return s.Width
	}
	return s.Height
}

// CollapseAction is what a divider's collapse control would do.
type CollapseAction int

const (
	ActionCollapse CollapseAction = iota
	ActionExpand
)

func (a CollapseAction) String() string {
	if a == ActionExpand {
		return "expand"
	}
	return "collapse"
}

// CollapseControl describes a divider's collapse/expand button.
type CollapseControl struct {
	Visible   bool
	Enabled   bool
	Action    CollapseAction
	PaneIndex int // Pane the control acts on
}

// BarLayout is the positional styling of one divider plus its control state.
type BarLayout struct {
	entity.BarStyle
	Control CollapseControl
}

// Layout is everything a rendering surface needs to draw the splitter.
type Layout struct {
	Orientation   entity.Orientation
	ContainerSize int
	Panes         []entity.PaneStyle
	Bars          []BarLayout
	Status        Status
	Reason        ChangeReason
}

// BarAt returns the index of the bar under the axis coordinate, or -1.
func (l Layout) BarAt(pos int) int {
	for i, bar := range l.Bars {
		if bar.Contains(pos) {
			return i
		}
	}
	return -1
}

// Renderer is the rendering surface a Container Shell draws onto.
// Render is called synchronously after every store change.
type Renderer interface {
	Render(l Layout)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(l Layout)

// Render calls f(l).
func (f RendererFunc) Render(l Layout) {
	f(l)
}
