// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// PaneID uniquely identifies a pane within a splitter.
type PaneID string

// Orientation selects the axis along which panes are laid out.
type Orientation int

const (
	OrientationHorizontal Orientation = iota // Panes side by side, width governs
	OrientationVertical                      // Panes stacked, height governs
)

// String returns the config spelling of the orientation.
func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation parses "horizontal" or "vertical" (case-insensitive).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return OrientationHorizontal, nil
	case "vertical":
		return OrientationVertical, nil
	default:
		return OrientationHorizontal, fmt.Errorf("unknown orientation %q", s)
	}
}

// CollapseDirection selects which neighbor a divider's collapse control acts on.
type CollapseDirection int

const (
	CollapseBefore CollapseDirection = iota // Leading pane (left/above the divider)
	CollapseAfter                           // Trailing pane (right/below the divider)
)

// String returns the config spelling of the direction.
func (d CollapseDirection) String() string {
	if d == CollapseAfter {
		return "after"
	}
	return "before"
}

// ParseCollapseDirection parses "before" or "after".
func ParseCollapseDirection(s string) (CollapseDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "before":
		return CollapseBefore, nil
	case "after":
		return CollapseAfter, nil
	default:
		return CollapseBefore, fmt.Errorf("unknown collapse direction %q", s)
	}
}

// Length is a declared pane extent, either absolute pixels or a percentage
// of the free pool. The zero value means "no declared size".
type Length struct {
	Value   int
	Percent bool
}

// IsZero reports whether no size was declared.
func (l Length) IsZero() bool {
	return l.Value == 0
}

// Resolve converts the length into pixels against the given free pool.
func (l Length) Resolve(free int) int {
	if l.Percent {
		return free * l.Value / 100
	}
	return l.Value
}

// String formats the length the way ParseLength accepts it.
func (l Length) String() string {
	if l.IsZero() {
		return ""
	}
	if l.Percent {
		return strconv.Itoa(l.Value) + "%"
	}
	return strconv.Itoa(l.Value) + "px"
}

// ParseLength parses "30%", "200px" or "200". An empty string yields the zero Length.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, nil
	}

	percent := false
	switch {
	case strings.HasSuffix(s, "%"):
		percent = true
		s = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}

	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q: %w", s, err)
	}
	if v < 0 {
		return Length{}, fmt.Errorf("invalid length %q: must be non-negative", s)
	}
	if percent && v > 100 {
		return Length{}, fmt.Errorf("invalid length %d%%: must be at most 100%%", v)
	}
	return Length{Value: v, Percent: percent}, nil
}

// Pane represents one content region managed by a splitter.
type Pane struct {
	ID    PaneID
	Name  string
	Index int // Position among siblings, render order

	Size    int // Current extent along the layout axis
	MinSize int // 0 means no lower bound
	MaxSize int // 0 means no upper bound

	Collapsed   bool
	Collapsible bool // Dividers may offer a collapse control
	Fixed       bool // Not resizable by dragging

	InitialSize Length

	// lastSize is the size before the most recent collapse, used on expand.
	lastSize int
}

// NewPane creates a resizable, collapsible pane at the given index.
func NewPane(id PaneID, index int) Pane {
	return Pane{
		ID:          id,
		Index:       index,
		Collapsible: true,
	}
}

// HasMax reports whether the pane has an upper bound.
func (p *Pane) HasMax() bool {
	return p.MaxSize > 0
}

// Bounds returns the pane's bounds for geometry computations.
func (p *Pane) Bounds() (minSize, maxSize int) {
	return p.MinSize, p.MaxSize
}

// Validate checks the pane's bounds.
func (p *Pane) Validate() error {
	if p.MinSize < 0 || p.MaxSize < 0 {
		return fmt.Errorf("pane %d: negative bound: %w", p.Index, ErrInvalidConfiguration)
	}
	if p.HasMax() && p.MinSize > p.MaxSize {
		return fmt.Errorf("pane %d: min size %d exceeds max size %d: %w",
			p.Index, p.MinSize, p.MaxSize, ErrInvalidConfiguration)
	}
	return nil
}

// Label returns the pane name, falling back to its index.
func (p *Pane) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return "pane " + strconv.Itoa(p.Index)
}

// LastSize returns the size the pane had before it was last collapsed.
func (p *Pane) LastSize() int {
	return p.lastSize
}

// Collapse marks the pane collapsed at the given extent, remembering its size.
func (p *Pane) Collapse(extent int) {
	if p.Collapsed {
		return
	}
	p.lastSize = p.Size
	p.Size = extent
	p.Collapsed = true
}

// Expand clears the collapsed flag. The caller assigns the new size.
func (p *Pane) Expand() {
	p.Collapsed = false
}

// SplitterSettings are the container-level props of one splitter.
type SplitterSettings struct {
	Orientation        Orientation
	SplitBarSize       int
	ShowCollapseButton bool
	CollapseDirection  CollapseDirection
	CollapsedExtent    int
}
