package entity

import (
	"fmt"
	"sort"
	"strings"
)

// PaneRegistry is the ordered pane collection of one splitter, keyed by index.
// Membership is fixed once built; only pane state changes afterwards.
type PaneRegistry struct {
	panes []Pane
}

// NewPaneRegistry validates the panes and returns a registry holding a copy.
// Panes may be supplied in any order but their indices must be exactly 0..n-1.
func NewPaneRegistry(panes []Pane) (*PaneRegistry, error) {
	ordered := make([]Pane, len(panes))
	copy(ordered, panes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})

	for i := range ordered {
		if ordered[i].Index != i {
			return nil, fmt.Errorf("pane indices must be contiguous from 0, found %d at position %d: %w",
				ordered[i].Index, i, ErrInvalidConfiguration)
		}
		if err := ordered[i].Validate(); err != nil {
			return nil, err
		}
	}

	return &PaneRegistry{panes: ordered}, nil
}

// Len returns the number of panes.
func (r *PaneRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.panes)
}

// At returns the pane at index i, or nil when out of range.
func (r *PaneRegistry) At(i int) *Pane {
	if r == nil || i < 0 || i >= len(r.panes) {
		return nil
	}
	return &r.panes[i]
}

// Snapshot returns a copy of all panes in index order.
func (r *PaneRegistry) Snapshot() []Pane {
	if r == nil {
		return nil
	}
	out := make([]Pane, len(r.panes))
	copy(out, r.panes)
	return out
}

// DividerCount returns the number of boundaries between adjacent panes.
func (r *PaneRegistry) DividerCount() int {
	if r.Len() == 0 {
		return 0
	}
	return r.Len() - 1
}

// Expanded returns the indices of non-collapsed panes.
func (r *PaneRegistry) Expanded() []int {
	out := make([]int, 0, r.Len())
	for i := 0; i < r.Len(); i++ {
		if !r.panes[i].Collapsed {
			out = append(out, i)
		}
	}
	return out
}

// CollapsedCount returns how many panes are collapsed.
func (r *PaneRegistry) CollapsedCount() int {
	return r.Len() - len(r.Expanded())
}

// ExpandedSize sums the sizes of non-collapsed panes (the used free pool).
func (r *PaneRegistry) ExpandedSize() int {
	total := 0
	for _, i := range r.Expanded() {
		total += r.panes[i].Size
	}
	return total
}

// FreeSpace returns the extent available to non-collapsed panes once divider
// thickness and collapsed extents are reserved. It may be negative.
func (r *PaneRegistry) FreeSpace(containerSize, dividerSize, collapsedExtent int) int {
	return containerSize - dividerSize*r.DividerCount() - collapsedExtent*r.CollapsedCount()
}

// FindByName returns the index of the pane with the given name (case
// insensitive) or ID, or -1.
func (r *PaneRegistry) FindByName(name string) int {
	for i := 0; i < r.Len(); i++ {
		if strings.EqualFold(r.panes[i].Name, name) || string(r.panes[i].ID) == name {
			return i
		}
	}
	return -1
}
