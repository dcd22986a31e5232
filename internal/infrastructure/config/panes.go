package config

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/splitter/internal/domain/entity"
)

// ToEntity converts the declaration into a pane at the given index.
// A missing ID gets a fresh UUID.
func (p PaneConfig) ToEntity(index int) (entity.Pane, error) {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}

	size, err := entity.ParseLength(p.Size)
	if err != nil {
		return entity.Pane{}, fmt.Errorf("pane %d: %w: %w", index, err, entity.ErrInvalidConfiguration)
	}

	pane := entity.NewPane(entity.PaneID(id), index)
	pane.Name = p.Name
	pane.MinSize = p.MinSize
	pane.MaxSize = p.MaxSize
	pane.Collapsed = p.Collapsed
	pane.Fixed = p.Fixed
	pane.InitialSize = size
	if p.Collapsible != nil {
		pane.Collapsible = *p.Collapsible
	}
	return pane, nil
}

// PanesToEntities converts the declarations in order.
func PanesToEntities(panes []PaneConfig) ([]entity.Pane, error) {
	out := make([]entity.Pane, 0, len(panes))
	for i, p := range panes {
		pane, err := p.ToEntity(i)
		if err != nil {
			return nil, err
		}
		out = append(out, pane)
	}
	return out, nil
}

// Resolve parses the string props of s.
func (s SplitterConfig) Resolve() (entity.SplitterSettings, error) {
	orientation, err := entity.ParseOrientation(s.Orientation)
	if err != nil {
		return entity.SplitterSettings{}, fmt.Errorf("%w: %w", err, entity.ErrInvalidConfiguration)
	}
	direction, err := entity.ParseCollapseDirection(s.CollapseDirection)
	if err != nil {
		return entity.SplitterSettings{}, fmt.Errorf("%w: %w", err, entity.ErrInvalidConfiguration)
	}
	return entity.SplitterSettings{
		Orientation:        orientation,
		SplitBarSize:       s.SplitBarSize,
		ShowCollapseButton: s.ShowCollapseButton,
		CollapseDirection:  direction,
		CollapsedExtent:    s.CollapsedExtent,
	}, nil
}
