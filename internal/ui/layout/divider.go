package layout

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/logging"
)

// DragSession is the state of one pointer-drag gesture on a divider.
// Deltas are always measured from this snapshot, never accumulated per event.
type DragSession struct {
	DividerIndex int
	StartPointer int
	StartSizes   [2]int
}

// DividerBarOptions configures a DividerBar.
type DividerBarOptions struct {
	Orientation        entity.Orientation
	Size               int
	ShowCollapseButton bool
	CollapseDirection  entity.CollapseDirection
}

// DividerBar is the interactive boundary between pane i and pane i+1.
// It receives the Store it acts on at construction.
type DividerBar struct {
	index   int
	store   *Store
	opts    DividerBarOptions
	logger  zerolog.Logger
	session *DragSession
	applied int

	mu sync.Mutex
}

// NewDividerBar creates the divider between pane index and pane index+1.
func NewDividerBar(ctx context.Context, store *Store, index int, opts DividerBarOptions) *DividerBar {
	ctx = logging.WithDivider(logging.WithComponent(ctx, "divider-bar"), index)

	return &DividerBar{
		index:  index,
		store:  store,
		opts:   opts,
		logger: *logging.FromContext(ctx),
	}
}

// Index returns the divider's position among its siblings.
func (b *DividerBar) Index() int {
	return b.index
}

// Draggable reports whether both neighbors currently accept drags.
func (b *DividerBar) Draggable() bool {
	return b.store.PairResizable(b.index)
}

// PointerDown starts a drag session at p. It returns false when the bar is
// static or a session is already running.
func (b *DividerBar) PointerDown(p Point) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session != nil || !b.store.PairResizable(b.index) {
		return false
	}
	lead, _ := b.store.Pane(b.index)
	trail, _ := b.store.Pane(b.index + 1)

	b.session = &DragSession{
		DividerIndex: b.index,
		StartPointer: p.Along(b.opts.Orientation),
		StartSizes:   [2]int{lead.Size, trail.Size},
	}
	b.applied = 0
	b.logger.Debug().Int("pointer", b.session.StartPointer).Msg("drag started")
	return true
}

// PointerMove sends the cumulative delta since gesture start to the store
// and returns the delta it applied. Without a session it does nothing.
func (b *DividerBar) PointerMove(p Point) int {
	b.mu.Lock()
	session := b.session
	b.mu.Unlock()
	if session == nil {
		return 0
	}

	delta := p.Along(b.opts.Orientation) - session.StartPointer
	applied := b.store.ResizeFromSnapshot(session.DividerIndex, session.StartSizes, delta)

	b.mu.Lock()
	b.applied = applied
	b.mu.Unlock()
	return applied
}

// PointerUp ends the gesture. Sizes already applied are kept.
func (b *DividerBar) PointerUp() {
	b.end("pointer up")
}

// Cancel ends the gesture after pointer-cancel or lost capture. Like
// PointerUp it keeps what was applied; drags are not transactional.
func (b *DividerBar) Cancel() {
	b.end("cancelled")
}

func (b *DividerBar) end(why string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return
	}
	b.logger.Debug().Int("applied", b.applied).Msg("drag ended: " + why)
	b.session = nil
}

// Dragging reports whether a gesture is in progress.
func (b *DividerBar) Dragging() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session != nil
}

// Session returns a copy of the active drag session.
func (b *DividerBar) Session() (DragSession, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session == nil {
		return DragSession{}, false
	}
	return *b.session, true
}

// Nudge moves the divider by step pixels from its current position, for
// keyboard resizing. It is ignored while a drag is in progress.
func (b *DividerBar) Nudge(step int) int {
	if b.Dragging() {
		return 0
	}
	return b.store.DragResize(b.index, step)
}

// CollapseControl returns the current state of the bar's collapse control.
func (b *DividerBar) CollapseControl() CollapseControl {
	snap := b.store.Snapshot()
	return collapseControl(snap.Panes, b.index, b.opts, snap.CollapsedExtent)
}

// ToggleCollapse activates the collapse control. It ends any running drag and
// returns false when the control is hidden or disabled.
func (b *DividerBar) ToggleCollapse() bool {
	ctl := b.CollapseControl()
	if !ctl.Visible || !ctl.Enabled {
		return false
	}
	b.Cancel()
	b.store.ToggleCollapse(ctl.PaneIndex)
	return true
}

// collapseControl derives the control of divider i from a pane list.
func collapseControl(panes []entity.Pane, dividerIndex int, opts DividerBarOptions, collapsedExtent int) CollapseControl {
	target := dividerIndex
	if opts.CollapseDirection == entity.CollapseAfter {
		target = dividerIndex + 1
	}

	ctl := CollapseControl{PaneIndex: target}
	if !opts.ShowCollapseButton || target < 0 || target >= len(panes) {
		return ctl
	}
	pane := panes[target]
	if !pane.Collapsible {
		return ctl
	}

	ctl.Visible = true
	if pane.Collapsed {
		ctl.Action = ActionExpand
		ctl.Enabled = true
		return ctl
	}

	expanded := 0
	for _, p := range panes {
		if !p.Collapsed {
			expanded++
		}
	}
	ctl.Action = ActionCollapse
	ctl.Enabled = pane.Size > collapsedExtent && expanded > 1
	return ctl
}
