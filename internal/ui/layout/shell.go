package layout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/logging"
)

// ErrUnmounted is returned by shell operations after Unmount.
var ErrUnmounted = errors.New("splitter shell is unmounted")

// ShellOptions configures a Container Shell.
type ShellOptions struct {
	Orientation        entity.Orientation
	SplitBarSize       int
	ShowCollapseButton bool
	CollapseDirection  entity.CollapseDirection
	CollapsedExtent    int
}

// DefaultShellOptions returns the defaults used when nothing is configured.
func DefaultShellOptions() ShellOptions {
	return ShellOptions{
		Orientation:        entity.OrientationHorizontal,
		SplitBarSize:       1,
		ShowCollapseButton: true,
		CollapseDirection:  entity.CollapseBefore,
	}
}

// Shell is the Container Shell: it owns one Store, one DividerBar per pane
// boundary and a ResizeObserver on its own extent, and turns every store
// change into a Layout for its Renderer.
type Shell struct {
	logger      zerolog.Logger
	opts        ShellOptions
	store       *Store
	bars        []*DividerBar
	observer    *ResizeObserver
	renderer    Renderer
	unsubscribe func()

	layout   Layout
	captured int
	mounted  bool

	mu sync.Mutex
}

// Mount builds a shell for panes, subscribes it to its store and renders the
// initial layout. The container size is unknown until the first ObserveSize.
func Mount(ctx context.Context, opts ShellOptions, panes []entity.Pane, renderer Renderer) (*Shell, error) {
	if opts.SplitBarSize < 0 {
		return nil, fmt.Errorf("%w: split bar size %d", entity.ErrInvalidConfiguration, opts.SplitBarSize)
	}
	if opts.CollapsedExtent < 0 {
		return nil, fmt.Errorf("%w: collapsed extent %d", entity.ErrInvalidConfiguration, opts.CollapsedExtent)
	}

	ctx = logging.WithComponent(ctx, "splitter-shell")
	log := logging.FromContext(ctx)

	store := NewStore(ctx, StoreOptions{
		DividerSize:     opts.SplitBarSize,
		CollapsedExtent: opts.CollapsedExtent,
	})
	if err := store.RegisterPanes(panes); err != nil {
		return nil, err
	}

	s := &Shell{
		logger:   *log,
		opts:     opts,
		store:    store,
		renderer: renderer,
		captured: -1,
		mounted:  true,
	}

	barOpts := DividerBarOptions{
		Orientation:        opts.Orientation,
		Size:               opts.SplitBarSize,
		ShowCollapseButton: opts.ShowCollapseButton,
		CollapseDirection:  opts.CollapseDirection,
	}
	for i := 0; i+1 < len(panes); i++ {
		s.bars = append(s.bars, NewDividerBar(ctx, store, i, barOpts))
	}

	s.unsubscribe = store.Subscribe(s.onChange)
	s.observer = NewResizeObserver(func(size Size) {
		store.SetContainerSize(size.Along(opts.Orientation))
	})

	s.onChange(store.Snapshot())

	log.Info().
		Int("panes", len(panes)).
		Stringer("orientation", opts.Orientation).
		Int("split_bar_size", opts.SplitBarSize).
		Msg("splitter mounted")
	return s, nil
}

// ObserveSize records the shell's rendered extent. It returns true when the
// caller should schedule one Flush; repeated calls before it are coalesced.
func (s *Shell) ObserveSize(size Size) bool {
	return s.observer.Notify(size)
}

// Flush delivers a pending size observation to the store.
func (s *Shell) Flush() bool {
	return s.observer.Flush()
}

// PointerDown hit-tests p against the dividers and, on a draggable bar,
// starts a drag and captures the pointer. It returns the captured bar index
// or -1.
func (s *Shell) PointerDown(p Point) int {
	s.mu.Lock()
	if !s.mounted || s.captured >= 0 {
		s.mu.Unlock()
		return -1
	}
	idx := s.layout.BarAt(p.Along(s.opts.Orientation))
	s.mu.Unlock()

	if idx < 0 || !s.bars[idx].PointerDown(p) {
		return -1
	}

	s.mu.Lock()
	s.captured = idx
	s.mu.Unlock()
	return idx
}

// PointerMove forwards p to the captured bar, if any.
func (s *Shell) PointerMove(p Point) int {
	bar := s.capturedBar()
	if bar == nil {
		return 0
	}
	return bar.PointerMove(p)
}

// PointerUp ends the running drag and releases capture.
func (s *Shell) PointerUp() {
	if bar := s.release(); bar != nil {
		bar.PointerUp()
	}
}

// PointerCancel ends the running drag after a cancelled or lost pointer.
func (s *Shell) PointerCancel() {
	if bar := s.release(); bar != nil {
		bar.Cancel()
	}
}

// Captured returns the index of the bar holding pointer capture, or -1.
func (s *Shell) Captured() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captured
}

func (s *Shell) capturedBar() *DividerBar {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.captured < 0 {
		return nil
	}
	return s.bars[s.captured]
}

func (s *Shell) release() *DividerBar {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.captured < 0 {
		return nil
	}
	bar := s.bars[s.captured]
	s.captured = -1
	return bar
}

// ToggleCollapse activates the collapse control of divider i.
func (s *Shell) ToggleCollapse(dividerIndex int) error {
	bar, err := s.Bar(dividerIndex)
	if err != nil {
		return err
	}
	if bar.Dragging() {
		s.release()
	}
	if !bar.ToggleCollapse() {
		return fmt.Errorf("divider %d: collapse control unavailable", dividerIndex)
	}
	return nil
}

// Bars returns the shell's dividers in order.
func (s *Shell) Bars() []*DividerBar {
	out := make([]*DividerBar, len(s.bars))
	copy(out, s.bars)
	return out
}

// Bar returns divider i.
func (s *Shell) Bar(i int) (*DividerBar, error) {
	s.mu.Lock()
	mounted := s.mounted
	s.mu.Unlock()
	if !mounted {
		return nil, ErrUnmounted
	}
	if i < 0 || i >= len(s.bars) {
		return nil, fmt.Errorf("divider %d out of range (%d dividers)", i, len(s.bars))
	}
	return s.bars[i], nil
}

// Store returns the shell's store.
func (s *Shell) Store() *Store {
	return s.store
}

// Orientation returns the layout axis.
func (s *Shell) Orientation() entity.Orientation {
	return s.opts.Orientation
}

// Layout returns the most recently rendered layout.
func (s *Shell) Layout() Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout
}

// Mounted reports whether Unmount has not run yet.
func (s *Shell) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// Unmount disconnects the resize observer and the store subscription and
// ends any drag. Only the first call does anything.
func (s *Shell) Unmount() {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return
	}
	s.mounted = false
	s.captured = -1
	s.mu.Unlock()

	s.observer.Disconnect()
	s.unsubscribe()
	for _, bar := range s.bars {
		bar.Cancel()
	}
	s.logger.Info().Msg("splitter unmounted")
}

func (s *Shell) onChange(snap Snapshot) {
	l := ComputeLayout(snap, s.opts)

	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return
	}
	s.layout = l
	s.mu.Unlock()

	if s.renderer != nil {
		s.renderer.Render(l)
	}
}

// ComputeLayout turns a snapshot into positional styling: panes take the even
// order slots and dividers the odd ones, offsets accumulate along the axis.
func ComputeLayout(snap Snapshot, opts ShellOptions) Layout {
	l := Layout{
		Orientation:   opts.Orientation,
		ContainerSize: snap.ContainerSize,
		Panes:         make([]entity.PaneStyle, 0, len(snap.Panes)),
		Status:        snap.Status,
		Reason:        snap.Reason,
	}

	barOpts := DividerBarOptions{
		Orientation:        opts.Orientation,
		Size:               snap.DividerSize,
		ShowCollapseButton: opts.ShowCollapseButton,
		CollapseDirection:  opts.CollapseDirection,
	}

	offset := 0
	for i, p := range snap.Panes {
		size := p.Size
		if p.Collapsed {
			size = snap.CollapsedExtent
		}
		l.Panes = append(l.Panes, entity.PaneStyle{
			PaneID:    p.ID,
			Index:     i,
			Order:     2 * i,
			Offset:    offset,
			Size:      size,
			Collapsed: p.Collapsed,
		})
		offset += size

		if i+1 == len(snap.Panes) {
			break
		}
		l.Bars = append(l.Bars, BarLayout{
			BarStyle: entity.BarStyle{
				Index:     i,
				Order:     2*i + 1,
				Offset:    offset,
				Size:      snap.DividerSize,
				Draggable: snap.ContainerSize > 0 && canDrag(snap.Panes, i),
			},
			Control: collapseControl(snap.Panes, i, barOpts, snap.CollapsedExtent),
		})
		offset += snap.DividerSize
	}
	return l
}
