package layout

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/domain/geometry"
	"github.com/bnema/splitter/internal/logging"
)

// ChangeReason tells observers which mutation produced a snapshot.
type ChangeReason int

const (
	ReasonRegister ChangeReason = iota
	ReasonContainerResize
	ReasonDrag
	ReasonCollapse
	ReasonExpand
)

func (r ChangeReason) String() string {
	switch r {
	case ReasonRegister:
		return "register"
	case ReasonContainerResize:
		return "container-resize"
	case ReasonDrag:
		return "drag"
	case ReasonCollapse:
		return "collapse"
	case ReasonExpand:
		return "expand"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Status reports layout conditions that are not errors.
type Status struct {
	// Overflow is how far the pane minimums exceed the free pool.
	Overflow int
	// Unallocated is free pool left over because every pane is at its maximum.
	Unallocated int
}

// LayoutOverflow reports whether the container is smaller than the sum of minimums.
func (s Status) LayoutOverflow() bool {
	return s.Overflow > 0
}

// Snapshot is the full, consistent store state handed to observers.
type Snapshot struct {
	Panes           []entity.Pane
	ContainerSize   int
	DividerSize     int
	CollapsedExtent int
	Status          Status
	Reason          ChangeReason
	// Target is the pane (collapse/expand) or divider (drag) index, -1 otherwise.
	Target int
}

// StoreOptions configures a Store.
type StoreOptions struct {
	DividerSize     int // Thickness reserved per divider
	CollapsedExtent int // Size of a collapsed pane
}

type observer struct {
	id uint64
	fn func(Snapshot)
}

// Store is the single owner of layout truth for one splitter. Every mutation
// recomputes all pane sizes before it returns and then notifies each observer
// once with a complete Snapshot. Observers run outside the store lock.
type Store struct {
	logger          zerolog.Logger
	registry        *entity.PaneRegistry
	containerSize   int
	dividerSize     int
	collapsedExtent int
	status          Status

	observers []observer
	nextID    uint64

	mu sync.Mutex
}

// NewStore creates an empty store. Negative options are treated as zero.
func NewStore(ctx context.Context, opts StoreOptions) *Store {
	log := logging.FromContext(ctx)

	return &Store{
		logger:          log.With().Str("component", "splitter-store").Logger(),
		registry:        &entity.PaneRegistry{},
		dividerSize:     max(opts.DividerSize, 0),
		collapsedExtent: max(opts.CollapsedExtent, 0),
	}
}

// RegisterPanes replaces the pane set and distributes the current container
// size among it. An invalid set is rejected as a whole with an error wrapping
// entity.ErrInvalidConfiguration; the previous set stays in place.
func (s *Store) RegisterPanes(panes []entity.Pane) error {
	registry, err := entity.NewPaneRegistry(panes)
	if err != nil {
		s.logger.Error().Err(err).Int("panes", len(panes)).Msg("rejected pane set")
		return err
	}

	s.mu.Lock()
	s.registry = registry
	s.distributeLocked()
	snap := s.snapshotLocked(ReasonRegister, -1)
	s.mu.Unlock()

	s.logger.Debug().
		Int("panes", registry.Len()).
		Int("container_size", snap.ContainerSize).
		Msg("panes registered")

	s.notify(snap)
	return nil
}

// SetContainerSize records a new container extent and rescales the
// non-collapsed panes proportionally to the change of the free pool.
// Non-positive sizes are ignored so a hidden container keeps its proportions.
func (s *Store) SetContainerSize(size int) {
	if size <= 0 {
		s.logger.Debug().Int("size", size).Msg("ignoring non-positive container size")
		return
	}

	s.mu.Lock()
	if size == s.containerSize {
		s.mu.Unlock()
		return
	}

	oldContainer := s.containerSize
	oldFree := s.freeLocked()
	s.containerSize = size

	if oldContainer <= 0 || oldFree <= 0 || s.registry.ExpandedSize() <= 0 {
		s.distributeLocked()
	} else {
		expanded := s.registry.Expanded()
		current := make([]int, len(expanded))
		for k, i := range expanded {
			current[k] = s.registry.At(i).Size
		}
		scaled := geometry.ScaleProportional(current, oldFree, max(s.freeLocked(), 0))
		s.reconcileLocked(expanded, scaled)
	}
	snap := s.snapshotLocked(ReasonContainerResize, -1)
	s.mu.Unlock()

	s.logger.Trace().Int("from", oldContainer).Int("to", size).Msg("container resized")
	s.notify(snap)
}

// DragResize moves divider i by delta pixels relative to the current sizes:
// pane i gains delta and pane i+1 loses it. Both are held within their bounds
// and nothing spills over to other panes, so the applied delta may be smaller
// than requested. It returns the applied delta.
func (s *Store) DragResize(dividerIndex, delta int) int {
	s.mu.Lock()
	lead, trail := s.registry.At(dividerIndex), s.registry.At(dividerIndex+1)
	if lead == nil || trail == nil {
		s.mu.Unlock()
		return 0
	}
	start := [2]int{lead.Size, trail.Size}
	s.mu.Unlock()

	return s.ResizeFromSnapshot(dividerIndex, start, delta)
}

// ResizeFromSnapshot applies a cumulative delta to the pair adjacent to
// divider i, measured from the sizes captured at gesture start. If the pair
// total changed since the snapshot (the container was resized mid-gesture)
// the snapshot is rescaled to the current total first.
func (s *Store) ResizeFromSnapshot(dividerIndex int, start [2]int, delta int) int {
	s.mu.Lock()
	if !s.pairResizableLocked(dividerIndex) {
		s.mu.Unlock()
		return 0
	}

	lead, trail := s.registry.At(dividerIndex), s.registry.At(dividerIndex+1)
	total := lead.Size + trail.Size
	if start[0]+start[1] != total {
		rebased := geometry.ScaleProportional(start[:], start[0]+start[1], total)
		start = [2]int{rebased[0], rebased[1]}
	}

	applied := geometry.ClampDelta(delta,
		geometry.Span{Size: start[0], Min: lead.MinSize, Max: lead.MaxSize},
		geometry.Span{Size: start[1], Min: trail.MinSize, Max: trail.MaxSize},
	)

	newLead, newTrail := start[0]+applied, start[1]-applied
	if newLead == lead.Size && newTrail == trail.Size {
		s.mu.Unlock()
		return applied
	}
	lead.Size, trail.Size = newLead, newTrail
	snap := s.snapshotLocked(ReasonDrag, dividerIndex)
	s.mu.Unlock()

	if applied != delta {
		s.logger.Trace().Int("divider", dividerIndex).Int("requested", delta).Int("applied", applied).Msg("drag truncated at bound")
	}
	s.notify(snap)
	return applied
}

// ToggleCollapse collapses or expands pane i. Collapsing hands the pane's
// surplus to the other expanded panes by size weight; expanding reclaims the
// remembered pre-collapse size (or an equal share) from them. Collapsing the
// last expanded pane and out-of-range indices are ignored.
func (s *Store) ToggleCollapse(paneIndex int) {
	s.mu.Lock()
	pane := s.registry.At(paneIndex)
	if pane == nil {
		s.mu.Unlock()
		return
	}

	reason := ReasonCollapse
	var changed bool
	if pane.Collapsed {
		reason = ReasonExpand
		changed = s.expandLocked(paneIndex)
	} else {
		changed = s.collapseLocked(paneIndex)
	}
	if !changed {
		s.mu.Unlock()
		s.logger.Debug().Int("pane", paneIndex).Msg("collapse toggle ignored")
		return
	}
	snap := s.snapshotLocked(reason, paneIndex)
	s.mu.Unlock()

	s.logger.Debug().Int("pane", paneIndex).Stringer("reason", reason).Msg("pane toggled")
	s.notify(snap)
}

// Subscribe registers fn for every subsequent change and returns a function
// that removes it. The returned function is safe to call more than once.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns the current state without notifying anyone.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(ReasonRegister, -1)
}

// Panes returns a copy of the panes in index order.
func (s *Store) Panes() []entity.Pane {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Snapshot()
}

// Pane returns a copy of pane i.
func (s *Store) Pane(i int) (entity.Pane, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.registry.At(i)
	if p == nil {
		return entity.Pane{}, false
	}
	return *p, true
}

// PaneCount returns the number of registered panes.
func (s *Store) PaneCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Len()
}

// ContainerSize returns the last accepted container extent.
func (s *Store) ContainerSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containerSize
}

// DividerSize returns the thickness reserved per divider.
func (s *Store) DividerSize() int {
	return s.dividerSize
}

// CollapsedExtent returns the size of a collapsed pane.
func (s *Store) CollapsedExtent() int {
	return s.collapsedExtent
}

// Status returns the current overflow status.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// PairResizable reports whether divider i can currently be dragged.
func (s *Store) PairResizable(dividerIndex int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pairResizableLocked(dividerIndex)
}

func (s *Store) pairResizableLocked(dividerIndex int) bool {
	if s.containerSize <= 0 {
		return false
	}
	return canDrag(s.registry.Snapshot(), dividerIndex)
}

// canDrag reports whether the panes on both sides of divider i accept drags.
func canDrag(panes []entity.Pane, dividerIndex int) bool {
	if dividerIndex < 0 || dividerIndex+1 >= len(panes) {
		return false
	}
	lead, trail := panes[dividerIndex], panes[dividerIndex+1]
	return !lead.Collapsed && !trail.Collapsed && !lead.Fixed && !trail.Fixed
}

func (s *Store) freeLocked() int {
	return s.registry.FreeSpace(s.containerSize, s.dividerSize, s.collapsedExtent)
}

// distributeLocked performs the initial distribution: declared sizes first,
// equal shares of what is left for the rest, collapsed panes at the collapsed
// extent, then clamp-and-redistribute.
func (s *Store) distributeLocked() {
	if s.registry.Len() == 0 {
		s.status = Status{}
		return
	}
	for i := 0; i < s.registry.Len(); i++ {
		if p := s.registry.At(i); p.Collapsed {
			p.Size = s.collapsedExtent
		}
	}

	expanded := s.registry.Expanded()
	if s.containerSize <= 0 {
		for _, i := range expanded {
			s.registry.At(i).Size = 0
		}
		s.status = Status{}
		return
	}

	free := max(s.freeLocked(), 0)
	sizes := make([]int, len(expanded))
	var undeclared []int
	declared := 0
	for k, i := range expanded {
		p := s.registry.At(i)
		if p.InitialSize.IsZero() {
			undeclared = append(undeclared, k)
			continue
		}
		sizes[k] = p.InitialSize.Resolve(free)
		declared += sizes[k]
	}

	shares := geometry.EqualShares(max(free-declared, 0), len(undeclared))
	for j, k := range undeclared {
		sizes[k] = shares[j]
	}

	s.reconcileLocked(expanded, sizes)
}

func (s *Store) collapseLocked(paneIndex int) bool {
	pane := s.registry.At(paneIndex)
	var others []int
	for _, i := range s.registry.Expanded() {
		if i != paneIndex {
			others = append(others, i)
		}
	}
	if len(others) == 0 {
		return false
	}

	surplus := pane.Size - s.collapsedExtent
	pane.Collapse(s.collapsedExtent)
	if s.containerSize <= 0 {
		return true
	}

	weights := make([]int, len(others))
	for k, i := range others {
		weights[k] = s.registry.At(i).Size
	}
	sizes := make([]int, len(others))
	copy(sizes, weights)
	if surplus > 0 {
		for k, add := range geometry.Apportion(surplus, weights) {
			sizes[k] += add
		}
	}

	s.reconcileLocked(others, sizes)
	return true
}

func (s *Store) expandLocked(paneIndex int) bool {
	pane := s.registry.At(paneIndex)
	pane.Expand()
	if s.containerSize <= 0 {
		pane.Size = 0
		return true
	}

	expanded := s.registry.Expanded()
	free := max(s.freeLocked(), 0)

	want := pane.LastSize()
	if want <= 0 {
		want = free / len(expanded)
	}
	want = geometry.Clamp(min(want, free), pane.MinSize, pane.MaxSize)

	var others []int
	var current []int
	for _, i := range expanded {
		if i != paneIndex {
			others = append(others, i)
			current = append(current, s.registry.At(i).Size)
		}
	}
	rest := geometry.ScaleProportional(current, geometry.Sum(current), max(free-want, 0))

	sizes := make([]int, len(expanded))
	k := 0
	for j, i := range expanded {
		if i == paneIndex {
			sizes[j] = want
			continue
		}
		sizes[j] = rest[k]
		k++
	}

	s.reconcileLocked(expanded, sizes)
	return true
}

// reconcileLocked runs clamp-and-redistribute for the given panes against the
// free pool, stores the results, and updates the overflow status.
func (s *Store) reconcileLocked(indices, sizes []int) {
	mins := make([]int, len(indices))
	maxs := make([]int, len(indices))
	for k, i := range indices {
		mins[k], maxs[k] = s.registry.At(i).Bounds()
	}

	out, residual := geometry.Reconcile(sizes, mins, maxs, s.freeLocked())
	for k, i := range indices {
		s.registry.At(i).Size = out[k]
	}

	prev := s.status
	s.status = Status{}
	if residual < 0 {
		s.status.Overflow = -residual
	} else {
		s.status.Unallocated = residual
	}

	if s.status.LayoutOverflow() && !prev.LayoutOverflow() {
		s.logger.Warn().
			Int("overflow", s.status.Overflow).
			Int("container_size", s.containerSize).
			Msg("container smaller than pane minimums")
	}
}

func (s *Store) snapshotLocked(reason ChangeReason, target int) Snapshot {
	return Snapshot{
		Panes:           s.registry.Snapshot(),
		ContainerSize:   s.containerSize,
		DividerSize:     s.dividerSize,
		CollapsedExtent: s.collapsedExtent,
		Status:          s.status,
		Reason:          reason,
		Target:          target,
	}
}

func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	observers := make([]observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		o.fn(snap)
	}
}
