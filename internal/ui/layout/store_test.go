package layout_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/ui/layout"
)

func newPanes(n int) []entity.Pane {
	panes := make([]entity.Pane, n)
	for i := range panes {
		panes[i] = entity.NewPane(entity.PaneID(fmt.Sprintf("pane-%d", i)), i)
	}
	return panes
}

func sizesOf(panes []entity.Pane) []int {
	out := make([]int, len(panes))
	for i, p := range panes {
		out[i] = p.Size
	}
	return out
}

func newStore(t *testing.T, opts layout.StoreOptions, panes []entity.Pane, container int) *layout.Store {
	t.Helper()
	store := layout.NewStore(context.Background(), opts)
	require.NoError(t, store.RegisterPanes(panes))
	store.SetContainerSize(container)
	return store
}

// assertConserved checks that panes, dividers and collapsed extents fill the container.
func assertConserved(t *testing.T, snap layout.Snapshot) {
	t.Helper()
	total := snap.DividerSize * (len(snap.Panes) - 1)
	for _, p := range snap.Panes {
		total += p.Size
	}
	assert.Equal(t, snap.ContainerSize, total, "sizes %v", sizesOf(snap.Panes))
}

func TestStore_ThreePaneScenario(t *testing.T) {
	store := newStore(t, layout.StoreOptions{}, newPanes(3), 900)
	assert.Equal(t, []int{300, 300, 300}, sizesOf(store.Panes()))

	applied := store.DragResize(0, 50)
	assert.Equal(t, 50, applied)
	assert.Equal(t, []int{350, 250, 300}, sizesOf(store.Panes()))

	store.SetContainerSize(450)
	assert.Equal(t, []int{175, 125, 150}, sizesOf(store.Panes()))
	assert.False(t, store.Status().LayoutOverflow())
}

func TestStore_ContainerSizeBeforeRegister(t *testing.T) {
	store := layout.NewStore(context.Background(), layout.StoreOptions{})
	store.SetContainerSize(900)
	require.NoError(t, store.RegisterPanes(newPanes(3)))

	assert.Equal(t, []int{300, 300, 300}, sizesOf(store.Panes()))
}

func TestStore_OverflowScenario(t *testing.T) {
	panes := newPanes(2)
	for i := range panes {
		panes[i].MinSize = 100
	}
	store := newStore(t, layout.StoreOptions{DividerSize: 0}, panes, 150)

	assert.Equal(t, []int{100, 100}, sizesOf(store.Panes()))
	status := store.Status()
	assert.True(t, status.LayoutOverflow())
	assert.Equal(t, 50, status.Overflow)

	// Growing the container clears the condition.
	store.SetContainerSize(300)
	assert.False(t, store.Status().LayoutOverflow())
	assert.Equal(t, 300, sizesOf(store.Panes())[0]+sizesOf(store.Panes())[1])
}

func TestStore_RegisterPanes_Errors(t *testing.T) {
	tests := []struct {
		name  string
		panes func() []entity.Pane
	}{
		{
			name: "min exceeds max",
			panes: func() []entity.Pane {
				p := newPanes(2)
				p[1].MinSize, p[1].MaxSize = 300, 200
				return p
			},
		},
		{
			name: "non contiguous indices",
			panes: func() []entity.Pane {
				p := newPanes(2)
				p[1].Index = 2
				return p
			},
		},
		{
			name: "negative bound",
			panes: func() []entity.Pane {
				p := newPanes(2)
				p[0].MinSize = -1
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t, layout.StoreOptions{}, newPanes(3), 900)
			calls := 0
			store.Subscribe(func(layout.Snapshot) { calls++ })

			err := store.RegisterPanes(tt.panes())
			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)

			// Nothing partially applied.
			assert.Equal(t, []int{300, 300, 300}, sizesOf(store.Panes()))
			assert.Zero(t, calls)
		})
	}
}

func TestStore_RegisterPanes_DeclaredSizes(t *testing.T) {
	panes := newPanes(3)
	panes[0].InitialSize = entity.Length{Value: 30, Percent: true}
	store := newStore(t, layout.StoreOptions{}, panes, 1000)

	assert.Equal(t, []int{300, 350, 350}, sizesOf(store.Panes()))

	panes = newPanes(2)
	panes[1].InitialSize = entity.Length{Value: 200}
	require.NoError(t, store.RegisterPanes(panes))
	assert.Equal(t, []int{800, 200}, sizesOf(store.Panes()))
}

func TestStore_RegisterPanes_CollapsedAtStart(t *testing.T) {
	panes := newPanes(3)
	panes[1].Collapsed = true
	store := newStore(t, layout.StoreOptions{CollapsedExtent: 20, DividerSize: 5}, panes, 930)

	assert.Equal(t, []int{450, 20, 450}, sizesOf(store.Panes()))
	assertConserved(t, store.Snapshot())
}

func TestStore_SetContainerSize_IgnoresNonPositive(t *testing.T) {
	store := newStore(t, layout.StoreOptions{}, newPanes(3), 900)
	store.DragResize(0, 50)

	calls := 0
	store.Subscribe(func(layout.Snapshot) { calls++ })

	store.SetContainerSize(0)
	store.SetContainerSize(-20)
	store.SetContainerSize(900)

	assert.Zero(t, calls)
	assert.Equal(t, 900, store.ContainerSize())
	assert.Equal(t, []int{350, 250, 300}, sizesOf(store.Panes()))
}

func TestStore_DragResize(t *testing.T) {
	t.Run("truncated at neighbor minimum", func(t *testing.T) {
		panes := newPanes(3)
		panes[1].MinSize = 250
		store := newStore(t, layout.StoreOptions{}, panes, 900)

		applied := store.DragResize(0, 80)
		assert.Equal(t, 50, applied)
		assert.Equal(t, []int{350, 250, 300}, sizesOf(store.Panes()))
	})

	t.Run("truncated at own maximum", func(t *testing.T) {
		panes := newPanes(2)
		panes[0].MaxSize = 320
		store := newStore(t, layout.StoreOptions{}, panes, 600)

		assert.Equal(t, 20, store.DragResize(0, 100))
		assert.Equal(t, []int{320, 280}, sizesOf(store.Panes()))
	})

	t.Run("out of range divider is ignored", func(t *testing.T) {
		store := newStore(t, layout.StoreOptions{}, newPanes(3), 900)
		calls := 0
		store.Subscribe(func(layout.Snapshot) { calls++ })

		assert.Zero(t, store.DragResize(2, 10))
		assert.Zero(t, store.DragResize(-1, 10))
		assert.Zero(t, calls)
	})

	t.Run("fixed neighbor blocks drag", func(t *testing.T) {
		panes := newPanes(2)
		panes[1].Fixed = true
		store := newStore(t, layout.StoreOptions{}, panes, 600)

		assert.False(t, store.PairResizable(0))
		assert.Zero(t, store.DragResize(0, 10))
	})

	t.Run("unknown container blocks drag", func(t *testing.T) {
		store := layout.NewStore(context.Background(), layout.StoreOptions{})
		require.NoError(t, store.RegisterPanes(newPanes(2)))

		assert.Zero(t, store.DragResize(0, 10))
	})

	t.Run("other panes untouched", func(t *testing.T) {
		store := newStore(t, layout.StoreOptions{}, newPanes(4), 800)
		store.DragResize(1, -150)
		assert.Equal(t, []int{200, 50, 350, 200}, sizesOf(store.Panes()))
	})
}

func TestStore_DragSymmetry(t *testing.T) {
	panes := newPanes(3)
	panes[0].MinSize = 50
	panes[2].MaxSize = 500
	store := newStore(t, layout.StoreOptions{DividerSize: 6}, panes, 912)
	before := sizesOf(store.Panes())

	for _, d := range []int{1, 17, 120, 249} {
		for divider := 0; divider < 2; divider++ {
			require.Equal(t, d, store.DragResize(divider, d))
			require.Equal(t, -d, store.DragResize(divider, -d))
			assert.Equal(t, before, sizesOf(store.Panes()), "divider %d delta %d", divider, d)
		}
	}
}

func TestStore_ResizeFromSnapshot_RebasesAfterContainerResize(t *testing.T) {
	store := newStore(t, layout.StoreOptions{}, newPanes(2), 600)
	start := [2]int{300, 300}

	store.SetContainerSize(300)
	applied := store.ResizeFromSnapshot(0, start, 50)

	assert.Equal(t, 50, applied)
	assert.Equal(t, []int{200, 100}, sizesOf(store.Panes()))
}

func TestStore_ToggleCollapse(t *testing.T) {
	t.Run("collapse then expand restores sizes", func(t *testing.T) {
		store := newStore(t, layout.StoreOptions{}, newPanes(3), 900)
		store.DragResize(0, 50)

		store.ToggleCollapse(1)
		panes := store.Panes()
		assert.True(t, panes[1].Collapsed)
		assert.Equal(t, []int{485, 0, 415}, sizesOf(panes))

		store.ToggleCollapse(1)
		assert.Equal(t, []int{350, 250, 300}, sizesOf(store.Panes()))
		assert.False(t, store.Panes()[1].Collapsed)
	})

	t.Run("free pool is conserved with a collapsed extent", func(t *testing.T) {
		store := newStore(t, layout.StoreOptions{CollapsedExtent: 24, DividerSize: 4}, newPanes(4), 1012)
		before := store.Snapshot()
		assertConserved(t, before)

		store.ToggleCollapse(2)
		collapsed := store.Snapshot()
		assertConserved(t, collapsed)
		assert.Equal(t, 24, collapsed.Panes[2].Size)

		store.ToggleCollapse(2)
		after := store.Snapshot()
		assertConserved(t, after)
		assert.Equal(t, sizesOf(before.Panes), sizesOf(after.Panes))
	})

	t.Run("last expanded pane cannot collapse", func(t *testing.T) {
		store := newStore(t, layout.StoreOptions{}, newPanes(2), 600)
		store.ToggleCollapse(0)

		calls := 0
		store.Subscribe(func(layout.Snapshot) { calls++ })
		store.ToggleCollapse(1)

		assert.False(t, store.Panes()[1].Collapsed)
		assert.Equal(t, []int{0, 600}, sizesOf(store.Panes()))
		assert.Zero(t, calls)
	})

	t.Run("out of range index is ignored", func(t *testing.T) {
		store := newStore(t, layout.StoreOptions{}, newPanes(2), 600)
		store.ToggleCollapse(5)
		assert.Equal(t, []int{300, 300}, sizesOf(store.Panes()))
	})

	t.Run("collapsed neighbor blocks drag", func(t *testing.T) {
		store := newStore(t, layout.StoreOptions{}, newPanes(3), 900)
		store.ToggleCollapse(0)

		assert.False(t, store.PairResizable(0))
		assert.True(t, store.PairResizable(1))
		assert.Zero(t, store.DragResize(0, 40))
	})
}

func TestStore_Conservation(t *testing.T) {
	panes := newPanes(4)
	panes[0].MinSize = 80
	panes[1].MaxSize = 400
	panes[3].MinSize = 40
	store := newStore(t, layout.StoreOptions{DividerSize: 3, CollapsedExtent: 10}, panes, 1009)

	ops := []func(){
		func() { store.DragResize(0, 37) },
		func() { store.SetContainerSize(733) },
		func() { store.ToggleCollapse(1) },
		func() { store.DragResize(2, -91) },
		func() { store.SetContainerSize(1501) },
		func() { store.ToggleCollapse(1) },
		func() { store.DragResize(1, 1000) },
		func() { store.SetContainerSize(401) },
		func() { store.ToggleCollapse(3) },
		func() { store.SetContainerSize(999) },
		func() { store.ToggleCollapse(3) },
	}

	for i, op := range ops {
		op()
		snap := store.Snapshot()
		require.False(t, snap.Status.LayoutOverflow(), "op %d", i)
		assertConserved(t, snap)
		for _, p := range snap.Panes {
			if p.Collapsed {
				continue
			}
			assert.GreaterOrEqual(t, p.Size, p.MinSize, "op %d pane %d", i, p.Index)
			if p.MaxSize > 0 {
				assert.LessOrEqual(t, p.Size, p.MaxSize, "op %d pane %d", i, p.Index)
			}
		}
	}
}

func TestStore_Unallocated(t *testing.T) {
	panes := newPanes(2)
	panes[0].MaxSize = 100
	panes[1].MaxSize = 100
	store := newStore(t, layout.StoreOptions{}, panes, 300)

	assert.Equal(t, []int{100, 100}, sizesOf(store.Panes()))
	assert.Equal(t, 100, store.Status().Unallocated)
	assert.False(t, store.Status().LayoutOverflow())
}

func TestStore_Subscribe(t *testing.T) {
	store := newStore(t, layout.StoreOptions{DividerSize: 2}, newPanes(3), 902)

	var seen []layout.Snapshot
	unsubscribe := store.Subscribe(func(snap layout.Snapshot) {
		// Observers may read the store re-entrantly and always see a finished layout.
		assert.Equal(t, sizesOf(snap.Panes), sizesOf(store.Panes()))
		assertConserved(t, snap)
		seen = append(seen, snap)
	})

	store.DragResize(0, 10)
	store.SetContainerSize(602)
	store.ToggleCollapse(2)
	store.ToggleCollapse(2)

	require.Len(t, seen, 4)
	assert.Equal(t, layout.ReasonDrag, seen[0].Reason)
	assert.Equal(t, 0, seen[0].Target)
	assert.Equal(t, layout.ReasonContainerResize, seen[1].Reason)
	assert.Equal(t, layout.ReasonCollapse, seen[2].Reason)
	assert.Equal(t, 2, seen[2].Target)
	assert.Equal(t, layout.ReasonExpand, seen[3].Reason)

	unsubscribe()
	unsubscribe()
	store.DragResize(0, -10)
	assert.Len(t, seen, 4)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := newStore(t, layout.StoreOptions{}, newPanes(2), 600)
	snap := store.Snapshot()
	snap.Panes[0].Size = 1

	assert.Equal(t, 300, store.Panes()[0].Size)
}

func TestChangeReason_String(t *testing.T) {
	assert.Equal(t, "drag", layout.ReasonDrag.String())
	assert.Equal(t, "container-resize", layout.ReasonContainerResize.String())
	assert.Equal(t, "reason(42)", layout.ChangeReason(42).String())
}
