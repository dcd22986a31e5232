package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/splitter/internal/application/port"
	"github.com/bnema/splitter/internal/application/usecase"
	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/ui/layout"
)

func TestCheckStatus(t *testing.T) {
	assert.Equal(t, "invalid", checkStatus(usecase.LayoutCheckResult{Err: errors.New("bad")}))
	assert.Equal(t, "overflow by 12", checkStatus(usecase.LayoutCheckResult{Overflow: 12}))
	assert.Equal(t, "ok, 4 unallocated", checkStatus(usecase.LayoutCheckResult{Unallocated: 4}))
	assert.Equal(t, "ok", checkStatus(usecase.LayoutCheckResult{}))
}

func TestRenderPaneTable(t *testing.T) {
	side := entity.NewPane("side", 0)
	side.Name = "sidebar"
	side.MinSize = 10
	editor := entity.NewPane("main", 1)
	editor.Name = "editor"
	editor.Fixed = true
	doc := &port.LayoutDocument{Panes: []entity.Pane{side, editor}}

	l := layout.Layout{Panes: []entity.PaneStyle{
		{PaneID: "side", Index: 0, Offset: 0, Size: 0, Collapsed: true},
		{PaneID: "main", Index: 1, Offset: 1, Size: 79},
	}}

	out := renderPaneTable(styles.NewTheme(nil), doc, l)
	assert.Contains(t, out, "sidebar")
	assert.Contains(t, out, "collapsed")
	assert.Contains(t, out, "editor")
	assert.Contains(t, out, "fixed")
	assert.Contains(t, out, "79")
}

func TestStepTitle(t *testing.T) {
	step := usecase.SimulationStep{
		Op:      usecase.LayoutOp{Kind: usecase.OpDrag, Raw: "drag:0:+50"},
		Applied: 20,
	}
	assert.Equal(t, "drag:0:+50 (applied +20)", stepTitle(step))

	step.Op = usecase.LayoutOp{Kind: usecase.OpCollapse, Raw: "collapse:1"}
	assert.Equal(t, "collapse:1", stepTitle(step))
}

func TestSkipsApp(t *testing.T) {
	assert.True(t, skipsApp(configValidateCmd))
	assert.True(t, skipsApp(configInitCmd))
	assert.False(t, skipsApp(configShowCmd))
	assert.False(t, skipsApp(runCmd))
}
