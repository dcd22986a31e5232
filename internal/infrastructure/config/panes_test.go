package config

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitter/internal/domain/entity"
)

func TestPaneConfigToEntity(t *testing.T) {
	collapsible := false
	pc := PaneConfig{
		ID:          "files",
		Name:        "files",
		Size:        "200px",
		MinSize:     50,
		MaxSize:     400,
		Collapsed:   true,
		Collapsible: &collapsible,
		Fixed:       true,
	}

	pane, err := pc.ToEntity(2)
	require.NoError(t, err)

	assert.Equal(t, entity.PaneID("files"), pane.ID)
	assert.Equal(t, 2, pane.Index)
	assert.Equal(t, entity.Length{Value: 200}, pane.InitialSize)
	assert.Equal(t, 50, pane.MinSize)
	assert.Equal(t, 400, pane.MaxSize)
	assert.True(t, pane.Collapsed)
	assert.False(t, pane.Collapsible)
	assert.True(t, pane.Fixed)
}

func TestPaneConfigToEntity_Defaults(t *testing.T) {
	pane, err := PaneConfig{Name: "editor"}.ToEntity(0)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(string(pane.ID))
	assert.NoError(t, parseErr, "missing ids are generated")
	assert.True(t, pane.Collapsible)
	assert.True(t, pane.InitialSize.IsZero())
}

func TestPaneConfigToEntity_InvalidSize(t *testing.T) {
	_, err := PaneConfig{Size: "half"}.ToEntity(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
}

func TestPanesToEntities(t *testing.T) {
	panes, err := PanesToEntities(DefaultPanes())
	require.NoError(t, err)
	require.Len(t, panes, 3)

	for i, p := range panes {
		assert.Equal(t, i, p.Index)
	}
	assert.Equal(t, entity.Length{Value: 25, Percent: true}, panes[0].InitialSize)
	assert.NotEqual(t, panes[0].ID, panes[1].ID)
}

func TestSplitterConfigResolve(t *testing.T) {
	settings, err := SplitterConfig{
		Orientation:       "vertical",
		SplitBarSize:      3,
		CollapseDirection: "after",
		CollapsedExtent:   4,
	}.Resolve()
	require.NoError(t, err)

	assert.Equal(t, entity.OrientationVertical, settings.Orientation)
	assert.Equal(t, entity.CollapseAfter, settings.CollapseDirection)
	assert.Equal(t, 3, settings.SplitBarSize)
	assert.Equal(t, 4, settings.CollapsedExtent)

	_, err = SplitterConfig{Orientation: "diagonal"}.Resolve()
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
}
