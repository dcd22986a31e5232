package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/domain/build"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/infrastructure/config"
)

func TestConfigRenderer_RenderValidationErrors(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewConfigRenderer(theme)

	err := errors.New("config validation failed:\n  - keys.nudge_step must be at least 1\n  - panes must declare at least one pane")
	out := r.RenderValidationErrors("/tmp/splitter/config.toml", err)

	require.Contains(t, out, "config.toml")
	assert.Contains(t, out, "keys.nudge_step must be at least 1")
	assert.Contains(t, out, "panes must declare at least one pane")
	assert.NotContains(t, out, "- panes")
}

func TestConfigRenderer_RenderValid(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))

	out := r.RenderValid("/tmp/splitter/config.toml", 3)
	assert.Contains(t, out, "Valid")
	assert.Contains(t, out, "3")
}

func TestPaneState(t *testing.T) {
	p := entity.NewPane("a", 0)
	assert.Equal(t, "flex", styles.PaneState(p))

	p.Fixed = true
	assert.Equal(t, "fixed", styles.PaneState(p))

	p.Collapsed = true
	assert.Equal(t, "collapsed", styles.PaneState(p))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "-", styles.FormatBound(0))
	assert.Equal(t, "120", styles.FormatBound(120))

	assert.Equal(t, "512 B", styles.FormatBytes(512))
	assert.Equal(t, "1.5 KB", styles.FormatBytes(1536))
	assert.Equal(t, "2 MB", styles.FormatBytes(2*1024*1024))
}

func TestRenderStaticTable(t *testing.T) {
	theme := styles.NewTheme(nil)
	out := styles.RenderStaticTable(theme, styles.RunTableColumns(), nil)
	assert.Contains(t, out, "Started")
}

func TestAboutRenderer(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme(nil))
	out := r.Render(build.Info{Version: "v1.2.3", Commit: "abc1234", BuildDate: "2026-01-01", GoVersion: "go1.25"})

	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, build.RepoURL())
	assert.NotContains(t, out, "development build")

	dev := styles.NewAboutRenderer(styles.NewTheme(nil)).
		WithPaths("/tmp/splitter/config.toml", "").
		Render(build.Info{Version: "dev"})
	assert.Contains(t, dev, "development build")
	assert.Contains(t, dev, "/tmp/splitter/config.toml")
	assert.NotContains(t, dev, "Logs")
}

func TestSplitterKeyMap_FullHelpCoversBindings(t *testing.T) {
	km := styles.DefaultSplitterKeyMap()

	count := 0
	for _, group := range km.FullHelp() {
		count += len(group)
	}
	assert.Equal(t, 11, count)
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
}
