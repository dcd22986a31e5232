package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/infrastructure/config"
	"github.com/bnema/splitter/internal/logging"
)

const twoPaneLayout = `{
  "splitter": {"orientation": "vertical"},
  "panes": [
    {"name": "top", "size": "30%"},
    {"name": "bottom"}, // takes the rest
  ],
}`

func writeTestConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Logging.LogDir = filepath.Join(dir, "logs")

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, config.WriteConfigOrdered(cfg, path))
	return path, cfg.Logging.LogDir
}

func TestNewApp_ConfigDocument(t *testing.T) {
	path, _ := writeTestConfig(t)

	app, err := NewApp(Options{ConfigFile: path})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	doc, err := app.Document()
	require.NoError(t, err)
	assert.Equal(t, "config", doc.Source)
	assert.Equal(t, entity.OrientationHorizontal, doc.Settings.Orientation)
	require.Len(t, doc.Panes, len(config.DefaultPanes()))
	assert.Equal(t, "sidebar", doc.Panes[0].Name)
}

func TestNewApp_LayoutFileReplacesPanes(t *testing.T) {
	path, _ := writeTestConfig(t)
	layoutPath := filepath.Join(t.TempDir(), "two.jsonc")
	require.NoError(t, os.WriteFile(layoutPath, []byte(twoPaneLayout), 0o600))

	app, err := NewApp(Options{ConfigFile: path, LayoutFile: layoutPath})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	doc, err := app.Document()
	require.NoError(t, err)
	assert.Equal(t, layoutPath, doc.Source)
	assert.Equal(t, entity.OrientationVertical, doc.Settings.Orientation)
	require.Len(t, doc.Panes, 2)

	// A reload keeps the layout file on top of the new config.
	reloaded := config.DefaultConfig()
	reloaded.Keys.NudgeStep = 3
	doc, err = app.Reconfigure(reloaded)
	require.NoError(t, err)
	require.Len(t, doc.Panes, 2)
	assert.Equal(t, 3, app.Config.Keys.NudgeStep)
}

func TestNewApp_MissingLayoutFile(t *testing.T) {
	path, _ := writeTestConfig(t)

	_, err := NewApp(Options{ConfigFile: path, LayoutFile: filepath.Join(t.TempDir(), "nope.jsonc")})
	require.Error(t, err)
}

func TestApp_StartRunLog(t *testing.T) {
	path, logDir := writeTestConfig(t)

	app, err := NewApp(Options{ConfigFile: path})
	require.NoError(t, err)

	runID, err := app.StartRunLog()
	require.NoError(t, err)
	assert.Equal(t, runID, app.RunID())

	require.NoError(t, app.Close())
	assert.FileExists(t, filepath.Join(logDir, logging.RunFilename(runID)))
}
