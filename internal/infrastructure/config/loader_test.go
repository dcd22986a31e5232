package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `[splitter]
orientation = "Vertical"
split_bar_size = 2

[[panes]]
name = "left"
size = "30%"

[[panes]]
name = "right"
min_size = 10
collapsible = false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func loadManager(t *testing.T, path string) *Manager {
	t.Helper()
	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "horizontal", mgr.viper.GetString("splitter.orientation"))
	assert.Equal(t, 1, mgr.viper.GetInt("splitter.split_bar_size"))
	assert.True(t, mgr.viper.GetBool("splitter.show_collapse_button"))
	assert.Equal(t, 5, mgr.viper.GetInt("keys.large_nudge_step"))
	assert.Equal(t, "#4ade80", mgr.viper.GetString("appearance.dark_palette.accent"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Splitter.Orientation = " Vertical "
	cfg.Splitter.CollapseDirection = ""
	cfg.Logging.Format = "TEXT"
	cfg.Panes[0].Size = " 25% "
	cfg.Appearance.DarkPalette = ColorPalette{}

	normalizeConfig(cfg)

	assert.Equal(t, "vertical", cfg.Splitter.Orientation)
	assert.Equal(t, "before", cfg.Splitter.CollapseDirection)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "25%", cfg.Panes[0].Size)
	assert.Equal(t, DefaultDarkPalette(), cfg.Appearance.DarkPalette)
}

func TestManagerLoad_CreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	mgr := loadManager(t, path)

	assert.FileExists(t, path)
	cfg := mgr.Get()
	assert.Equal(t, "horizontal", cfg.Splitter.Orientation)
	assert.Len(t, cfg.Panes, 3)
	assert.Equal(t, "sidebar", cfg.Panes[0].Name)
}

func TestManagerLoad_ReadsFile(t *testing.T) {
	mgr := loadManager(t, writeConfig(t, sampleConfig))
	cfg := mgr.Get()

	assert.Equal(t, "vertical", cfg.Splitter.Orientation)
	assert.Equal(t, 2, cfg.Splitter.SplitBarSize)
	assert.True(t, cfg.Splitter.ShowCollapseButton, "omitted keys keep their defaults")
	assert.Equal(t, defaultNudgeStep, cfg.Keys.NudgeStep)

	require.Len(t, cfg.Panes, 2)
	assert.Equal(t, "30%", cfg.Panes[0].Size)
	assert.Nil(t, cfg.Panes[0].Collapsible)
	require.NotNil(t, cfg.Panes[1].Collapsible)
	assert.False(t, *cfg.Panes[1].Collapsible)
	assert.Equal(t, 10, cfg.Panes[1].MinSize)
}

func TestManagerLoad_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "[splitter]\norientation = \"diagonal\"\n")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "splitter.orientation")
}

func TestManagerLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "[splitter\n")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestManagerReload_NotifiesCallbacks(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	mgr := loadManager(t, path)

	var got []*Config
	mgr.OnConfigChange(func(cfg *Config) {
		got = append(got, cfg)
	})

	require.NoError(t, os.WriteFile(path, []byte("[splitter]\nsplit_bar_size = 3\n"), filePerm))
	require.NoError(t, mgr.Reload())

	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Splitter.SplitBarSize)
	assert.Equal(t, 3, mgr.Get().Splitter.SplitBarSize)
}

func TestManagerReload_SubscribersRunUnlocked(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	mgr := loadManager(t, path)

	late := 0
	mgr.OnConfigChange(func(cfg *Config) {
		assert.Equal(t, 2, mgr.Get().Splitter.SplitBarSize)
		mgr.OnConfigChange(func(*Config) { late++ })
	})

	require.NoError(t, mgr.Reload())
	assert.Zero(t, late, "subscribers added during a reload wait for the next one")

	require.NoError(t, mgr.Reload())
	assert.Equal(t, 1, late)
}

func TestManagerReload_KeepsPreviousOnError(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	mgr := loadManager(t, path)

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })
	var reloadErr error
	mgr.OnReloadError(func(err error) { reloadErr = err })

	require.NoError(t, os.WriteFile(path, []byte("[splitter]\nsplit_bar_size = -1\n"), filePerm))
	require.Error(t, mgr.Reload())

	assert.False(t, called)
	require.Error(t, reloadErr)
	assert.Contains(t, reloadErr.Error(), "split_bar_size")
	assert.Equal(t, 2, mgr.Get().Splitter.SplitBarSize)
}

func TestManagerGet_ReturnsCopy(t *testing.T) {
	mgr := loadManager(t, writeConfig(t, sampleConfig))

	cfg := mgr.Get()
	cfg.Panes[0].Name = "changed"
	cfg.Splitter.SplitBarSize = 9

	again := mgr.Get()
	assert.Equal(t, "left", again.Panes[0].Name)
	assert.Equal(t, 2, again.Splitter.SplitBarSize)
}

func TestManagerGet_DefaultsBeforeLoad(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig().Splitter, mgr.Get().Splitter)
}
