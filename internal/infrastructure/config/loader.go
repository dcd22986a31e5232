// Package config loads, validates and watches the splitter configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string // explicit path, empty for the XDG lookup
	mu         sync.RWMutex
	onChange   []func(*Config)
	onError    []func(error)
	watching   bool
}

// NewManager creates a configuration manager that looks up config.toml in
// the XDG config directory, then the current directory.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	return newManager(v, "")
}

// NewManagerWithFile creates a configuration manager bound to one file.
// The file is created with defaults on first Load when it does not exist.
func NewManagerWithFile(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("toml")
	}
	return newManager(v, path)
}

func newManager(v *viper.Viper, configFile string) (*Manager, error) {
	v.SetEnvPrefix("SPLITTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names for the settings people override most.
	bindings := map[string]string{
		"splitter.orientation":    "SPLITTER_ORIENTATION",
		"splitter.split_bar_size": "SPLITTER_SPLIT_BAR_SIZE",
		"logging.level":           "SPLITTER_LOG_LEVEL",
		"logging.format":          "SPLITTER_LOG_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{viper: v, configFile: configFile}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.configFile == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	path := m.configFile
	if path == "" {
		if path, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if createErr := m.createDefaultConfig(path); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			path,
			createErr,
		)
	}
	m.viper.SetConfigFile(path)
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Splitter.Orientation = strings.ToLower(strings.TrimSpace(config.Splitter.Orientation))
	if config.Splitter.Orientation == "" {
		config.Splitter.Orientation = "horizontal"
	}
	config.Splitter.CollapseDirection = strings.ToLower(strings.TrimSpace(config.Splitter.CollapseDirection))
	if config.Splitter.CollapseDirection == "" {
		config.Splitter.CollapseDirection = "before"
	}

	for i := range config.Panes {
		config.Panes[i].Name = strings.TrimSpace(config.Panes[i].Name)
		config.Panes[i].Size = strings.TrimSpace(config.Panes[i].Size)
	}

	config.Logging.Level = strings.ToLower(config.Logging.Level)
	config.Logging.Format = strings.ToLower(config.Logging.Format)
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}

	if config.Appearance.DarkPalette.Background == "" {
		config.Appearance.DarkPalette = DefaultDarkPalette()
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Panes = append([]PaneConfig(nil), m.config.Panes...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the default configuration to path.
func (m *Manager) createDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", path)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setSplitterDefaults(defaults)
	m.viper.SetDefault("panes", defaults.Panes)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setKeysDefaults(defaults)
}

func (m *Manager) setSplitterDefaults(defaults *Config) {
	m.viper.SetDefault("splitter.orientation", defaults.Splitter.Orientation)
	m.viper.SetDefault("splitter.split_bar_size", defaults.Splitter.SplitBarSize)
	m.viper.SetDefault("splitter.show_collapse_button", defaults.Splitter.ShowCollapseButton)
	m.viper.SetDefault("splitter.collapse_direction", defaults.Splitter.CollapseDirection)
	m.viper.SetDefault("splitter.collapsed_extent", defaults.Splitter.CollapsedExtent)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	p := defaults.Appearance.DarkPalette
	m.viper.SetDefault("appearance.dark_palette.background", p.Background)
	m.viper.SetDefault("appearance.dark_palette.surface", p.Surface)
	m.viper.SetDefault("appearance.dark_palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.dark_palette.text", p.Text)
	m.viper.SetDefault("appearance.dark_palette.muted", p.Muted)
	m.viper.SetDefault("appearance.dark_palette.accent", p.Accent)
	m.viper.SetDefault("appearance.dark_palette.border", p.Border)
}

func (m *Manager) setKeysDefaults(defaults *Config) {
	m.viper.SetDefault("keys.nudge_step", defaults.Keys.NudgeStep)
	m.viper.SetDefault("keys.large_nudge_step", defaults.Keys.LargeNudgeStep)
	m.viper.SetDefault("keys.enable_mouse", defaults.Keys.EnableMouse)
}
