package config

// Default configuration constants
const (
	// Splitter defaults
	defaultSplitBarSize = 1 // cells

	// Logging defaults
	defaultMaxLogSizeMB  = 10 // MB
	defaultMaxBackups    = 3  // backup files
	defaultMaxLogAgeDays = 7  // days

	// Keyboard defaults
	defaultNudgeStep      = 1
	defaultLargeNudgeStep = 5
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for splitter.
func DefaultConfig() *Config {
	return &Config{
		Splitter: SplitterConfig{
			Orientation:        "horizontal",
			SplitBarSize:       defaultSplitBarSize,
			ShowCollapseButton: true,
			CollapseDirection:  "before",
			CollapsedExtent:    0,
		},
		Panes: DefaultPanes(),
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxSize:       defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
		Appearance: AppearanceConfig{
			DarkPalette: DefaultDarkPalette(),
		},
		Keys: KeysConfig{
			NudgeStep:      defaultNudgeStep,
			LargeNudgeStep: defaultLargeNudgeStep,
			EnableMouse:    true,
		},
	}
}

// DefaultPanes returns the three-pane layout used when nothing is declared.
func DefaultPanes() []PaneConfig {
	return []PaneConfig{
		{Name: "sidebar", Size: "25%", MinSize: 12},
		{Name: "editor", MinSize: 20},
		{Name: "preview", MinSize: 12, MaxSize: 80},
	}
}

// DefaultDarkPalette returns the built-in dark theme colors.
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}
