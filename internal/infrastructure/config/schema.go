package config

// Config represents the complete configuration for splitter.
type Config struct {
	// Splitter holds the container-level layout props.
	Splitter SplitterConfig `mapstructure:"splitter" yaml:"splitter" toml:"splitter" json:"splitter"`
	// Panes declares the child panes in layout order.
	Panes      []PaneConfig     `mapstructure:"panes" yaml:"panes" toml:"panes" json:"panes"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	Keys       KeysConfig       `mapstructure:"keys" yaml:"keys" toml:"keys" json:"keys"`
}

// SplitterConfig holds the props a parent layout hands to a splitter.
type SplitterConfig struct {
	// Orientation is "horizontal" (side by side) or "vertical" (stacked).
	Orientation string `mapstructure:"orientation" yaml:"orientation" toml:"orientation" json:"orientation" jsonschema:"enum=horizontal,enum=vertical"`
	// SplitBarSize is the divider thickness in cells.
	SplitBarSize int `mapstructure:"split_bar_size" yaml:"split_bar_size" toml:"split_bar_size" json:"split_bar_size" jsonschema:"minimum=0"`
	// ShowCollapseButton shows the collapse/expand control on dividers.
	ShowCollapseButton bool `mapstructure:"show_collapse_button" yaml:"show_collapse_button" toml:"show_collapse_button" json:"show_collapse_button"`
	// CollapseDirection picks the pane a divider collapses: "before" or "after".
	CollapseDirection string `mapstructure:"collapse_direction" yaml:"collapse_direction" toml:"collapse_direction" json:"collapse_direction" jsonschema:"enum=before,enum=after"`
	// CollapsedExtent is the size a collapsed pane keeps.
	CollapsedExtent int `mapstructure:"collapsed_extent" yaml:"collapsed_extent" toml:"collapsed_extent" json:"collapsed_extent" jsonschema:"minimum=0"`
}

// PaneConfig declares one pane.
type PaneConfig struct {
	// ID is generated when empty.
	ID   string `mapstructure:"id" yaml:"id" toml:"id,omitempty" json:"id,omitempty"`
	Name string `mapstructure:"name" yaml:"name" toml:"name" json:"name"`
	// Size is the initial size: "30%", "200px" or "200". Empty takes an equal share.
	Size    string `mapstructure:"size" yaml:"size" toml:"size,omitempty" json:"size,omitempty" jsonschema:"pattern=^[0-9]+(%|px)?$"`
	MinSize int    `mapstructure:"min_size" yaml:"min_size" toml:"min_size" json:"min_size" jsonschema:"minimum=0"`
	// MaxSize of 0 leaves the pane unbounded.
	MaxSize   int  `mapstructure:"max_size" yaml:"max_size" toml:"max_size" json:"max_size" jsonschema:"minimum=0"`
	Collapsed bool `mapstructure:"collapsed" yaml:"collapsed" toml:"collapsed" json:"collapsed"`
	// Collapsible defaults to true when omitted.
	Collapsible *bool `mapstructure:"collapsible" yaml:"collapsible" toml:"collapsible,omitempty" json:"collapsible,omitempty"`
	// Fixed panes cannot be resized by dragging.
	Fixed bool `mapstructure:"fixed" yaml:"fixed" toml:"fixed" json:"fixed"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration, used while the TUI owns the terminal.
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSize       int    `mapstructure:"max_size" yaml:"max_size" toml:"max_size" json:"max_size"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// AppearanceConfig holds TUI colors.
type AppearanceConfig struct {
	DarkPalette ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette" json:"dark_palette"`
}

// ColorPalette holds the theme colors as hex strings.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

// KeysConfig tunes keyboard resizing in the TUI.
type KeysConfig struct {
	// NudgeStep is how far an arrow key moves the selected divider.
	NudgeStep int `mapstructure:"nudge_step" yaml:"nudge_step" toml:"nudge_step" json:"nudge_step" jsonschema:"minimum=1"`
	// LargeNudgeStep is used with shift+arrow.
	LargeNudgeStep int `mapstructure:"large_nudge_step" yaml:"large_nudge_step" toml:"large_nudge_step" json:"large_nudge_step" jsonschema:"minimum=1"`
	// EnableMouse turns on mouse cell-motion reporting for divider drags.
	EnableMouse bool `mapstructure:"enable_mouse" yaml:"enable_mouse" toml:"enable_mouse" json:"enable_mouse"`
}
