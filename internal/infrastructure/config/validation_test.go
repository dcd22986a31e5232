package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "unknown orientation",
			mutate:  func(c *Config) { c.Splitter.Orientation = "diagonal" },
			wantErr: "splitter.orientation",
		},
		{
			name:    "unknown collapse direction",
			mutate:  func(c *Config) { c.Splitter.CollapseDirection = "sideways" },
			wantErr: "splitter.collapse_direction",
		},
		{
			name:    "negative bar size",
			mutate:  func(c *Config) { c.Splitter.SplitBarSize = -1 },
			wantErr: "splitter.split_bar_size",
		},
		{
			name:    "negative collapsed extent",
			mutate:  func(c *Config) { c.Splitter.CollapsedExtent = -2 },
			wantErr: "splitter.collapsed_extent",
		},
		{
			name:    "no panes",
			mutate:  func(c *Config) { c.Panes = nil },
			wantErr: "at least one pane",
		},
		{
			name:    "unparseable size",
			mutate:  func(c *Config) { c.Panes[1].Size = "wide" },
			wantErr: "panes[1].size",
		},
		{
			name: "min exceeds max",
			mutate: func(c *Config) {
				c.Panes[2].MinSize = 90
				c.Panes[2].MaxSize = 80
			},
			wantErr: "panes[2].min_size (90) exceeds max_size (80)",
		},
		{
			name:    "negative min",
			mutate:  func(c *Config) { c.Panes[0].MinSize = -1 },
			wantErr: "panes[0].min_size must be non-negative",
		},
		{
			name:    "duplicate names",
			mutate:  func(c *Config) { c.Panes[2].Name = "sidebar" },
			wantErr: "duplicate pane name 'sidebar'",
		},
		{
			name: "duplicate ids",
			mutate: func(c *Config) {
				c.Panes[0].ID = "a"
				c.Panes[1].ID = "a"
			},
			wantErr: "duplicate pane id 'a'",
		},
		{
			name: "percentages over 100",
			mutate: func(c *Config) {
				c.Panes[0].Size = "60%"
				c.Panes[1].Size = "50%"
			},
			wantErr: "110%",
		},
		{
			name:    "bad color",
			mutate:  func(c *Config) { c.Appearance.DarkPalette.Accent = "green" },
			wantErr: "appearance.dark_palette.accent",
		},
		{
			name:    "zero nudge step",
			mutate:  func(c *Config) { c.Keys.NudgeStep = 0 },
			wantErr: "keys.nudge_step",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Splitter.SplitBarSize = -1
	cfg.Keys.LargeNudgeStep = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "splitter.split_bar_size")
	assert.Contains(t, err.Error(), "keys.large_nudge_step")
}
