package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// LayoutFile is a standalone splitter declaration authored as JSONC
// (JSON with comments and trailing commas).
type LayoutFile struct {
	Splitter SplitterConfig `json:"splitter"`
	Panes    []PaneConfig   `json:"panes"`
}

// ParseLayout strips JSONC extensions from data and decodes it.
// Splitter props the file omits keep their defaults.
func ParseLayout(data []byte) (*LayoutFile, error) {
	layout := &LayoutFile{Splitter: DefaultConfig().Splitter}

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(layout); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	normalizeLayout(layout)
	var problems []string
	problems = append(problems, validateSplitter(layout.Splitter)...)
	problems = append(problems, validatePanes(layout.Panes)...)
	if len(problems) > 0 {
		return nil, fmt.Errorf("layout validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return layout, nil
}

// LoadLayoutFile reads and parses a JSONC layout file.
func LoadLayoutFile(path string) (*LayoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	layout, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// ApplyLayout returns a copy of c with the splitter and panes replaced by layout.
func (c *Config) ApplyLayout(layout *LayoutFile) *Config {
	out := *c
	if layout == nil {
		return &out
	}
	out.Splitter = layout.Splitter
	out.Panes = append([]PaneConfig(nil), layout.Panes...)
	return &out
}

func normalizeLayout(layout *LayoutFile) {
	cfg := Config{Splitter: layout.Splitter, Panes: layout.Panes}
	cfg.Appearance.DarkPalette = DefaultDarkPalette()
	normalizeConfig(&cfg)
	layout.Splitter = cfg.Splitter
	layout.Panes = cfg.Panes
}
