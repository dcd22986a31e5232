package config

import (
	"context"

	"github.com/bnema/splitter/internal/application/port"
	"github.com/bnema/splitter/internal/logging"
)

// LayoutLoader implements port.LayoutLoader over JSONC layout files.
type LayoutLoader struct{}

// NewLayoutLoader creates a layout file loader.
func NewLayoutLoader() *LayoutLoader {
	return &LayoutLoader{}
}

// LoadLayout reads, validates and resolves the layout file at path.
func (*LayoutLoader) LoadLayout(ctx context.Context, path string) (*port.LayoutDocument, error) {
	layout, err := LoadLayoutFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := newDocument(path, layout.Splitter, layout.Panes)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().
		Str("path", path).
		Int("panes", len(doc.Panes)).
		Msg("layout file loaded")
	return doc, nil
}

// Document resolves the splitter declared by the configuration itself.
func (c *Config) Document() (*port.LayoutDocument, error) {
	return newDocument("config", c.Splitter, c.Panes)
}

func newDocument(source string, splitter SplitterConfig, panes []PaneConfig) (*port.LayoutDocument, error) {
	settings, err := splitter.Resolve()
	if err != nil {
		return nil, err
	}
	entities, err := PanesToEntities(panes)
	if err != nil {
		return nil, err
	}
	return &port.LayoutDocument{Source: source, Settings: settings, Panes: entities}, nil
}
