package port

import (
	"context"

	"github.com/bnema/splitter/internal/domain/entity"
)

// LayoutDocument is a splitter declaration resolved into domain values.
type LayoutDocument struct {
	// Source names where the declaration came from (a path or "config").
	Source   string
	Settings entity.SplitterSettings
	Panes    []entity.Pane
}

// LayoutLoader reads splitter declarations.
type LayoutLoader interface {
	// LoadLayout parses and validates the declaration at path.
	LoadLayout(ctx context.Context, path string) (*LayoutDocument, error)
}
