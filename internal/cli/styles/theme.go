// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitter/internal/infrastructure/config"
)

const (
	colorError   = lipgloss.Color("#ef4444")
	colorWarning = lipgloss.Color("#f59e0b")
)

// Theme holds the palette colors and the styles derived from them.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color
	Success        lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	Badge        lipgloss.Style
	BadgeMuted   lipgloss.Style

	// Splitter surface. Neighboring panes alternate Pane and PaneAlt.
	Pane          lipgloss.Style
	PaneAlt       lipgloss.Style
	PaneCollapsed lipgloss.Style
	Bar           lipgloss.Style // resizable, not selected
	BarSelected   lipgloss.Style
	BarDragging   lipgloss.Style
	BarStatic     lipgloss.Style // not resizable
	StatusBar     lipgloss.Style
}

// NewTheme builds the theme from cfg's dark palette. A nil cfg or an empty
// palette falls back to the defaults.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultDarkPalette()
	if cfg != nil && cfg.Appearance.DarkPalette.Background != "" {
		p = cfg.Appearance.DarkPalette
	}

	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          colorError,
		Warning:        colorWarning,
		Success:        lipgloss.Color(p.Accent),
	}
	t.text()
	t.surface()
	return t
}

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func (t *Theme) text() {
	t.Title = fg(t.Text).Bold(true)
	t.Subtitle = fg(t.Muted).Bold(true)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)
	t.Badge = fg(t.Background).Background(t.Accent).Padding(0, 1)
	t.BadgeMuted = fg(t.Text).Background(t.SurfaceVariant).Padding(0, 1)
}

func (t *Theme) surface() {
	t.Pane = fg(t.Text).Background(t.Surface).Align(lipgloss.Center, lipgloss.Center)
	t.PaneAlt = t.Pane.Background(t.SurfaceVariant)
	t.PaneCollapsed = fg(t.Muted).Background(t.Background)

	bar := lipgloss.NewStyle().Background(t.Background)
	t.Bar = bar.Foreground(t.Border)
	t.BarSelected = bar.Foreground(t.Accent).Bold(true)
	t.BarStatic = bar.Foreground(t.Muted).Faint(true)
	t.BarDragging = fg(t.Background).Background(t.Accent)

	t.StatusBar = fg(t.Muted).Background(t.Surface)
}
