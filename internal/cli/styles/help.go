package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// SplitterKeyMap defines keybindings for the interactive splitter.
type SplitterKeyMap struct {
	NextDivider key.Binding
	PrevDivider key.Binding
	Shrink      key.Binding
	Grow        key.Binding
	ShrinkMore  key.Binding
	GrowMore    key.Binding
	Collapse    key.Binding
	Cancel      key.Binding
	Reset       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k SplitterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextDivider, k.Shrink, k.Grow, k.Collapse, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k SplitterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextDivider, k.PrevDivider},
		{k.Shrink, k.Grow, k.ShrinkMore, k.GrowMore},
		{k.Collapse, k.Cancel, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultSplitterKeyMap returns the default splitter keybindings.
func DefaultSplitterKeyMap() SplitterKeyMap {
	return SplitterKeyMap{
		NextDivider: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next divider"),
		),
		PrevDivider: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev divider"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("left", "h", "up", "k"),
			key.WithHelp("←/h", "move divider back"),
		),
		Grow: key.NewBinding(
			key.WithKeys("right", "l", "down", "j"),
			key.WithHelp("→/l", "move divider forward"),
		),
		ShrinkMore: key.NewBinding(
			key.WithKeys("shift+left", "H", "shift+up", "K"),
			key.WithHelp("H", "move back more"),
		),
		GrowMore: key.NewBinding(
			key.WithKeys("shift+right", "L", "shift+down", "J"),
			key.WithHelp("L", "move forward more"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "collapse/expand"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset sizes"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
