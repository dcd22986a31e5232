// Package model contains the Bubble Tea models behind the interactive commands.
package model

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/splitter/internal/application/port"
	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/infrastructure/config"
	"github.com/bnema/splitter/internal/logging"
	"github.com/bnema/splitter/internal/ui/layout"
)

// chromeRows are the terminal rows below the splitter: status line and help.
const chromeRows = 2

// frameDelay coalesces bursts of window size events into one store update.
const frameDelay = 16 * time.Millisecond

// flushMsg delivers a pending size observation to the shell.
type flushMsg struct{}

// ConfigReloadedMsg is sent when the config file changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg is sent when the edited config file failed to load.
type ConfigErrorMsg struct {
	Err error
}

// frame holds the last layout the shell rendered. The renderer writes it
// synchronously from inside shell calls made by Update.
type frame struct {
	layout  layout.Layout
	renders int
}

// SplitterModelConfig configures the interactive splitter.
type SplitterModelConfig struct {
	Document *port.LayoutDocument
	Keys     config.KeysConfig
	// Reconfigure resolves the layout document for a reloaded config.
	Reconfigure func(cfg *config.Config) (*port.LayoutDocument, error)
}

// SplitterModel hosts a Container Shell inside the terminal.
type SplitterModel struct {
	ctx   context.Context
	theme *styles.Theme
	keys  styles.SplitterKeyMap
	help  help.Model

	doc   *port.LayoutDocument
	shell *layout.Shell
	frame *frame

	reconfigure func(cfg *config.Config) (*port.LayoutDocument, error)
	nudgeStep   int
	largeStep   int

	selected int
	width    int
	height   int
	notice   string
	err      error
}

// NewSplitterModel mounts the document's panes and returns the model.
func NewSplitterModel(ctx context.Context, theme *styles.Theme, cfg SplitterModelConfig) (SplitterModel, error) {
	if cfg.Document == nil {
		return SplitterModel{}, errors.New("no layout document")
	}

	m := SplitterModel{
		ctx:         ctx,
		theme:       theme,
		keys:        styles.DefaultSplitterKeyMap(),
		help:        styles.NewStyledHelp(theme),
		frame:       &frame{},
		reconfigure: cfg.Reconfigure,
		nudgeStep:   max(cfg.Keys.NudgeStep, 1),
		largeStep:   max(cfg.Keys.LargeNudgeStep, 1),
		width:       80,
		height:      24,
	}
	if err := m.mount(cfg.Document); err != nil {
		return SplitterModel{}, err
	}
	return m, nil
}

// mount replaces the hosted shell with one built from doc.
func (m *SplitterModel) mount(doc *port.LayoutDocument) error {
	f := m.frame
	shell, err := layout.Mount(m.ctx, layout.ShellOptions(doc.Settings), doc.Panes, layout.RendererFunc(func(l layout.Layout) {
		f.layout = l
		f.renders++
	}))
	if err != nil {
		return err
	}

	if m.shell != nil {
		m.shell.Unmount()
	}
	m.shell = shell
	m.doc = doc
	if m.selected >= len(shell.Bars()) {
		m.selected = 0
	}
	if m.width > 0 && m.height > chromeRows {
		shell.ObserveSize(m.containerSize())
		shell.Flush()
	}
	return nil
}

func (m SplitterModel) containerSize() layout.Size {
	return layout.Size{Width: m.width, Height: max(m.height-chromeRows, 0)}
}

// Init implements tea.Model.
func (SplitterModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SplitterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.shell.ObserveSize(m.containerSize()) {
			return m, tea.Tick(frameDelay, func(time.Time) tea.Msg { return flushMsg{} })
		}

	case flushMsg:
		m.shell.Flush()

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)

	case ConfigErrorMsg:
		if msg.Err != nil {
			m.notice = "config reload failed: " + oneLine(msg.Err.Error())
		}
	}

	return m, nil
}

func (m *SplitterModel) handleMouse(msg tea.MouseMsg) {
	p := layout.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if i := m.shell.PointerDown(p); i >= 0 {
			m.selected = i
			m.notice = ""
		}
	case tea.MouseActionMotion:
		m.shell.PointerMove(p)
	case tea.MouseActionRelease:
		m.shell.PointerUp()
	}
}

func (m SplitterModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bars := len(m.shell.Bars())
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shell.Unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Cancel):
		m.shell.PointerCancel()
	case bars == 0:
		// Single pane: nothing to move or collapse.
	case key.Matches(msg, m.keys.NextDivider):
		m.selected = (m.selected + 1) % bars
	case key.Matches(msg, m.keys.PrevDivider):
		m.selected = (m.selected - 1 + bars) % bars
	case key.Matches(msg, m.keys.ShrinkMore):
		m.nudge(-m.largeStep)
	case key.Matches(msg, m.keys.GrowMore):
		m.nudge(m.largeStep)
	case key.Matches(msg, m.keys.Shrink):
		m.nudge(-m.nudgeStep)
	case key.Matches(msg, m.keys.Grow):
		m.nudge(m.nudgeStep)
	case key.Matches(msg, m.keys.Collapse):
		if err := m.shell.ToggleCollapse(m.selected); err != nil {
			m.notice = err.Error()
		}
	case key.Matches(msg, m.keys.Reset):
		if err := m.mount(m.doc); err != nil {
			m.err = err
		}
	}
	return m, nil
}

func (m *SplitterModel) nudge(step int) {
	bar, err := m.shell.Bar(m.selected)
	if err != nil {
		m.notice = err.Error()
		return
	}
	if !bar.Draggable() {
		m.notice = "divider is not resizable"
		return
	}
	bar.Nudge(step)
}

// applyConfig remounts the splitter from a reloaded config. A config that
// does not resolve leaves the current splitter mounted.
func (m *SplitterModel) applyConfig(cfg *config.Config) {
	log := logging.FromContext(m.ctx)
	if m.reconfigure == nil || cfg == nil {
		return
	}

	doc, err := m.reconfigure(cfg)
	if err == nil {
		err = m.mount(doc)
	}
	if err != nil {
		log.Warn().Err(err).Msg("keeping previous layout after config change")
		m.notice = "config reload failed: " + err.Error()
		return
	}

	m.theme = styles.NewTheme(cfg)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = m.width
	m.nudgeStep = max(cfg.Keys.NudgeStep, 1)
	m.largeStep = max(cfg.Keys.LargeNudgeStep, 1)
	m.notice = "config reloaded"
	log.Info().Int("panes", len(doc.Panes)).Msg("layout remounted")
}

// Layout returns the last rendered layout.
func (m SplitterModel) Layout() layout.Layout {
	return m.frame.layout
}

// Renders returns how many layouts the shell has rendered.
func (m SplitterModel) Renders() int {
	return m.frame.renders
}

// Err returns the fatal error, if any.
func (m SplitterModel) Err() error {
	return m.err
}

// oneLine flattens multi-line validation errors for the status line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
