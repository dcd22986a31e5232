package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/ui/layout"
)

// View implements tea.Model.
func (m SplitterModel) View() string {
	t := m.theme
	if m.err != nil {
		return t.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err)) + "\n"
	}

	size := m.containerSize()
	body := m.renderSplitter(size)
	status := m.renderStatus()
	helpView := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, body, status, helpView)
}

func (m SplitterModel) renderSplitter(size layout.Size) string {
	l := m.frame.layout
	if size.Width <= 0 || size.Height <= 0 || len(l.Panes) == 0 {
		return ""
	}

	panes := m.shell.Store().Panes()
	vertical := l.Orientation == entity.OrientationVertical
	across := size.Across(l.Orientation)

	blocks := make([]string, 0, len(l.Panes)+len(l.Bars))
	for i, ps := range l.Panes {
		if ps.Size > 0 {
			blocks = append(blocks, m.renderPane(ps, paneLabel(panes, i), vertical, across))
		}
		if i < len(l.Bars) && l.Bars[i].Size > 0 {
			blocks = append(blocks, m.renderBar(l.Bars[i], vertical, across))
		}
	}

	var out string
	if vertical {
		out = lipgloss.JoinVertical(lipgloss.Left, blocks...)
	} else {
		out = lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	}
	return lipgloss.NewStyle().MaxWidth(size.Width).MaxHeight(size.Height).Render(out)
}

func (m SplitterModel) renderPane(ps entity.PaneStyle, label string, vertical bool, across int) string {
	style := m.theme.Pane
	if ps.Index%2 == 1 {
		style = m.theme.PaneAlt
	}
	if ps.Collapsed {
		style = m.theme.PaneCollapsed
	}

	w, h := ps.Size, across
	if vertical {
		w, h = across, ps.Size
	}
	text := label + "\n" + strconv.Itoa(ps.Size)
	if h < 2 {
		text = label + " " + strconv.Itoa(ps.Size)
	}
	return style.Width(w).Height(h).MaxWidth(w).MaxHeight(h).Render(text)
}

func (m SplitterModel) renderBar(bar layout.BarLayout, vertical bool, across int) string {
	style := m.theme.Bar
	switch {
	case m.shell.Captured() == bar.Index:
		style = m.theme.BarDragging
	case bar.Index == m.selected:
		style = m.theme.BarSelected
	case !bar.Draggable:
		style = m.theme.BarStatic
	}

	glyph := styles.GlyphBarVertical
	if vertical {
		glyph = styles.GlyphBarHorizontal
	}
	button := collapseGlyph(bar, vertical)

	// One cell per cross-axis position; the collapse button sits in the middle.
	cells := make([]string, across)
	for i := range cells {
		cells[i] = glyph
	}
	if button != "" && across > 0 {
		cells[across/2] = button
	}

	lines := make([]string, 0, max(bar.Size, across))
	if vertical {
		row := strings.Join(cells, "")
		for range bar.Size {
			lines = append(lines, row)
		}
	} else {
		for _, c := range cells {
			lines = append(lines, strings.Repeat(c, bar.Size))
		}
	}
	return style.Render(strings.Join(lines, "\n"))
}

// collapseGlyph points toward the pane that the control would move.
func collapseGlyph(bar layout.BarLayout, vertical bool) string {
	c := bar.Control
	if !c.Visible {
		return ""
	}
	towardStart := (c.PaneIndex == bar.Index) == (c.Action == layout.ActionCollapse)
	switch {
	case vertical && towardStart:
		return styles.GlyphCollapseUp
	case vertical:
		return styles.GlyphCollapseDown
	case towardStart:
		return styles.GlyphCollapseLeft
	default:
		return styles.GlyphCollapseRight
	}
}

func paneLabel(panes []entity.Pane, i int) string {
	if i < len(panes) {
		return panes[i].Label()
	}
	return "pane " + strconv.Itoa(i)
}

func (m SplitterModel) renderStatus() string {
	t := m.theme
	l := m.frame.layout
	panes := m.shell.Store().Panes()

	parts := make([]string, 0, len(l.Panes)+3)
	for i, ps := range l.Panes {
		label := fmt.Sprintf("%s %d", paneLabel(panes, i), ps.Size)
		if i < len(panes) && (panes[i].Collapsed || panes[i].Fixed) {
			label += " " + t.PaneStateBadge(panes[i])
		}
		parts = append(parts, label)
	}
	line := strings.Join(parts, " │ ")

	if n := len(l.Bars); n > 0 {
		line += fmt.Sprintf("   divider %d/%d", m.selected+1, n)
	}
	if l.Status.LayoutOverflow() {
		line += "  " + t.WarningStyle.Render(fmt.Sprintf("%s overflow %d", styles.IconWarning, l.Status.Overflow))
	}
	if l.Status.Unallocated > 0 {
		line += "  " + t.Subtle.Render(fmt.Sprintf("unallocated %d", l.Status.Unallocated))
	}
	if m.notice != "" {
		line += "  " + t.Highlight.Render(m.notice)
	}
	return t.StatusBar.Width(m.width).MaxWidth(m.width).Render(line)
}
