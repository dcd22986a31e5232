package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// RenderStaticTable renders rows once for plain command output, without a
// selected row.
func RenderStaticTable(theme *Theme, columns []table.Column, rows []table.Row) string {
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	t := NewStyledTable(theme, columns, rows, width, len(rows)+1)
	t.Blur()

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Cell = s.Cell.Foreground(theme.Text)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t.View()
}

// PaneTableColumns returns columns for the pane geometry table.
func PaneTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Pane", Width: 16},
		{Title: "Offset", Width: 8},
		{Title: "Size", Width: 8},
		{Title: "Min", Width: 6},
		{Title: "Max", Width: 6},
		{Title: "State", Width: 10},
	}
}

// BarTableColumns returns columns for the divider table.
func BarTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Offset", Width: 8},
		{Title: "Size", Width: 6},
		{Title: "Drag", Width: 6},
		{Title: "Control", Width: 22},
	}
}

// CheckTableColumns returns columns for layout check results.
func CheckTableColumns() []table.Column {
	return []table.Column{
		{Title: "File", Width: 32},
		{Title: "Panes", Width: 6},
		{Title: "Status", Width: 40},
	}
}

// RunTableColumns returns columns for the run log list.
func RunTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Started", Width: 20},
		{Title: "Age", Width: 10},
		{Title: "Size", Width: 10},
	}
}

// FormatBound formats a pane bound, where 0 means unbounded.
func FormatBound(v int) string {
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v)
}

// FormatBytes formats a file size for display.
func FormatBytes(n int64) string {
	const unit = 1024
	switch {
	case n >= unit*unit:
		return formatTenths(n*10/(unit*unit)) + " MB"
	case n >= unit:
		return formatTenths(n*10/unit) + " KB"
	default:
		return strconv.FormatInt(n, 10) + " B"
	}
}

// formatTenths formats v/10 with one decimal, dropping ".0".
func formatTenths(v int64) string {
	whole, dec := v/10, v%10
	if dec == 0 {
		return strconv.FormatInt(whole, 10)
	}
	return strconv.FormatInt(whole, 10) + "." + strconv.FormatInt(dec, 10)
}
