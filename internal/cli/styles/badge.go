package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitter/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders text on bg.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(0, 1).Render(text)
}

// PaneState returns the short state label shown for a pane.
func PaneState(p entity.Pane) string {
	switch {
	case p.Collapsed:
		return "collapsed"
	case p.Fixed:
		return "fixed"
	default:
		return "flex"
	}
}

// PaneStateBadge renders the pane state as a badge.
func (t *Theme) PaneStateBadge(p entity.Pane) string {
	state := PaneState(p)
	switch state {
	case "collapsed":
		return t.StatusBadge(state, t.Background, t.Warning)
	case "fixed":
		return t.MutedBadge(state)
	default:
		return t.AccentBadge(state)
	}
}

// RelativeTime formats tm relative to now, e.g. "3h ago".
func RelativeTime(tm time.Time) string {
	return relativeTime(time.Now(), tm)
}

var timeUnits = []struct {
	suffix string
	size   time.Duration
	below  time.Duration
}{
	{"m", time.Minute, time.Hour},
	{"h", time.Hour, 24 * time.Hour},
	{"d", 24 * time.Hour, 7 * 24 * time.Hour},
}

func relativeTime(now, tm time.Time) string {
	diff := now.Sub(tm)
	if diff < time.Minute {
		return "just now"
	}
	for _, u := range timeUnits {
		if diff < u.below {
			return fmt.Sprintf("%d%s ago", diff/u.size, u.suffix)
		}
	}
	return fmt.Sprintf("%dw ago", diff/(7*24*time.Hour))
}
