package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitter/internal/domain/build"
)

// AboutRenderer prints a logo beside build info and the paths splitter uses.
type AboutRenderer struct {
	theme      *Theme
	configPath string
	logDir     string
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// WithPaths adds the config file and log directory lines. Empty paths are
// skipped.
func (r *AboutRenderer) WithPaths(configPath, logDir string) *AboutRenderer {
	r.configPath = configPath
	r.logDir = logDir
	return r
}

type aboutField struct {
	icon, key, value string
}

func (r *AboutRenderer) Render(info build.Info) string {
	fields := []aboutField{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.ShortCommit()},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
	}
	if r.configPath != "" {
		fields = append(fields, aboutField{IconConfig, "Config", r.configPath})
	}
	if r.logDir != "" {
		fields = append(fields, aboutField{IconLogs, "Logs", r.logDir})
	}

	body := r.renderFields(fields)
	if info.IsDev() {
		body = r.theme.MutedBadge("development build") + "\n" + body
	}
	footer := r.renderFields([]aboutField{
		{IconGithub, "", build.RepoURL()},
		{IconHeart, "Made with love by", strings.Join(build.Contributors(), ", ")},
	})

	return lipgloss.JoinHorizontal(lipgloss.Top, r.logo(), "   ", body+"\n\n"+footer)
}

// logo draws a narrow pane, a divider with its collapse arrow, and a wide pane.
func (r *AboutRenderer) logo() string {
	const rows = 5
	pane := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)
	bar := lipgloss.NewStyle().Foreground(r.theme.Muted)

	var b strings.Builder
	for i := 0; i < rows; i++ {
		divider := GlyphBarVertical
		if i == rows/2 {
			divider = GlyphCollapseLeft
		}
		b.WriteString(pane.Render("███") + " " + bar.Render(divider) + " " + pane.Render("█████"))
		if i < rows-1 {
			b.WriteByte('\n')
		}
	}
	return lipgloss.NewStyle().MarginTop(1).MarginLeft(2).Render(b.String())
}

func (r *AboutRenderer) renderFields(fields []aboutField) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		parts := []string{icon.Render(f.icon)}
		if f.key != "" {
			parts = append(parts, r.theme.Subtle.Render(f.key))
		}
		value := r.theme.Highlight.Render(f.value)
		if f.key == "" {
			value = r.theme.Subtle.Render(f.value)
		}
		lines = append(lines, strings.Join(append(parts, value), " "))
	}
	return strings.Join(lines, "\n")
}
