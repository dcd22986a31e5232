package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bnema/splitter/internal/cli/styles"
)

// colorizeLogLine renders one run log line. JSON events go through a
// zerolog console writer styled with theme; other lines are colored by the
// level they mention.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var buf bytes.Buffer
	w := logConsoleWriter(&buf, theme)
	if _, err := w.Write([]byte(line)); err == nil {
		return strings.TrimRight(buf.String(), "\n")
	}

	upper := strings.ToUpper(line)
	switch {
	case strings.Contains(upper, "ERR"):
		return theme.ErrorStyle.Render(line)
	case strings.Contains(upper, "WRN"), strings.Contains(upper, "WARN"):
		return theme.WarningStyle.Render(line)
	case strings.Contains(upper, "DBG"), strings.Contains(upper, "DEBUG"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

func levelLabel(theme *styles.Theme, level string) string {
	switch level {
	case zerolog.LevelTraceValue:
		return theme.Subtle.Render("TRC")
	case zerolog.LevelDebugValue:
		return theme.Subtle.Render("DBG")
	case zerolog.LevelInfoValue:
		return theme.Highlight.Render("INF")
	case zerolog.LevelWarnValue:
		return theme.WarningStyle.Render("WRN")
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return theme.ErrorStyle.Render(strings.ToUpper(level[:3]))
	default:
		return strings.ToUpper(level)
	}
}

func logConsoleWriter(buf *bytes.Buffer, theme *styles.Theme) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        buf,
		NoColor:    true,
		TimeFormat: "15:04:05",
		// Every line of a run log carries the same run ID.
		FieldsExclude: []string{"run"},
		FormatPrepare: func(evt map[string]interface{}) error {
			component, _ := evt["component"].(string)
			delete(evt, "component")
			if component == "" {
				return nil
			}
			msg, _ := evt[zerolog.MessageFieldName].(string)
			evt[zerolog.MessageFieldName] = strings.TrimSpace(theme.Subtle.Render("["+component+"]") + " " + msg)
			return nil
		},
		FormatLevel: func(i interface{}) string {
			level, _ := i.(string)
			return levelLabel(theme, level)
		},
		FormatFieldName: func(i interface{}) string {
			return theme.Subtle.Render(fmt.Sprint(i) + "=")
		},
		FormatErrFieldValue: func(i interface{}) string {
			return theme.ErrorStyle.Render(fmt.Sprint(i))
		},
	}
}
