package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/infrastructure/config"
	"github.com/bnema/splitter/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const (
	defaultLogsLines = 50
	tailPollInterval = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs [run]",
	Short: "View logs of interactive runs",
	Long: `View the log files written by 'splitter run'.

Without arguments, lists all recorded runs.
With a run ID (or partial match), shows logs for that run.

Examples:
  splitter logs                 # List all runs
  splitter logs a7b3            # View logs for run ending in 'a7b3'
  splitter logs -f a7b3         # Follow logs in real-time
  splitter logs -n 100 a7b3     # Show last 100 lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

// RunInfo holds metadata about one run log file.
type RunInfo struct {
	RunID     string
	ShortID   string
	Filename  string
	Path      string
	Size      int64
	ModTime   time.Time
	StartedAt time.Time
}

func runLogs(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir, err := getLogDir(app.Config)
	if err != nil {
		return err
	}

	// List runs if no argument provided
	if len(args) == 0 {
		return listRuns(logDir, app.Theme)
	}

	run, err := findRun(logDir, args[0])
	if err != nil {
		return err
	}

	if logsFollow {
		return tailRun(cmd.Context(), run.Path, app.Theme)
	}

	return showRun(run.Path, logsLines, app.Theme)
}

// getLogDir returns the configured log directory, or the XDG default.
func getLogDir(cfg *config.Config) (string, error) {
	if cfg != nil && cfg.Logging.LogDir != "" {
		return cfg.Logging.LogDir, nil
	}
	return config.GetLogDir()
}

// listRuns displays all recorded runs.
func listRuns(logDir string, theme *styles.Theme) error {
	runs, err := getRuns(logDir)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println(theme.Subtle.Render("No runs found. Run 'splitter run' to create logs."))
		return nil
	}

	fmt.Println(theme.Title.Render("Runs (newest first):"))
	fmt.Println()

	rows := make([]table.Row, len(runs))
	for i := range runs {
		r := &runs[i]
		rows[i] = table.Row{
			r.ShortID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			styles.RelativeTime(r.StartedAt),
			styles.FormatBytes(r.Size),
		}
	}
	fmt.Println(styles.RenderStaticTable(theme, styles.RunTableColumns(), rows))

	fmt.Println()
	fmt.Println(theme.Subtle.Render("Use 'splitter logs <id>' to view a run"))
	return nil
}

// getRuns returns all run log files, newest first.
func getRuns(logDir string) ([]RunInfo, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var runs []RunInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		runID, ok := logging.ParseRunFilename(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		started, ok := logging.RunStartedAt(runID)
		if !ok {
			started = info.ModTime()
		}

		runs = append(runs, RunInfo{
			RunID:     runID,
			ShortID:   logging.ShortRunID(runID),
			Filename:  entry.Name(),
			Path:      filepath.Join(logDir, entry.Name()),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
			StartedAt: started,
		})
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	return runs, nil
}

// findRun finds a run by short ID or partial run ID match.
func findRun(logDir, query string) (*RunInfo, error) {
	runs, err := getRuns(logDir)
	if err != nil {
		return nil, err
	}

	if len(runs) == 0 {
		return nil, fmt.Errorf("no runs found")
	}

	queryNormalized := strings.ToLower(strings.TrimSpace(query))

	// Try exact short ID match first
	for i := range runs {
		if strings.EqualFold(runs[i].ShortID, queryNormalized) {
			return &runs[i], nil
		}
	}

	var matches []RunInfo
	for i := range runs {
		if strings.Contains(strings.ToLower(runs[i].RunID), queryNormalized) {
			matches = append(matches, runs[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no run matching '%s' found", query)
	case 1:
		return &matches[0], nil
	default:
		// Multiple matches - show them and ask user to be more specific
		var ids []string
		for i := range matches {
			ids = append(ids, matches[i].ShortID)
		}
		return nil, fmt.Errorf("multiple runs match '%s': %s", query, strings.Join(ids, ", "))
	}
}

// showRun displays the last N lines of a run log.
func showRun(logPath string, lines int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	// Keep only the last N lines in memory
	var tail []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		tail = append(tail, scanner.Text())
		if len(tail) > lines {
			tail = tail[1:]
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range tail {
		fmt.Println(colorizeLogLine(line, theme))
	}

	return nil
}

// tailRun follows a run log in real-time until ctx is done.
func tailRun(ctx context.Context, logPath string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Seek to end
	_, _ = file.Seek(0, io.SeekEnd)

	fmt.Println(theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Println()

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// No full line yet; keep partial data.
				pending += chunk
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(tailPollInterval):
				}
				continue
			}
			return fmt.Errorf("read log file: %w", err)
		}

		pending += chunk
		for {
			idx := strings.IndexByte(pending, '\n')
			if idx == -1 {
				break
			}
			line := pending[:idx]
			pending = pending[idx+1:]
			fmt.Println(colorizeLogLine(line, theme))
		}
	}
}

// logsClearCmd clears old run logs.
var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear old log files",
	Long: `Remove old run log files.

By default, removes runs older than the configured max_age (default 7 days).
Use --all to remove all runs.`,
	RunE: runLogsClear,
}

func init() {
	logsCmd.AddCommand(logsClearCmd)
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all run logs")
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir, err := getLogDir(app.Config)
	if err != nil {
		return err
	}
	runs, err := getRuns(logDir)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println(app.Theme.Subtle.Render("No logs to clear"))
		return nil
	}

	maxAge := 7
	if app.Config != nil && app.Config.Logging.MaxAge > 0 {
		maxAge = app.Config.Logging.MaxAge
	}

	removed := clearRuns(runs, time.Now().AddDate(0, 0, -maxAge), logsClearAll, func(r RunInfo, err error) {
		if err != nil {
			fmt.Printf("%s %s: %v\n", app.Theme.ErrorStyle.Render(styles.IconX), r.ShortID, err)
			return
		}
		fmt.Printf("%s %s (%s)\n", app.Theme.SuccessStyle.Render(styles.IconCheck), r.ShortID, styles.FormatBytes(r.Size))
	})

	if removed == 0 {
		fmt.Println(app.Theme.Subtle.Render(fmt.Sprintf("No runs older than %d days", maxAge)))
	} else {
		fmt.Printf("\n%s\n", app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d run(s)", removed)))
	}

	return nil
}

// clearRuns removes runs that started before cutoff, or all of them, and
// reports each attempt. It returns how many were removed.
func clearRuns(runs []RunInfo, cutoff time.Time, all bool, report func(RunInfo, error)) int {
	removed := 0
	for i := range runs {
		r := runs[i]
		if !all && !r.ModTime.Before(cutoff) {
			continue
		}
		err := os.Remove(r.Path)
		report(r, err)
		if err == nil {
			removed++
		}
	}
	return removed
}
