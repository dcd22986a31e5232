package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/splitter/internal/cli/model"
	"github.com/bnema/splitter/internal/infrastructure/config"
	"github.com/bnema/splitter/internal/logging"
)

var runNoWatch bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive splitter",
	Long: `Open the configured splitter full screen.

Drag dividers with the mouse, or select one with tab and move it with the
arrow keys. Edits to the config file are applied live unless --no-watch is
given. Logs of the run are written to the log directory, see 'splitter logs'.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runNoWatch, "no-watch", false, "do not reload when the config file changes")
}

func runRun(_ *cobra.Command, _ []string) (retErr error) {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	runID, err := app.StartRunLog()
	if err != nil {
		return err
	}
	log := logging.FromContext(app.Ctx())
	defer logging.RecoverPanic(*log)

	doc, err := app.Document()
	if err != nil {
		return err
	}

	m, err := model.NewSplitterModel(app.Ctx(), app.Theme, model.SplitterModelConfig{
		Document:    doc,
		Keys:        app.Config.Keys,
		Reconfigure: app.Reconfigure,
	})
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if app.Config.Keys.EnableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)

	if !runNoWatch {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigReloadedMsg{Config: cfg})
		})
		app.Manager.OnReloadError(func(err error) {
			p.Send(model.ConfigErrorMsg{Err: err})
		})
		if err := app.Manager.Watch(app.Ctx()); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	log.Info().Str("source", doc.Source).Int("panes", len(doc.Panes)).Msg("starting splitter")
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run splitter: %w", err)
	}
	if fm, ok := final.(model.SplitterModel); ok && fm.Err() != nil {
		return fm.Err()
	}

	log.Info().Str("run", runID).Msg("run finished")
	return nil
}
