// Package cmd provides Cobra CLI commands for splitter.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/splitter/internal/cli"
	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/domain/build"
	"github.com/bnema/splitter/internal/infrastructure/config"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFlag string
	layoutFlag string
	rootCmd    = &cobra.Command{
		Use:   "splitter",
		Short: "Resizable multi-pane splitter for the terminal",
		Long: `Splitter - a resizable multi-pane layout engine.

Panes are laid out along one axis and separated by divider bars. Drag a
divider with the mouse or nudge it from the keyboard, collapse panes from
the divider's collapse control, and resize the terminal to watch sizes
rescale proportionally within each pane's bounds.

Features:
  - Horizontal or vertical splitters with fixed, collapsible or bounded panes
  - Sizes in cells or percentages, declared in TOML config or JSONC layout files
  - Live reload when the config file changes
  - Headless simulation and checking of layout files

Use 'splitter run' to open the interactive splitter, or 'splitter layout'
to inspect layouts without a terminal UI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			if skipsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: configFlag, LayoutFile: layoutFlag})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// standaloneCommands work on a broken or missing config file.
var standaloneCommands = map[string]bool{
	"help":       true,
	"completion": true,
	"path":       true,
	"validate":   true,
	"init":       true,
	"schema":     true,
}

func skipsApp(cmd *cobra.Command) bool {
	if standaloneCommands[cmd.Name()] {
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "completion"
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (default $XDG_CONFIG_HOME/splitter/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&layoutFlag, "layout", "L", "", "JSONC layout file replacing the configured splitter and panes")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info.WithVCS()
	rootCmd.Version = buildInfo.String()
}

// standaloneTheme returns a theme for commands that run without an app.
func standaloneTheme() *styles.Theme {
	if app != nil {
		return app.Theme
	}
	return styles.NewTheme(config.DefaultConfig())
}

// configPath resolves the config file the commands operate on.
func configPath() (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	return config.GetConfigFile()
}
