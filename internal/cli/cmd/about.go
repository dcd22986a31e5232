package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/splitter/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, config and log locations, repository URL, and contributors.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAboutRenderer(app.Theme).
		WithPaths(app.Manager.GetConfigFile(), app.Config.Logging.LogDir)
	fmt.Println(renderer.Render(app.BuildInfo))
	return nil
}
