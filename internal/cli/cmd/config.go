package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show, validate and initialize the splitter configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, environment overrides and the
--layout file have been applied.`,
	RunE: runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file for errors",
	RunE:  runConfigValidate,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with all defaults",
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema for config.toml",
	Long: `Write config.schema.json next to config.toml so editors can complete
and check the configuration.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.MarshalOrdered(app.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(standaloneTheme())
	out := cmd.OutOrStdout()

	path, err := configPath()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		fmt.Fprintln(out, renderer.RenderError(fmt.Errorf("%s does not exist, run 'splitter config init'", path)))
		return statErr
	}

	mgr, err := config.NewManagerWithFile(path)
	if err != nil {
		return err
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprintln(out, renderer.RenderValidationErrors(path, err))
		return errors.New("config is invalid")
	}

	fmt.Fprintln(out, renderer.RenderValid(path, len(mgr.Get().Panes)))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(standaloneTheme())
	out := cmd.OutOrStdout()

	path, err := configPath()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		fmt.Fprintln(out, renderer.RenderExists(path))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(out, renderer.RenderCreated(path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(standaloneTheme())

	path, err := config.GenerateSchemaFile()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSchemaWritten(path))
	return nil
}
