package config

import (
	"os"
	"path/filepath"
)

const appName = "splitter"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// homeEnv relocates config and state under one directory, which keeps test
// and development runs away from the user's files.
const homeEnv = "SPLITTER_HOME"

// XDGDirs are the directories splitter reads and writes.
type XDGDirs struct {
	ConfigHome string // config.toml, config.schema.json
	StateHome  string // logs/
}

// GetXDGDirs resolves the directories from SPLITTER_HOME, then
// XDG_CONFIG_HOME and XDG_STATE_HOME, then ~/.config and ~/.local/state.
func GetXDGDirs() (*XDGDirs, error) {
	if home := os.Getenv(homeEnv); home != "" {
		return &XDGDirs{ConfigHome: home, StateHome: home}, nil
	}

	configBase, err := xdgBase("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return nil, err
	}
	stateBase, err := xdgBase("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return nil, err
	}
	return &XDGDirs{
		ConfigHome: filepath.Join(configBase, appName),
		StateHome:  filepath.Join(stateBase, appName),
	}, nil
}

func xdgBase(env, fallback string) (string, error) {
	if dir := os.Getenv(env); filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback), nil
}

func configPath(name string) (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.ConfigHome, name), nil
}

// GetConfigDir returns the directory holding config.toml.
func GetConfigDir() (string, error) {
	return configPath("")
}

// GetConfigFile returns the default config file path.
func GetConfigFile() (string, error) {
	return configPath("config.toml")
}

// GetSchemaFile returns the path of the generated JSON schema.
func GetSchemaFile() (string, error) {
	return configPath("config.schema.json")
}

// GetLogDir returns the directory run logs are written to.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// EnsureDirectories creates the config and state directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
