// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/splitter/internal/application/port"
	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/domain/build"
	"github.com/bnema/splitter/internal/infrastructure/config"
	"github.com/bnema/splitter/internal/logging"
)

// Options selects the configuration sources for the app.
type Options struct {
	// ConfigFile overrides the XDG config.toml lookup.
	ConfigFile string
	// LayoutFile replaces the configured splitter and panes.
	LayoutFile string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Layouts   port.LayoutLoader

	opts       Options
	ctx        context.Context
	logCleanup func()
	runID      string
}

// NewApp loads the configuration and builds a stderr logger for CLI commands.
func NewApp(opts Options) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if opts.ConfigFile != "" {
		mgr, err = config.NewManagerWithFile(opts.ConfigFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}

	cfg := mgr.Get()
	logger := logging.New(logging.Config{
		Level:      cliLogLevel(cfg),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})

	a := &App{
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		Layouts:    config.NewLayoutLoader(),
		opts:       opts,
		ctx:        logging.WithContext(context.Background(), logger),
		logCleanup: func() {},
	}
	if err := a.applyConfig(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// cliLogLevel keeps one-shot commands quiet unless a level is forced by env.
func cliLogLevel(cfg *config.Config) zerolog.Level {
	if env := os.Getenv("SPLITTER_LOG_LEVEL"); env != "" {
		return logging.ParseLevel(env)
	}
	if level := logging.ParseLevel(cfg.Logging.Level); level > zerolog.WarnLevel {
		return level
	}
	return zerolog.WarnLevel
}

// applyConfig installs cfg, merged with the layout file when one was given.
func (a *App) applyConfig(cfg *config.Config) error {
	if a.opts.LayoutFile != "" {
		layout, err := config.LoadLayoutFile(a.opts.LayoutFile)
		if err != nil {
			return err
		}
		cfg = cfg.ApplyLayout(layout)
	}
	a.Config = cfg
	return nil
}

// Reconfigure applies a reloaded configuration and returns the layout document
// to mount.
func (a *App) Reconfigure(cfg *config.Config) (*port.LayoutDocument, error) {
	if err := a.applyConfig(cfg); err != nil {
		return nil, err
	}
	a.Theme = styles.NewTheme(a.Config)
	return a.Document()
}

// Document resolves the active splitter declaration.
func (a *App) Document() (*port.LayoutDocument, error) {
	doc, err := a.Config.Document()
	if err != nil {
		return nil, err
	}
	if a.opts.LayoutFile != "" {
		doc.Source = a.opts.LayoutFile
	}
	return doc, nil
}

// StartRunLog redirects logging to a per-run file so the TUI owns the
// terminal. It returns the run ID.
func (a *App) StartRunLog() (string, error) {
	cfg := a.Config.Logging
	a.runID = logging.NewRunID(time.Now())

	logger, cleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Level), Format: "json"},
		logging.FileConfig{
			Enabled:    cfg.EnableFileLog,
			Dir:        cfg.LogDir,
			RunID:      a.runID,
			MaxSizeMB:  cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAgeDays: cfg.MaxAge,
			Compress:   cfg.Compress,
		},
	)
	if err != nil {
		return "", fmt.Errorf("open run log: %w", err)
	}

	a.logCleanup()
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(context.Background(), logger)
	logger.Info().Str("config", a.Manager.GetConfigFile()).Msg("run started")
	return a.runID, nil
}

// RunID returns the ID of the current run log, if any.
func (a *App) RunID() string {
	return a.runID
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
