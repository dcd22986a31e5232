package config

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/splitter/internal/logging"
)

// watchDebounce folds the burst of events an editor save produces
// (truncate, write, chmod, rename) into one reload.
const watchDebounce = 100 * time.Millisecond

// OnConfigChange registers fn to receive every successfully reloaded config.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// OnReloadError registers fn to receive reload failures. The previous
// config stays active when one happens.
func (m *Manager) OnReloadError(fn func(error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onError = append(m.onError, fn)
}

// Watch reloads the config whenever its file changes. Calling it again is a
// no-op. The logger in ctx receives watch events.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.viper.ConfigFileUsed() == "" {
		return fmt.Errorf("no config file to watch")
	}

	log := logging.FromContext(logging.WithComponent(ctx, "config-watch"))
	var pending *time.Timer
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file event")

		m.mu.Lock()
		defer m.mu.Unlock()
		if pending != nil {
			pending.Stop()
		}
		pending = time.AfterFunc(watchDebounce, func() {
			if err := m.Reload(); err != nil {
				log.Warn().Err(err).Msg("config reload failed, keeping previous config")
				return
			}
			log.Info().Str("file", e.Name).Msg("config reloaded")
		})
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// Reload re-reads the config file. Subscribers registered with
// OnConfigChange get the new config, those registered with OnReloadError get
// the failure.
func (m *Manager) Reload() error {
	m.mu.Lock()
	cfg, err := m.read()
	if err == nil {
		m.config = cfg
	}
	onChange := slices.Clone(m.onChange)
	onError := slices.Clone(m.onError)
	m.mu.Unlock()

	if err != nil {
		for _, fn := range onError {
			fn(err)
		}
		return err
	}
	for _, fn := range onChange {
		fn(cfg)
	}
	return nil
}

// read parses and validates the file without installing the result.
// m.mu must be held.
func (m *Manager) read() (*Config, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return nil, err
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
